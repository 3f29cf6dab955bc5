package analysis

import (
	"testing"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

func TestDescribeAppearance(t *testing.T) {
	tests := []struct {
		name       string
		appearance *models.Appearance
		legacy     string
		want       string
	}{
		{
			name: "all attributes in fixed order",
			appearance: &models.Appearance{
				GarmentColor:           "red shorts",
				SkinTone:               "dark",
				Build:                  "stocky",
				RelativeHeight:         "shorter of the two",
				DistinguishingFeatures: "tattoo on left arm",
				FreeText:               "southpaw stance",
			},
			want: "wearing red shorts, dark skin tone, stocky build, shorter of the two, tattoo on left arm, southpaw stance",
		},
		{
			name:       "partial attributes skip empty slots",
			appearance: &models.Appearance{GarmentColor: "blue gloves", Build: "lean"},
			want:       "wearing blue gloves, lean build",
		},
		{
			name:   "empty struct falls back to legacy text",
			legacy: "the guy in the black rash guard",
			want:   "the guy in the black rash guard",
		},
		{
			name:       "nil appearance with legacy",
			appearance: nil,
			legacy:     "taller fighter",
			want:       "taller fighter",
		},
		{
			name: "nothing at all uses generic fallback",
			want: "the most prominent fighter in frame",
		},
		{
			name:   "whitespace legacy uses generic fallback",
			legacy: "   ",
			want:   "the most prominent fighter in frame",
		},
		{
			name:       "structured attributes win over legacy",
			appearance: &models.Appearance{GarmentColor: "white gi"},
			legacy:     "ignored",
			want:       "wearing white gi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeAppearance(tt.appearance, tt.legacy); got != tt.want {
				t.Errorf("DescribeAppearance() = %q, want %q", got, tt.want)
			}
		})
	}
}
