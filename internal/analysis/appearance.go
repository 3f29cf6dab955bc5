package analysis

import (
	"strings"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

const fallbackAppearance = "the most prominent fighter in frame"

// DescribeAppearance renders a fighter identification string from structured
// appearance attributes, joined in a fixed order. Falls back to the legacy
// free-text description when no structured attribute is present, then to a
// generic description.
func DescribeAppearance(a *models.Appearance, legacy string) string {
	if a.Empty() {
		if s := strings.TrimSpace(legacy); s != "" {
			return s
		}
		return fallbackAppearance
	}

	var parts []string
	if a.GarmentColor != "" {
		parts = append(parts, "wearing "+a.GarmentColor)
	}
	if a.SkinTone != "" {
		parts = append(parts, a.SkinTone+" skin tone")
	}
	if a.Build != "" {
		parts = append(parts, a.Build+" build")
	}
	if a.RelativeHeight != "" {
		parts = append(parts, a.RelativeHeight)
	}
	if a.DistinguishingFeatures != "" {
		parts = append(parts, a.DistinguishingFeatures)
	}
	if a.FreeText != "" {
		parts = append(parts, a.FreeText)
	}
	return strings.Join(parts, ", ")
}
