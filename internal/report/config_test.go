package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

func TestCanonicalTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		epoch float64
		want  string
	}{
		{"zero falls back to now", 0, "2026-03-14T12:00:00Z"},
		{"negative falls back to now", -5, "2026-03-14T12:00:00Z"},
		{"milliseconds", 1767225600000, "2026-01-01T00:00:00Z"},
		{"seconds from older clients", 1767225600, "2026-01-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalTimestamp(tt.epoch, now); got != tt.want {
				t.Errorf("canonicalTimestamp(%v) = %q, want %q", tt.epoch, got, tt.want)
			}
		})
	}
}

func TestNormalizeConfigDefaults(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	got := NormalizeConfig(&models.AnalysisConfig{}, now)

	if got.FighterName != "Fighter" {
		t.Errorf("fighterName = %q, want Fighter", got.FighterName)
	}
	if got.UserRole != models.RolePhraseFighter {
		t.Errorf("userRole = %q, want canonical fighter phrase", got.UserRole)
	}
	if got.UserFightRounds != 3 {
		t.Errorf("userFightRounds = %d, want 3", got.UserFightRounds)
	}
	if got.VideoRounds != 1 {
		t.Errorf("videoRounds = %d, want 1", got.VideoRounds)
	}
	if got.AnalysisMode != models.ModeSingleFighter {
		t.Errorf("analysisMode = %q, want single", got.AnalysisMode)
	}
	if got.CreatedAt != "2026-03-14T12:00:00Z" {
		t.Errorf("createdAt = %q", got.CreatedAt)
	}
	if got.OpponentName != nil || got.MartialArt != nil || got.ExperienceLevel != nil {
		t.Error("absent optional fields must be nil")
	}

	// Optional fields serialize as explicit null, never disappear.
	body, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"opponentName":null`, `"martialArt":null`, `"experienceLevel":null`} {
		if !strings.Contains(string(body), key) {
			t.Errorf("serialized config missing %s", key)
		}
	}
}

func TestNormalizeConfigCanonicalizesRole(t *testing.T) {
	now := time.Now().UTC()
	got := NormalizeConfig(&models.AnalysisConfig{UserRole: "cornerman and trainer"}, now)
	if got.UserRole != models.RolePhraseCoach {
		t.Errorf("userRole = %q, want canonical coach phrase", got.UserRole)
	}
}

func TestNormalizeConfigKeepsProvidedValues(t *testing.T) {
	now := time.Now().UTC()
	cfg := &models.AnalysisConfig{
		FighterName:          "Jordan Lee",
		OpponentName:         "Alex Rivera",
		UserRole:             models.RolePhraseCoach,
		UserFightRounds:      5,
		VideoRounds:          3,
		VideoDurationSeconds: 1800,
		MartialArt:           "Muay Thai",
		ExperienceLevel:      "amateur",
	}
	got := NormalizeConfig(cfg, now)

	if got.FighterName != "Jordan Lee" {
		t.Errorf("fighterName = %q", got.FighterName)
	}
	if got.OpponentName == nil || *got.OpponentName != "Alex Rivera" {
		t.Errorf("opponentName = %v", got.OpponentName)
	}
	if got.UserFightRounds != 5 || got.VideoRounds != 3 {
		t.Errorf("rounds = %d/%d, want 5/3", got.UserFightRounds, got.VideoRounds)
	}
	if got.MartialArt == nil || *got.MartialArt != "Muay Thai" {
		t.Errorf("martialArt = %v", got.MartialArt)
	}
}
