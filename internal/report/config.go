package report

import (
	"time"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/analysis"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// NormalizeConfig canonicalizes the caller's configuration for embedding in
// the final report. The caller's original config is never mutated; this is a
// derived copy with dates canonicalized and defaults filled.
func NormalizeConfig(cfg *models.AnalysisConfig, now time.Time) models.NormalizedConfig {
	name := cfg.FighterName
	if name == "" {
		name = "Fighter"
	}
	return models.NormalizedConfig{
		FighterName:          name,
		OpponentName:         optString(cfg.OpponentName),
		UserRole:             analysis.CanonicalRolePhrase(cfg.UserRole),
		UserFightRounds:      analysis.FightRounds(int(cfg.UserFightRounds)),
		VideoRounds:          analysis.EffectiveVideoRounds(int(cfg.VideoRounds), float64(cfg.VideoDurationSeconds)),
		VideoDurationSeconds: float64(cfg.VideoDurationSeconds),
		AnalysisMode:         cfg.Mode(),
		MartialArt:           optString(cfg.MartialArt),
		ExperienceLevel:      optString(cfg.ExperienceLevel),
		CreatedAt:            canonicalTimestamp(float64(cfg.CreatedAt), now),
	}
}

// optString maps the empty string to explicit null rather than leaving the
// field absent.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// canonicalTimestamp reinterprets a client-supplied numeric epoch into an
// RFC3339 UTC string. Clients send milliseconds; values too small to be
// millisecond timestamps are treated as seconds from older clients. Missing
// or non-positive values fall back to now.
func canonicalTimestamp(epoch float64, now time.Time) string {
	if epoch <= 0 {
		return now.UTC().Format(time.RFC3339)
	}
	if epoch < 1e11 {
		return time.Unix(int64(epoch), 0).UTC().Format(time.RFC3339)
	}
	return time.UnixMilli(int64(epoch)).UTC().Format(time.RFC3339)
}
