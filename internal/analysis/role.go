// Package analysis contains pure domain helpers shared by the prompt builder
// and the report normalizer: role classification, round derivation, and
// appearance text assembly.
package analysis

import (
	"strings"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// Phrase lists checked in order: fighter first, then coach, then study.
// First match wins, so a role mentioning both "coach" and "fighter"
// classifies as fighter.
var (
	fighterPhrases = []string{"fighter", "fight", "compete", "competitor", "preparing"}
	coachPhrases   = []string{"coach", "trainer", "corner"}
	studyPhrases   = []string{"study", "analysis", "analyst", "general"}
)

// ClassifyRole maps the free-text userRole setting onto one of the three
// canonical roles by case-insensitive substring match. Empty, absent, or
// unrecognized input classifies as fighter.
func ClassifyRole(raw string) string {
	r := strings.ToLower(strings.TrimSpace(raw))
	if r == "" {
		return models.RoleFighter
	}
	for _, p := range fighterPhrases {
		if strings.Contains(r, p) {
			return models.RoleFighter
		}
	}
	for _, p := range coachPhrases {
		if strings.Contains(r, p) {
			return models.RoleCoach
		}
	}
	for _, p := range studyPhrases {
		if strings.Contains(r, p) {
			return models.RoleStudy
		}
	}
	return models.RoleFighter
}

// CanonicalRolePhrase validates a userRole value against the accepted
// enumeration, substituting the canonical phrase for its classified role when
// the supplied value matches none of them.
func CanonicalRolePhrase(raw string) string {
	switch raw {
	case models.RolePhraseFighter, models.RolePhraseCoach, models.RolePhraseStudy:
		return raw
	}
	switch ClassifyRole(raw) {
	case models.RoleCoach:
		return models.RolePhraseCoach
	case models.RoleStudy:
		return models.RolePhraseStudy
	default:
		return models.RolePhraseFighter
	}
}
