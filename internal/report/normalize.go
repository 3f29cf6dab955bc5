// Package report turns untrusted model JSON into the fixed report schema the
// mobile client consumes. Normalization never fails: missing or malformed
// content is replaced with conservative, clearly synthetic defaults so the
// structural contract holds unconditionally.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/analysis"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

const (
	defaultScore   = 70.0
	defaultSummary = "The footage was analyzed but no overall summary was produced."

	placeholderStrength = "Not enough footage to identify clear strengths"
	placeholderWeakness = "Not enough footage to identify clear weaknesses"
	placeholderInsight  = "Review the full footage with your coach for deeper takeaways"

	genericMistakeWhy = "This pattern creates openings an opponent can exploit."
	genericMistakeAlt = "Drill the correct fundamental until it replaces the habit."
)

// Build assembles the final report: the caller's configuration canonicalized,
// the normalized analysis sections, and the job identity and timestamps.
func Build(jobID uuid.UUID, cfg *models.AnalysisConfig, raw map[string]any, completedAt time.Time) *models.Report {
	role := analysis.ClassifyRole(cfg.UserRole)
	videoRounds := analysis.EffectiveVideoRounds(int(cfg.VideoRounds), float64(cfg.VideoDurationSeconds))
	fightRounds := analysis.FightRounds(int(cfg.UserFightRounds))

	rep := &models.Report{
		AnalysisID:   jobID.String(),
		CreatedAt:    canonicalTimestamp(float64(cfg.CreatedAt), completedAt),
		CompletedAt:  completedAt.UTC().Format(time.RFC3339),
		AnalysisMode: cfg.Mode(),
		Config:       NormalizeConfig(cfg, completedAt),
	}

	if cfg.Mode() == models.ModeBothFighters {
		f1 := asMap(raw["fighter1Analysis"])
		f2 := asMap(raw["fighter2Analysis"])
		// The model sometimes emits per-fighter sections at the top level
		// instead of nesting them; fill an empty slot rather than discard.
		if looksLikeAnalysis(raw) {
			if f1 == nil {
				f1 = raw
			} else if f2 == nil {
				f2 = raw
			}
		}
		rep.Fighter1 = NormalizeFighterAnalysis(f1, role, videoRounds, fightRounds)
		rep.Fighter2 = NormalizeFighterAnalysis(f2, role, videoRounds, fightRounds)
		rep.Matchup = normalizeMatchup(asMap(raw["matchup"]))
		return rep
	}

	body := raw
	if nested := asMap(raw["fighterAnalysis"]); nested != nil {
		body = nested
	}
	rep.Fighter = NormalizeFighterAnalysis(body, role, videoRounds, fightRounds)
	return rep
}

// looksLikeAnalysis reports whether the object carries per-fighter analysis
// sections at its top level.
func looksLikeAnalysis(m map[string]any) bool {
	for _, key := range []string{"overallScore", "summary", "strengths", "striking", "roundMetrics"} {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

// NormalizeFighterAnalysis produces a structurally complete FighterAnalysis
// from whatever the model returned for one fighter. raw may be nil. The
// coaching sections are synthesized only when the role is not study; under
// study they remain nil and serialize as explicit JSON null.
func NormalizeFighterAnalysis(raw map[string]any, role string, videoRounds, fightRounds int) *models.FighterAnalysis {
	fa := &models.FighterAnalysis{
		OverallScore:   clampScore(asNumber(raw["overallScore"], defaultScore)),
		Summary:        asString(raw["summary"], defaultSummary),
		Strengths:      asStringList(raw["strengths"], []string{placeholderStrength}),
		Weaknesses:     asStringList(raw["weaknesses"], []string{placeholderWeakness}),
		Striking:       normalizeSkill(raw["striking"], "striking"),
		Grappling:      normalizeSkill(raw["grappling"], "grappling"),
		Defense:        normalizeSkill(raw["defense"], "defense"),
		Footwork:       normalizeSkill(raw["footwork"], "footwork"),
		Cardio:         normalizeCardio(raw["cardio"], videoRounds),
		RoundMetrics:   normalizeRoundMetrics(raw["roundMetrics"], videoRounds),
		CommonMistakes: normalizeMistakes(raw["commonMistakes"]),
	}
	if len(fa.Strengths) == 0 {
		fa.Strengths = []string{placeholderStrength}
	}
	if len(fa.Weaknesses) == 0 {
		fa.Weaknesses = []string{placeholderWeakness}
	}

	if role == models.RoleStudy {
		return fa
	}

	fa.GamePlan = normalizeGamePlan(raw["gamePlan"], fightRounds)
	fa.MidFightAdjustments = normalizeAdjustments(raw["midFightAdjustments"])
	fa.TrainingRecommendations = normalizeTraining(raw["trainingRecommendations"])
	fa.KeyInsights = asStringList(raw["keyInsights"], []string{placeholderInsight})
	if len(fa.KeyInsights) == 0 {
		fa.KeyInsights = []string{placeholderInsight}
	}
	return fa
}

func normalizeSkill(v any, dimension string) models.SkillAssessment {
	m := asMap(v)
	return models.SkillAssessment{
		Score:      clampScore(asNumber(m["score"], defaultScore)),
		Notes:      asString(m["notes"], "No "+dimension+" assessment was produced for this footage."),
		Highlights: asStringList(m["highlights"], []string{}),
	}
}

func normalizeCardio(v any, videoRounds int) models.CardioAssessment {
	m := asMap(v)
	ca := models.CardioAssessment{
		Score: clampScore(asNumber(m["score"], defaultScore)),
		Notes: asString(m["notes"], "No conditioning assessment was produced for this footage."),
	}

	items, _ := m["rounds"].([]any)
	ca.Rounds = make([]models.CardioRound, videoRounds)
	for i := range ca.Rounds {
		var rm map[string]any
		if i < len(items) {
			rm = asMap(items[i])
		}
		ca.Rounds[i] = models.CardioRound{
			Round:        i + 1,
			PaceRating:   asNumber(rm["paceRating"], 5),
			Notes:        asString(rm["notes"], "No round data available."),
			FatigueSigns: asStringList(rm["fatigueSigns"], []string{}),
		}
	}
	return ca
}

func normalizeRoundMetrics(v any, videoRounds int) []models.RoundMetrics {
	items, _ := v.([]any)
	out := make([]models.RoundMetrics, videoRounds)
	for i := range out {
		var rm map[string]any
		if i < len(items) {
			rm = asMap(items[i])
		}
		out[i] = models.RoundMetrics{
			Round:              i + 1,
			StrikesLanded:      asInt(rm["strikesLanded"], 0),
			StrikesAttempted:   asInt(rm["strikesAttempted"], 0),
			Accuracy:           asNumber(rm["accuracy"], 0),
			TakedownsLanded:    asInt(rm["takedownsLanded"], 0),
			ControlTimeSeconds: asInt(rm["controlTimeSeconds"], 0),
			Notes:              asString(rm["notes"], "No data recorded for this round."),
		}
	}
	return out
}

// normalizeMistakes handles both the current three-field object shape and the
// legacy plain-string shape, upgrading bare strings with generic filler for
// the fields a string cannot carry.
func normalizeMistakes(v any) []models.Mistake {
	items, ok := v.([]any)
	if !ok {
		return []models.Mistake{}
	}
	out := make([]models.Mistake, 0, len(items))
	for _, item := range items {
		switch mv := item.(type) {
		case string:
			if mv == "" {
				continue
			}
			out = append(out, models.Mistake{
				Mistake:     mv,
				Why:         genericMistakeWhy,
				Alternative: genericMistakeAlt,
			})
		case map[string]any:
			out = append(out, models.Mistake{
				Mistake:     asString(mv["mistake"], "Unspecified mistake"),
				Why:         asString(mv["why"], genericMistakeWhy),
				Alternative: asString(mv["alternative"], genericMistakeAlt),
			})
		}
	}
	return out
}

func normalizeGamePlan(v any, fightRounds int) *models.GamePlan {
	m := asMap(v)
	gp := &models.GamePlan{
		Overview: asString(m["overview"], "Control the pace early, bank rounds, and trust your conditioning."),
	}

	items, _ := m["rounds"].([]any)
	gp.Rounds = make([]models.GamePlanRound, fightRounds)
	for i := range gp.Rounds {
		var rm map[string]any
		if i < len(items) {
			rm = asMap(items[i])
		}
		gp.Rounds[i] = models.GamePlanRound{
			Round:   i + 1,
			Focus:   asString(rm["focus"], "Stick to your fundamentals and fight your fight."),
			Tactics: asStringList(rm["tactics"], []string{}),
		}
	}
	return gp
}

func normalizeAdjustments(v any) []models.Adjustment {
	items, ok := v.([]any)
	if !ok {
		return []models.Adjustment{}
	}
	out := make([]models.Adjustment, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, models.Adjustment{
			Scenario:   asString(m["scenario"], "If the fight is not going your way"),
			Adjustment: asString(m["adjustment"], "Reset to your fundamentals and re-establish your range."),
		})
	}
	return out
}

func normalizeTraining(v any) []models.TrainingRecommendation {
	items, ok := v.([]any)
	if !ok {
		return []models.TrainingRecommendation{}
	}
	out := make([]models.TrainingRecommendation, 0, len(items))
	for _, item := range items {
		m := asMap(item)
		if m == nil {
			continue
		}
		out = append(out, models.TrainingRecommendation{
			Area:     asString(m["area"], "General conditioning"),
			Drills:   asStringList(m["drills"], []string{}),
			Priority: normalizePriority(asString(m["priority"], "medium")),
		})
	}
	return out
}

func normalizePriority(p string) string {
	switch p {
	case "high", "medium", "low":
		return p
	default:
		return "medium"
	}
}

// normalizeMatchup reconciles the cross-fighter section, migrating the
// obsolete predictedWinner shape into preparationGuidance. The winner name
// and confidence are discarded.
func normalizeMatchup(m map[string]any) *models.MatchupAnalysis {
	mu := &models.MatchupAnalysis{
		StyleComparison: asString(m["styleComparison"], "No style comparison was produced for this footage."),
		KeyDifferences:  asStringList(m["keyDifferences"], []string{}),
	}

	if pg := asMap(m["preparationGuidance"]); pg != nil {
		mu.PreparationGuidance = models.PreparationGuidance{
			Strategy:   asString(pg["strategy"], "Prepare for both fighters' strongest weapons."),
			FocusAreas: asStringList(pg["focusAreas"], []string{}),
			Notes:      asString(pg["notes"], ""),
		}
		return mu
	}

	if pw := asMap(m["predictedWinner"]); pw != nil {
		mu.PreparationGuidance = models.PreparationGuidance{
			Strategy:   asString(pw["reasoning"], "Prepare for both fighters' strongest weapons."),
			FocusAreas: []string{},
			Notes:      "",
		}
		return mu
	}

	mu.PreparationGuidance = models.PreparationGuidance{
		Strategy:   "Prepare for both fighters' strongest weapons.",
		FocusAreas: []string{},
		Notes:      "",
	}
	return mu
}
