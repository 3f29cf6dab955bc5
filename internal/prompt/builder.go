// Package prompt renders analysis configurations into instruction text for
// the vision model. Builders are pure: identical input always yields a
// byte-identical prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/analysis"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"
)

// Builder constructs model prompts from an analysis configuration.
type Builder struct{}

// Build renders the full prompt for the given configuration and number of
// frames actually sent to the model. The analysis mode selects one of two
// mutually exclusive prompt bodies.
func (b Builder) Build(cfg *models.AnalysisConfig, frameCount int) string {
	if cfg.Mode() == models.ModeBothFighters {
		return b.buildBothFighters(cfg, frameCount)
	}
	return b.buildSingleFighter(cfg, frameCount)
}

func (b Builder) buildSingleFighter(cfg *models.AnalysisConfig, frameCount int) string {
	role := analysis.ClassifyRole(cfg.UserRole)
	videoRounds := analysis.EffectiveVideoRounds(int(cfg.VideoRounds), float64(cfg.VideoDurationSeconds))
	fightRounds := analysis.FightRounds(int(cfg.UserFightRounds))

	var sb strings.Builder
	b.writeHeader(&sb, cfg, frameCount, videoRounds)

	fmt.Fprintf(&sb, "Analyze ONE fighter only: the fighter %s.\n",
		analysis.DescribeAppearance(cfg.Appearance, cfg.FighterDescription))
	if cfg.FighterName != "" {
		fmt.Fprintf(&sb, "Refer to this fighter as %q.\n", cfg.FighterName)
	}
	if cfg.OpponentName != "" {
		fmt.Fprintf(&sb, "Their opponent in the footage is %q; mention the opponent only as context.\n", cfg.OpponentName)
	}
	sb.WriteString("\n")

	b.writeAudience(&sb, role, fightRounds)

	sb.WriteString("Return a single JSON object with EXACTLY these top-level keys:\n\n")
	b.writeFighterSchema(&sb, role, videoRounds, fightRounds)
	b.writeFooter(&sb)
	return sb.String()
}

func (b Builder) buildBothFighters(cfg *models.AnalysisConfig, frameCount int) string {
	role := analysis.ClassifyRole(cfg.UserRole)
	videoRounds := analysis.EffectiveVideoRounds(int(cfg.VideoRounds), float64(cfg.VideoDurationSeconds))
	fightRounds := analysis.FightRounds(int(cfg.UserFightRounds))

	var sb strings.Builder
	b.writeHeader(&sb, cfg, frameCount, videoRounds)

	fmt.Fprintf(&sb, "Analyze BOTH fighters in the footage.\n")
	fmt.Fprintf(&sb, "Fighter 1 is the fighter %s.",
		analysis.DescribeAppearance(cfg.Appearance, cfg.FighterDescription))
	if cfg.FighterName != "" {
		fmt.Fprintf(&sb, " Refer to fighter 1 as %q.", cfg.FighterName)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Fighter 2 is the other fighter%s.",
		secondFighterClause(cfg))
	if cfg.Fighter2Name != "" {
		fmt.Fprintf(&sb, " Refer to fighter 2 as %q.", cfg.Fighter2Name)
	}
	sb.WriteString("\n\n")

	b.writeAudience(&sb, role, fightRounds)

	sb.WriteString("Return a single JSON object with EXACTLY these top-level keys:\n\n")
	sb.WriteString("\"fighter1Analysis\": an object with the following keys, describing fighter 1 only:\n")
	b.writeFighterSchema(&sb, role, videoRounds, fightRounds)
	sb.WriteString("\n\"fighter2Analysis\": an object with the same keys, describing fighter 2 only.\n")
	sb.WriteString("Nest each fighter's sections under its own key; never emit analysis sections at the top level.\n\n")

	sb.WriteString("\"matchup\": an object comparing the two fighters:\n")
	sb.WriteString("  - \"styleComparison\": string contrasting the two styles\n")
	sb.WriteString("  - \"keyDifferences\": array of strings, the decisive differences between them\n")
	sb.WriteString("  - \"preparationGuidance\": object with \"strategy\" (string), \"focusAreas\" (array of strings), \"notes\" (string)\n")
	sb.WriteString("Do NOT include a \"predictedWinner\" section; it is obsolete.\n")

	b.writeFooter(&sb)
	return sb.String()
}

func secondFighterClause(cfg *models.AnalysisConfig) string {
	if cfg.Fighter2Appearance.Empty() {
		return ""
	}
	return ", " + analysis.DescribeAppearance(cfg.Fighter2Appearance, "")
}

func (b Builder) writeHeader(sb *strings.Builder, cfg *models.AnalysisConfig, frameCount, videoRounds int) {
	discipline := cfg.MartialArt
	if discipline == "" {
		discipline = "combat sports"
	}
	fmt.Fprintf(sb, "You are a world-class %s analyst reviewing fight footage.\n", discipline)
	fmt.Fprintf(sb, "You are given %d still frames sampled in temporal order from a single video", frameCount)
	if cfg.VideoDurationSeconds > 0 {
		fmt.Fprintf(sb, " of roughly %.1f minutes", float64(cfg.VideoDurationSeconds)/60)
	}
	sb.WriteString(".\n")
	fmt.Fprintf(sb, "Treat the footage as containing %d round(s); number all round-by-round output sequentially from 1 to %d.\n",
		videoRounds, videoRounds)
	if cfg.ExperienceLevel != "" {
		fmt.Fprintf(sb, "The fighter's experience level is: %s.\n", cfg.ExperienceLevel)
	}
	sb.WriteString("\n")
}

func (b Builder) writeAudience(sb *strings.Builder, role string, fightRounds int) {
	switch role {
	case models.RoleCoach:
		sb.WriteString("Your audience is a coach preparing their fighter. Write prescriptive, corner-ready advice.\n")
		fmt.Fprintf(sb, "The fighter's upcoming fight is scheduled for %d round(s).\n\n", fightRounds)
	case models.RoleStudy:
		sb.WriteString("Your audience is studying this fight for general understanding. Write neutral, descriptive analysis only.\n\n")
	default:
		sb.WriteString("Your audience is the fighter themselves, preparing to compete. Write direct, actionable advice in the second person.\n")
		fmt.Fprintf(sb, "Their upcoming fight is scheduled for %d round(s).\n\n", fightRounds)
	}
}

func (b Builder) writeFighterSchema(sb *strings.Builder, role string, videoRounds, fightRounds int) {
	sb.WriteString("  - \"overallScore\": number 0-100 rating overall performance in the footage\n")
	sb.WriteString("  - \"summary\": string, 2-4 sentences summarizing the performance\n")
	sb.WriteString("  - \"strengths\": array of 3-5 strings, the clearest strengths shown\n")
	sb.WriteString("  - \"weaknesses\": array of 3-5 strings, the clearest weaknesses shown\n")
	sb.WriteString("  - \"striking\": object with \"score\" (number 0-100), \"notes\" (string), \"highlights\" (array of strings)\n")
	sb.WriteString("  - \"grappling\": object with \"score\", \"notes\", \"highlights\" in the same shape\n")
	sb.WriteString("  - \"defense\": object with \"score\", \"notes\", \"highlights\" in the same shape\n")
	sb.WriteString("  - \"footwork\": object with \"score\", \"notes\", \"highlights\" in the same shape\n")
	fmt.Fprintf(sb, "  - \"cardio\": object with \"score\" (number 0-100), \"notes\" (string), and \"rounds\": array of EXACTLY %d objects, one per observed round, each with \"round\" (number), \"paceRating\" (number 0-10), \"notes\" (string), \"fatigueSigns\" (array of strings)\n", videoRounds)
	fmt.Fprintf(sb, "  - \"roundMetrics\": array of EXACTLY %d objects, one per observed round, each with \"round\", \"strikesLanded\", \"strikesAttempted\", \"accuracy\" (0-1), \"takedownsLanded\", \"controlTimeSeconds\" (numbers) and \"notes\" (string)\n", videoRounds)
	sb.WriteString("  - \"commonMistakes\": array of objects, each with \"mistake\" (what to avoid), \"why\", and \"alternative\" (all strings)\n")

	if role == models.RoleStudy {
		sb.WriteString("\nBecause this is a neutral study, do NOT include any of the following keys: ")
		sb.WriteString("\"gamePlan\", \"midFightAdjustments\", \"trainingRecommendations\", \"keyInsights\". ")
		sb.WriteString("Omit them entirely rather than sending empty values.\n")
		return
	}

	fmt.Fprintf(sb, "  - \"gamePlan\": object with \"overview\" (string) and \"rounds\": array of EXACTLY %d objects, one per round of the upcoming fight, each with \"round\" (number), \"focus\" (string), \"tactics\" (array of strings)\n", fightRounds)
	sb.WriteString("  - \"midFightAdjustments\": array of objects, each with \"scenario\" and \"adjustment\" (strings)\n")
	sb.WriteString("  - \"trainingRecommendations\": array of objects, each with \"area\" (string), \"drills\" (array of strings), \"priority\" (\"high\", \"medium\", or \"low\")\n")
	sb.WriteString("  - \"keyInsights\": array of 3-5 strings, the most important takeaways\n")
}

func (b Builder) writeFooter(sb *strings.Builder) {
	sb.WriteString("\nRespond with the JSON object ONLY. ")
	sb.WriteString("No markdown code fences, no prose before or after, no trailing commentary. ")
	sb.WriteString("Every numeric field must be a JSON number, not a string.\n")
}
