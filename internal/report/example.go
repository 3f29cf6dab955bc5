package report

import "github.com/quantumcreationsapp-ai/fightlabai-backend/pkg/models"

// Example returns a static, fully populated single-fighter report used by the
// /test-report fixture endpoint for client-side contract testing.
func Example() *models.Report {
	opponent := "Alex Rivera"
	martialArt := "MMA"
	experience := "amateur"
	return &models.Report{
		AnalysisID:   "00000000-0000-0000-0000-000000000001",
		CreatedAt:    "2026-01-15T18:30:00Z",
		CompletedAt:  "2026-01-15T18:36:42Z",
		AnalysisMode: models.ModeSingleFighter,
		Config: models.NormalizedConfig{
			FighterName:          "Jordan Lee",
			OpponentName:         &opponent,
			UserRole:             models.RolePhraseFighter,
			UserFightRounds:      3,
			VideoRounds:          2,
			VideoDurationSeconds: 480,
			AnalysisMode:         models.ModeSingleFighter,
			MartialArt:           &martialArt,
			ExperienceLevel:      &experience,
			CreatedAt:            "2026-01-15T18:30:00Z",
		},
		Fighter: &models.FighterAnalysis{
			OverallScore: 78,
			Summary:      "A composed, pressure-heavy performance built around the jab. Output dips noticeably in the second round, and the lead leg is left unprotected during exchanges.",
			Strengths: []string{
				"Consistent jab that controls distance",
				"Good head movement off the back foot",
				"Strong takedown defense against the fence",
			},
			Weaknesses: []string{
				"Drops the right hand when throwing the lead hook",
				"Absorbs low kicks without checking or countering",
				"Pace falls off sharply after the first round",
			},
			Striking: models.SkillAssessment{
				Score:      81,
				Notes:      "Crisp boxing fundamentals; the jab-cross lands at a high rate. Kicks are underused.",
				Highlights: []string{"Double jab to straight right in round 1", "Counter right hand over the opponent's jab"},
			},
			Grappling: models.SkillAssessment{
				Score:      72,
				Notes:      "Solid defensive wrestling; offensive grappling rarely attempted.",
				Highlights: []string{"Sprawl and circle-off at the fence in round 2"},
			},
			Defense: models.SkillAssessment{
				Score:      74,
				Notes:      "Good upper-body movement, but the lead leg absorbs repeated kicks.",
				Highlights: []string{"Slip-counter sequence midway through round 1"},
			},
			Footwork: models.SkillAssessment{
				Score:      76,
				Notes:      "Moves well laterally going left; predictable when circling right.",
				Highlights: []string{"Angle-off after combinations in round 1"},
			},
			Cardio: models.CardioAssessment{
				Score: 65,
				Notes: "Strong opening pace that is not sustained; visible mouth breathing from mid round 2.",
				Rounds: []models.CardioRound{
					{Round: 1, PaceRating: 8, Notes: "High output, sharp on exits.", FatigueSigns: []string{}},
					{Round: 2, PaceRating: 5, Notes: "Output drops; hands carried lower.", FatigueSigns: []string{"mouth breathing", "flat-footed exchanges"}},
				},
			},
			RoundMetrics: []models.RoundMetrics{
				{Round: 1, StrikesLanded: 27, StrikesAttempted: 41, Accuracy: 0.66, TakedownsLanded: 0, ControlTimeSeconds: 12, Notes: "Dominant striking round behind the jab."},
				{Round: 2, StrikesLanded: 14, StrikesAttempted: 29, Accuracy: 0.48, TakedownsLanded: 1, ControlTimeSeconds: 48, Notes: "Closer round; timely takedown late."},
			},
			CommonMistakes: []models.Mistake{
				{
					Mistake:     "Dropping the right hand while throwing the lead hook",
					Why:         "Leaves the chin exposed to counter crosses over the top.",
					Alternative: "Keep the right glove glued to the cheek and roll off after the hook.",
				},
				{
					Mistake:     "Backing straight up under pressure",
					Why:         "Straight-line retreats walk you onto the fence and into power shots.",
					Alternative: "Exit on angles behind the jab or with a pivot.",
				},
			},
			GamePlan: &models.GamePlan{
				Overview: "Win the jab battle, bank the early rounds, and force the opponent to chase.",
				Rounds: []models.GamePlanRound{
					{Round: 1, Focus: "Establish the jab and read reactions.", Tactics: []string{"Double jab entries", "Touch the body early"}},
					{Round: 2, Focus: "Mix in level changes off the jab.", Tactics: []string{"Jab to reactive takedown", "Check low kicks immediately"}},
					{Round: 3, Focus: "Protect the lead and manage distance.", Tactics: []string{"Stick and move", "Clinch and reset if hurt"}},
				},
			},
			MidFightAdjustments: []models.Adjustment{
				{Scenario: "Opponent starts targeting the lead leg", Adjustment: "Check or angle out on the first kick and answer with the straight right."},
				{Scenario: "Output dropping in round 2", Adjustment: "Shorten combinations to two strikes and take deep nose breaths between exchanges."},
			},
			TrainingRecommendations: []models.TrainingRecommendation{
				{Area: "Anaerobic conditioning", Drills: []string{"5x3min bag intervals at fight pace", "Assault bike sprints 30s on / 30s off"}, Priority: "high"},
				{Area: "Kick defense", Drills: []string{"Partner low-kick check drill", "Shadow rounds emphasizing leg retraction"}, Priority: "medium"},
			},
			KeyInsights: []string{
				"The jab is the clear path to winning rounds; build everything off it.",
				"Conditioning, not skill, lost the second round.",
				"Opponents will target the lead leg until it is defended.",
			},
		},
	}
}
