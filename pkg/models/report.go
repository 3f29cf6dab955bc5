package models

// Report is the fully normalized analysis delivered to the mobile client.
// Every field is guaranteed present with its declared primitive type after
// normalization, regardless of what the model returned. Fighter is set in
// single mode; Fighter1/Fighter2/Matchup are set in both-fighters mode.
type Report struct {
	AnalysisID   string           `json:"analysisId"`
	CreatedAt    string           `json:"createdAt"`
	CompletedAt  string           `json:"completedAt"`
	AnalysisMode string           `json:"analysisMode"`
	Config       NormalizedConfig `json:"config"`
	Fighter      *FighterAnalysis `json:"fighterAnalysis,omitempty"`
	Fighter1     *FighterAnalysis `json:"fighter1Analysis,omitempty"`
	Fighter2     *FighterAnalysis `json:"fighter2Analysis,omitempty"`
	Matchup      *MatchupAnalysis `json:"matchup,omitempty"`
}

// NormalizedConfig is the date-canonicalized, defaulted copy of the caller's
// configuration embedded in the final report. Optional fields are explicit
// null rather than absent.
type NormalizedConfig struct {
	FighterName          string  `json:"fighterName"`
	OpponentName         *string `json:"opponentName"`
	UserRole             string  `json:"userRole"`
	UserFightRounds      int     `json:"userFightRounds"`
	VideoRounds          int     `json:"videoRounds"`
	VideoDurationSeconds float64 `json:"videoDurationSeconds"`
	AnalysisMode         string  `json:"analysisMode"`
	MartialArt           *string `json:"martialArt"`
	ExperienceLevel      *string `json:"experienceLevel"`
	CreatedAt            string  `json:"createdAt"`
}

// FighterAnalysis holds every per-fighter section of the report.
//
// The four coaching sections (GamePlan, MidFightAdjustments,
// TrainingRecommendations, KeyInsights) are serialized without omitempty on
// purpose: under the study role they must appear as explicit JSON null, never
// as synthesized defaults.
type FighterAnalysis struct {
	OverallScore   float64          `json:"overallScore"`
	Summary        string           `json:"summary"`
	Strengths      []string         `json:"strengths"`
	Weaknesses     []string         `json:"weaknesses"`
	Striking       SkillAssessment  `json:"striking"`
	Grappling      SkillAssessment  `json:"grappling"`
	Defense        SkillAssessment  `json:"defense"`
	Footwork       SkillAssessment  `json:"footwork"`
	Cardio         CardioAssessment `json:"cardio"`
	RoundMetrics   []RoundMetrics   `json:"roundMetrics"`
	CommonMistakes []Mistake        `json:"commonMistakes"`

	GamePlan                *GamePlan                `json:"gamePlan"`
	MidFightAdjustments     []Adjustment             `json:"midFightAdjustments"`
	TrainingRecommendations []TrainingRecommendation `json:"trainingRecommendations"`
	KeyInsights             []string                 `json:"keyInsights"`
}

// SkillAssessment scores one dimension of a fighter's game.
type SkillAssessment struct {
	Score      float64  `json:"score"`
	Notes      string   `json:"notes"`
	Highlights []string `json:"highlights"`
}

// CardioAssessment covers conditioning across the observed video rounds.
// Rounds always has exactly one entry per video-derived round.
type CardioAssessment struct {
	Score  float64       `json:"score"`
	Notes  string        `json:"notes"`
	Rounds []CardioRound `json:"rounds"`
}

type CardioRound struct {
	Round        int      `json:"round"`
	PaceRating   float64  `json:"paceRating"`
	Notes        string   `json:"notes"`
	FatigueSigns []string `json:"fatigueSigns"`
}

// RoundMetrics holds observed per-round statistics; one entry per
// video-derived round.
type RoundMetrics struct {
	Round              int     `json:"round"`
	StrikesLanded      int     `json:"strikesLanded"`
	StrikesAttempted   int     `json:"strikesAttempted"`
	Accuracy           float64 `json:"accuracy"`
	TakedownsLanded    int     `json:"takedownsLanded"`
	ControlTimeSeconds int     `json:"controlTimeSeconds"`
	Notes              string  `json:"notes"`
}

// Mistake is the three-field shape for the common-mistakes list. Older model
// output represented these as bare strings; the normalizer upgrades those.
type Mistake struct {
	Mistake     string `json:"mistake"`
	Why         string `json:"why"`
	Alternative string `json:"alternative"`
}

// GamePlan is the prescriptive plan for the user's upcoming fight. Rounds
// always has exactly one entry per stated upcoming-fight round.
type GamePlan struct {
	Overview string          `json:"overview"`
	Rounds   []GamePlanRound `json:"rounds"`
}

type GamePlanRound struct {
	Round   int      `json:"round"`
	Focus   string   `json:"focus"`
	Tactics []string `json:"tactics"`
}

type Adjustment struct {
	Scenario   string `json:"scenario"`
	Adjustment string `json:"adjustment"`
}

type TrainingRecommendation struct {
	Area     string   `json:"area"`
	Drills   []string `json:"drills"`
	Priority string   `json:"priority"`
}

// MatchupAnalysis is the shared cross-fighter section in both-fighters mode.
type MatchupAnalysis struct {
	StyleComparison     string              `json:"styleComparison"`
	KeyDifferences      []string            `json:"keyDifferences"`
	PreparationGuidance PreparationGuidance `json:"preparationGuidance"`
}

// PreparationGuidance supersedes the obsolete predicted-winner section; the
// normalizer migrates old-format reasoning into Strategy and discards the
// winner name and confidence.
type PreparationGuidance struct {
	Strategy   string   `json:"strategy"`
	FocusAreas []string `json:"focusAreas"`
	Notes      string   `json:"notes"`
}
