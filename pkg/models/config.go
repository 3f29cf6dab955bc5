// Package models contains shared data models used across the FightLab backend.
package models

import (
	"strconv"
	"strings"
)

// Canonical role values derived from the free-text userRole setting.
const (
	RoleFighter = "fighter"
	RoleCoach   = "coach"
	RoleStudy   = "study"
)

// Accepted userRole phrases from the mobile client. Anything else is
// substituted with RolePhraseFighter at report-assembly time.
const (
	RolePhraseFighter = "Fighter preparing for a fight"
	RolePhraseCoach   = "Coach or trainer"
	RolePhraseStudy   = "General study / analysis"
)

// Analysis modes. Single analyzes one described fighter; both analyzes both
// fighters in frame plus a cross-fighter matchup section.
const (
	ModeSingleFighter = "single"
	ModeBothFighters  = "both"
)

// FlexInt decodes from a JSON number, a numeric string, or null.
// Malformed values decode to zero rather than failing the request.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt(parseFlexNumber(data))
	return nil
}

// FlexFloat is the float counterpart of FlexInt.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(parseFlexNumber(data))
	return nil
}

func parseFlexNumber(data []byte) float64 {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return 0
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return n
}

// Appearance holds structured descriptors used to identify a fighter in frame.
type Appearance struct {
	GarmentColor           string `json:"garmentColor,omitempty"`
	SkinTone               string `json:"skinTone,omitempty"`
	Build                  string `json:"build,omitempty"`
	RelativeHeight         string `json:"relativeHeight,omitempty"`
	DistinguishingFeatures string `json:"distinguishingFeatures,omitempty"`
	FreeText               string `json:"freeText,omitempty"`
}

// Empty reports whether no structured attribute is set.
func (a *Appearance) Empty() bool {
	if a == nil {
		return true
	}
	return a.GarmentColor == "" && a.SkinTone == "" && a.Build == "" &&
		a.RelativeHeight == "" && a.DistinguishingFeatures == "" && a.FreeText == ""
}

// AnalysisConfig is the caller-supplied configuration attached to an analyze
// request. Decoding is deliberately tolerant: numeric fields accept numbers or
// numeric strings, and unknown values fall back to zero values. Defaulting and
// validation happen downstream, never at decode time.
type AnalysisConfig struct {
	FighterName          string      `json:"fighterName,omitempty"`
	OpponentName         string      `json:"opponentName,omitempty"`
	UserRole             string      `json:"userRole,omitempty"`
	UserFightRounds      FlexInt     `json:"userFightRounds,omitempty"`
	VideoRounds          FlexInt     `json:"videoRounds,omitempty"`
	VideoDurationSeconds FlexFloat   `json:"videoDurationSeconds,omitempty"`
	AnalysisMode         string      `json:"analysisMode,omitempty"`
	MartialArt           string      `json:"martialArt,omitempty"`
	ExperienceLevel      string      `json:"experienceLevel,omitempty"`
	Appearance           *Appearance `json:"appearance,omitempty"`
	Fighter2Name         string      `json:"fighter2Name,omitempty"`
	Fighter2Appearance   *Appearance `json:"fighter2Appearance,omitempty"`
	// FighterDescription is the legacy free-text appearance field, used only
	// when no structured Appearance attributes are present.
	FighterDescription string `json:"fighterDescription,omitempty"`
	// CreatedAt is a client-supplied epoch timestamp (milliseconds, or seconds
	// from older clients). Canonicalized to RFC3339 at report-assembly time.
	CreatedAt FlexFloat `json:"createdAt,omitempty"`
}

// Mode returns the effective analysis mode, defaulting to single-fighter.
func (c *AnalysisConfig) Mode() string {
	if c.AnalysisMode == ModeBothFighters {
		return ModeBothFighters
	}
	return ModeSingleFighter
}
