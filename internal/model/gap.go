package model

// SkillGap is the shortfall between current and target competence in one
// area, derived from an analysis suggestion. Ephemeral: recomputed on every
// roadmap generation and never persisted.
type SkillGap struct {
	SkillArea    SkillArea             `json:"skillArea"`
	CurrentLevel float64               `json:"currentLevel"`
	TargetLevel  float64               `json:"targetLevel"`
	Priority     float64               `json:"priority"`
	Suggestion   ImprovementSuggestion `json:"suggestion"`
}

func (g SkillGap) GapSize() float64 {
	return g.TargetLevel - g.CurrentLevel
}
