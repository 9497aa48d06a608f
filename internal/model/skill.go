package model

import "time"

// SkillArea is the closed set of writing competencies the coach tracks.
type SkillArea string

const (
	SkillGrammar    SkillArea = "grammar"
	SkillStyle      SkillArea = "style"
	SkillClarity    SkillArea = "clarity"
	SkillVocabulary SkillArea = "vocabulary"
	SkillStructure  SkillArea = "structure"
	SkillTone       SkillArea = "tone"
	SkillCreativity SkillArea = "creativity"
)

// AllSkillAreas lists every tracked area in display order.
var AllSkillAreas = []SkillArea{
	SkillGrammar,
	SkillStyle,
	SkillClarity,
	SkillVocabulary,
	SkillStructure,
	SkillTone,
	SkillCreativity,
}

// SkillAreaFromString maps an analysis suggestion area tag onto a SkillArea.
// The mapping is 1:1 over the closed set; unknown tags report ok=false.
func SkillAreaFromString(s string) (SkillArea, bool) {
	for _, area := range AllSkillAreas {
		if string(area) == s {
			return area, true
		}
	}
	return "", false
}

func (a SkillArea) DisplayName() string {
	switch a {
	case SkillGrammar:
		return "Grammar"
	case SkillStyle:
		return "Style"
	case SkillClarity:
		return "Clarity"
	case SkillVocabulary:
		return "Vocabulary"
	case SkillStructure:
		return "Structure"
	case SkillTone:
		return "Tone"
	case SkillCreativity:
		return "Creativity"
	}
	return string(a)
}

// InitialSkillLevel is the competence assumed for a skill the first time it
// is accessed. Writers start from basic competence, not zero.
const InitialSkillLevel = 0.3

// SkillProgress tracks fractional competence in one area.
// CurrentLevel never exceeds TargetLevel and never decreases.
type SkillProgress struct {
	SkillArea         SkillArea `json:"skillArea"`
	CurrentLevel      float64   `json:"currentLevel"`
	TargetLevel       float64   `json:"targetLevel"`
	SessionsCompleted int       `json:"sessionsCompleted"`
	LastPracticed     time.Time `json:"lastPracticed"`
}

// NewSkillProgress creates the lazily initialized record for an area.
func NewSkillProgress(area SkillArea) *SkillProgress {
	return &SkillProgress{
		SkillArea:    area,
		CurrentLevel: InitialSkillLevel,
		TargetLevel:  1.0,
	}
}
