package model

import "time"

type ExerciseType string

const (
	ExerciseGrammar    ExerciseType = "grammar"
	ExerciseStyle      ExerciseType = "style"
	ExerciseClarity    ExerciseType = "clarity"
	ExerciseVocabulary ExerciseType = "vocabulary"
	ExerciseStructure  ExerciseType = "structure"
	ExerciseTone       ExerciseType = "tone"
	ExerciseCreative   ExerciseType = "creative"
	ExerciseWarmUp     ExerciseType = "warmUp"
	ExerciseTimed      ExerciseType = "timed"
	ExerciseChallenge  ExerciseType = "challenge"
)

// ExerciseTypeForSkill maps each skill area onto its dedicated exercise type.
func ExerciseTypeForSkill(area SkillArea) ExerciseType {
	switch area {
	case SkillGrammar:
		return ExerciseGrammar
	case SkillStyle:
		return ExerciseStyle
	case SkillClarity:
		return ExerciseClarity
	case SkillVocabulary:
		return ExerciseVocabulary
	case SkillStructure:
		return ExerciseStructure
	case SkillTone:
		return ExerciseTone
	case SkillCreativity:
		return ExerciseCreative
	}
	return ExerciseWarmUp
}

// ExerciseDifficulty is ordinal: Easy < Medium < Hard < Expert.
type ExerciseDifficulty string

const (
	DifficultyEasy   ExerciseDifficulty = "easy"
	DifficultyMedium ExerciseDifficulty = "medium"
	DifficultyHard   ExerciseDifficulty = "hard"
	DifficultyExpert ExerciseDifficulty = "expert"
)

// Rank returns the ordinal position used for comparisons.
func (d ExerciseDifficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	case DifficultyExpert:
		return 3
	}
	return 0
}

// WritingExercise is one unit of practice work offered to the writer.
// Generated fresh per day or per gap; held in memory only.
type WritingExercise struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Type            ExerciseType       `json:"type"`
	TargetSkill     SkillArea          `json:"targetSkill"`
	Difficulty      ExerciseDifficulty `json:"difficulty"`
	Instructions    string             `json:"instructions"`
	Objectives      []string           `json:"objectives"`
	ExpectedOutcome string             `json:"expectedOutcome"`
	TimeEstimate    float64            `json:"timeEstimate"` // seconds
	CreatedAt       time.Time          `json:"createdAt"`
	SampleAnswer    string             `json:"sampleAnswer,omitempty"`
}
