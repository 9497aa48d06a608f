package model

import "time"

type ChallengeType string

const (
	ChallengeTimed       ChallengeType = "timed"
	ChallengeSkillFocus  ChallengeType = "skillFocus"
	ChallengeConsistency ChallengeType = "consistency"
	ChallengeWordCount   ChallengeType = "wordCount"
)

// ChallengeRequirements holds the type-dependent completion thresholds.
// Zero values fall back to per-type defaults at evaluation time.
type ChallengeRequirements struct {
	MinimumWords    int         `json:"minimumWords,omitempty"`
	ExerciseCount   int         `json:"exerciseCount,omitempty"`
	ConsecutiveDays int         `json:"consecutiveDays,omitempty"`
	TargetSkills    []SkillArea `json:"targetSkills,omitempty"`
}

// TargetsSkill reports whether the challenge applies to the given area.
// An empty target list matches every area.
func (r ChallengeRequirements) TargetsSkill(area SkillArea) bool {
	if len(r.TargetSkills) == 0 {
		return true
	}
	for _, s := range r.TargetSkills {
		if s == area {
			return true
		}
	}
	return false
}

type ChallengeRewards struct {
	ExperiencePoints  int    `json:"experiencePoints"`
	Badge             Badge  `json:"badge,omitempty"`
	UnlockableContent string `json:"unlockableContent,omitempty"`
}

type ChallengeProgress struct {
	SessionsCompleted  int     `json:"sessionsCompleted"`
	ExercisesCompleted int     `json:"exercisesCompleted"`
	WordsWritten       int     `json:"wordsWritten"`
	ConsecutiveDays    int     `json:"consecutiveDays"`
	TimeSpent          float64 `json:"timeSpent"` // seconds
}

// WritingChallenge is a multi-session goal with explicit completion
// criteria and a reward. Lifecycle: available -> active -> completed.
type WritingChallenge struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Type         ChallengeType         `json:"type"`
	Difficulty   ExerciseDifficulty    `json:"difficulty"`
	Requirements ChallengeRequirements `json:"requirements"`
	Rewards      ChallengeRewards      `json:"rewards"`
	CreatedAt    time.Time             `json:"createdAt"`
	StartedAt    *time.Time            `json:"startedAt,omitempty"`
	CompletedAt  *time.Time            `json:"completedAt,omitempty"`
	IsActive     bool                  `json:"isActive"`
	Progress     ChallengeProgress     `json:"progress"`
}
