package model

import "time"

// SessionHistoryLimit caps the per-profile session history; the oldest
// entry is evicted first.
const SessionHistoryLimit = 50

// LearningSession is the canonical unit of completed practice work.
type LearningSession struct {
	ID               string       `json:"id"`
	SkillArea        SkillArea    `json:"skillArea"`
	PerformanceScore float64      `json:"performanceScore"`
	TimeSpent        float64      `json:"timeSpent"` // seconds
	CompletedAt      time.Time    `json:"completedAt"`
	ExerciseType     ExerciseType `json:"exerciseType"`
}
