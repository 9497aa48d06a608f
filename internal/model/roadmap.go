package model

import "time"

// LearningModule is one step of a roadmap, produced from a single gap.
type LearningModule struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	TargetSkill   SkillArea         `json:"targetSkill"`
	Objectives    []string          `json:"objectives"`
	EstimatedTime float64           `json:"estimatedTime"` // seconds
	Difficulty    float64           `json:"difficulty"`    // 0..1
	Exercises     []WritingExercise `json:"exercises"`
}

// RoadmapInsights is the typed summary attached to a roadmap.
type RoadmapInsights struct {
	OverallLevel               float64  `json:"overallLevel"`
	ImprovementVelocity        float64  `json:"improvementVelocity"`
	FocusAreas                 []string `json:"focusAreas"`
	EstimatedTimeToImprovement float64  `json:"estimatedTimeToImprovement"` // seconds
	Strengths                  []string `json:"strengths"`
	WeeklyGoal                 string   `json:"weeklyGoal"`
}

// Roadmap is an ordered learning sequence addressing prioritized gaps
// within a time window. Ephemeral: each generation replaces the previous
// roadmap held for the writer.
type Roadmap struct {
	ID            string           `json:"id"`
	CreatedAt     time.Time        `json:"createdAt"`
	Modules       []LearningModule `json:"modules"`
	TotalDuration float64          `json:"totalDuration"` // seconds
	Insights      RoadmapInsights  `json:"insights"`
}
