package model

// ExercisePerformance is the scored result of one exercise submission.
type ExercisePerformance struct {
	OverallScore     float64            `json:"overallScore"`
	Scores           map[string]float64 `json:"scores"`
	TimeEfficiency   float64            `json:"timeEfficiency"`
	ImprovementAreas []string           `json:"improvementAreas"`
}

// PerformanceFeedback is the human-readable companion to a performance
// result, generated as a separate step from the same rubric scores.
type PerformanceFeedback struct {
	Strengths      []string `json:"strengths"`
	Improvements   []string `json:"improvements"`
	Tips           []string `json:"tips"`
	OverallMessage string   `json:"overallMessage"`
}
