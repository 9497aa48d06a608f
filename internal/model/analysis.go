package model

// WritingMetrics is the numeric portion of an analysis result.
type WritingMetrics struct {
	FleschKincaidGrade    float64 `json:"fleschKincaidGrade"`
	FleschKincaidLabel    string  `json:"fleschKincaidLabel"`
	AverageSentenceLength float64 `json:"averageSentenceLength"`
	AverageWordLength     float64 `json:"averageWordLength"`
	VocabularyDiversity   float64 `json:"vocabularyDiversity"`
	SentenceCount         int     `json:"sentenceCount"`
}

// ImprovementSuggestion is one actionable finding from the analysis
// collaborator. Immutable once produced.
type ImprovementSuggestion struct {
	Title          string   `json:"title"`
	Area           string   `json:"area"`
	Description    string   `json:"description"`
	BeforeExample  string   `json:"beforeExample,omitempty"`
	AfterExample   string   `json:"afterExample,omitempty"`
	Priority       float64  `json:"priority"`
	LearningEffort float64  `json:"learningEffort"`
	Resources      []string `json:"resources,omitempty"`
}

// Analysis is the structured output of one external analysis call.
type Analysis struct {
	Metrics     WritingMetrics          `json:"metrics"`
	Assessment  string                  `json:"assessment"`
	Suggestions []ImprovementSuggestion `json:"suggestions"`
	Methodology string                  `json:"methodology"`
}

// EstimatedWordCount derives a rough word count from the sentence metrics.
func (a *Analysis) EstimatedWordCount() int {
	return int(a.Metrics.AverageSentenceLength * float64(a.Metrics.SentenceCount))
}

// AnalysisOptions tunes one analysis call.
type AnalysisOptions struct {
	Depth          string `json:"depth,omitempty"`
	MaxSuggestions int    `json:"maxSuggestions,omitempty"`
}
