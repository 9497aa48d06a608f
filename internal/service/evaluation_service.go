package service

import (
	"fmt"
	"strings"

	"github.com/infektyd/FoundationWriting/internal/model"
)

// EvaluationService scores exercise submissions against per-type rubrics.
// The contract is the rubric shape: fixed metric names per exercise type,
// mean aggregation, fixed time-efficiency bands. The heuristics behind
// individual metrics are simple lexical checks standing in for the
// external analysis backend and may be sharpened without changing the
// contract.
type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// rubric fixes the metric set for one exercise type. metrics[0] is the
// primary metric used to decide whether the type's practice tip fires.
type rubric struct {
	metrics []string
	tip     string
}

var rubrics = map[model.ExerciseType]rubric{
	model.ExerciseGrammar: {
		metrics: []string{"grammar_accuracy", "sentence_structure"},
		tip:     "Read each sentence aloud; your ear catches agreement errors your eye skips over.",
	},
	model.ExerciseStyle: {
		metrics: []string{"tone_consistency", "word_variety", "flow"},
		tip:     "Vary how your sentences open; three sentences starting the same way flatten your voice.",
	},
	model.ExerciseClarity: {
		metrics: []string{"readability", "sentence_economy", "directness"},
		tip:     "If a sentence needs a second read, split it in two.",
	},
	model.ExerciseVocabulary: {
		metrics: []string{"diversity", "precision", "sophistication"},
		tip:     "Swap each generic word ('thing', 'very good') for the precise one you actually mean.",
	},
	model.ExerciseStructure: {
		metrics: []string{"organization", "transitions", "paragraphing"},
		tip:     "State the point first, then support it; readers should never wonder where a paragraph is going.",
	},
	model.ExerciseTone: {
		metrics: []string{"consistency", "register", "engagement"},
		tip:     "Pick one register before you start and hold it; shifting mid-piece reads as accidental.",
	},
	model.ExerciseCreative: {
		metrics: []string{"imagery", "originality", "voice"},
		tip:     "Replace one named emotion with a sensory detail that implies it.",
	},
	model.ExerciseWarmUp: {
		metrics: []string{"completion", "effort"},
		tip:     "Warm-ups reward momentum; keep the pen moving and save editing for later.",
	},
	model.ExerciseTimed: {
		metrics: []string{"speed", "quality"},
		tip:     "Draft the whole piece before polishing any sentence; the clock punishes perfectionism.",
	},
	model.ExerciseChallenge: {
		metrics: []string{"execution", "complexity"},
		tip:     "Meet every requirement plainly before reaching for flourish.",
	},
}

var transitionWords = []string{"however", "therefore", "meanwhile", "furthermore", "moreover", "consequently", "instead"}

var genericWords = []string{"thing", "stuff", "very", "really", "good", "bad", "nice", "a lot"}

var sensoryWords = []string{"smell", "taste", "rough", "smooth", "bright", "echo", "warm", "cold", "bitter", "glow"}

var structureMarkers = []string{"first", "second", "then", "next", "finally", "in conclusion"}

// Evaluate scores the submission for its exercise type. Total function:
// every input yields a performance result.
func (s *EvaluationService) Evaluate(
	exercise model.WritingExercise,
	response string,
	analysis *model.Analysis,
	timeSpent float64,
) *model.ExercisePerformance {
	r, ok := rubrics[exercise.Type]
	if !ok {
		r = rubrics[model.ExerciseWarmUp]
	}

	scores := make(map[string]float64, len(r.metrics))
	total := 0.0
	for _, name := range r.metrics {
		v := computeMetric(name, response, analysis, timeSpent, exercise.TimeEstimate)
		scores[name] = v
		total += v
	}
	overall := total / float64(len(r.metrics))

	perf := &model.ExercisePerformance{
		OverallScore:   overall,
		Scores:         scores,
		TimeEfficiency: timeEfficiency(timeSpent, exercise.TimeEstimate),
	}

	for _, name := range r.metrics {
		if scores[name] < 0.7 {
			perf.ImprovementAreas = append(perf.ImprovementAreas, name)
		}
	}
	for i, suggestion := range analysis.Suggestions {
		if i >= 2 {
			break
		}
		if !containsString(perf.ImprovementAreas, suggestion.Area) {
			perf.ImprovementAreas = append(perf.ImprovementAreas, suggestion.Area)
		}
	}

	return perf
}

// Feedback derives the human-readable companion from the rubric scores.
func (s *EvaluationService) Feedback(exercise model.WritingExercise, perf *model.ExercisePerformance) *model.PerformanceFeedback {
	r, ok := rubrics[exercise.Type]
	if !ok {
		r = rubrics[model.ExerciseWarmUp]
	}

	fb := &model.PerformanceFeedback{}

	for _, name := range r.metrics {
		score := perf.Scores[name]
		if score >= 0.8 {
			fb.Strengths = append(fb.Strengths, fmt.Sprintf("Strong %s — keep doing what you're doing here", metricLabel(name)))
		}
		if score < 0.6 {
			fb.Improvements = append(fb.Improvements, fmt.Sprintf("Your %s needs attention in this piece", metricLabel(name)))
		}
	}

	if perf.Scores[r.metrics[0]] < 0.7 {
		fb.Tips = append(fb.Tips, r.tip)
	}

	switch {
	case perf.OverallScore >= 0.9:
		fb.OverallMessage = "Outstanding work. This submission shows real command of the craft."
	case perf.OverallScore >= 0.8:
		fb.OverallMessage = "Great job. A few small refinements and this is excellent."
	case perf.OverallScore >= 0.7:
		fb.OverallMessage = "Solid effort. You're clearly building the skill — keep practicing."
	case perf.OverallScore >= 0.6:
		fb.OverallMessage = "Good start. Work through the improvement areas and try a similar exercise soon."
	default:
		fb.OverallMessage = "This one was tough. Review the tips below and give it another pass."
	}

	return fb
}

// timeEfficiency bands the actual/expected time ratio.
func timeEfficiency(actual, expected float64) float64 {
	if expected <= 0 {
		return 1.0
	}
	ratio := actual / expected
	switch {
	case ratio <= 1.0:
		return 1.0
	case ratio <= 1.5:
		return 0.8
	default:
		return 0.6
	}
}

func computeMetric(name, response string, analysis *model.Analysis, timeSpent, timeEstimate float64) float64 {
	m := analysis.Metrics
	switch name {
	case "grammar_accuracy":
		return penaltyScore(countSuggestionsForArea(analysis, model.SkillGrammar), 0.15, 0.2)
	case "sentence_structure", "readability", "quality":
		return fleschKincaidBand(m.FleschKincaidGrade)
	case "tone_consistency":
		return penaltyScore(countSuggestionsForArea(analysis, model.SkillStyle), 0.2, 0.3)
	case "consistency":
		return penaltyScore(countSuggestionsForArea(analysis, model.SkillTone), 0.2, 0.3)
	case "word_variety", "diversity", "voice":
		return clamp01(m.VocabularyDiversity)
	case "flow", "transitions":
		return markerScore(response, transitionWords, 0.4, 0.15)
	case "sentence_economy":
		return bandScore(m.AverageSentenceLength, 12, 20, 8, 25)
	case "directness", "precision", "originality":
		return penaltyScore(countMarkers(response, genericWords), 0.15, 0.3)
	case "sophistication", "register":
		return bandScore(m.AverageWordLength, 4.5, 6.5, 3.5, 8)
	case "organization":
		return markerScore(response, structureMarkers, 0.4, 0.2)
	case "paragraphing":
		switch strings.Count(response, "\n\n") {
		case 0:
			return 0.4
		case 1:
			return 0.6
		default:
			return 1.0
		}
	case "engagement", "imagery":
		return markerScore(response, sensoryWords, 0.3, 0.175)
	case "completion":
		if wordCount(response) >= 50 {
			return 1.0
		}
		return 0.6
	case "effort":
		switch n := wordCount(response); {
		case n >= 100:
			return 1.0
		case n >= 50:
			return 0.8
		default:
			return 0.5
		}
	case "speed":
		return timeEfficiency(timeSpent, timeEstimate)
	case "execution":
		return penaltyScore(len(analysis.Suggestions), 0.1, 0.3)
	case "complexity":
		return (bandScore(m.AverageSentenceLength, 12, 20, 8, 25) + bandScore(m.AverageWordLength, 4.5, 6.5, 3.5, 8)) / 2
	}
	return 0.5
}

// fleschKincaidBand treats grade 8-12 as optimal readability, degrading
// outside the band.
func fleschKincaidBand(grade float64) float64 {
	switch {
	case grade >= 8 && grade <= 12:
		return 1.0
	case grade >= 6 && grade <= 14:
		return 0.7
	default:
		return 0.4
	}
}

func bandScore(v, idealLow, idealHigh, okLow, okHigh float64) float64 {
	switch {
	case v >= idealLow && v <= idealHigh:
		return 1.0
	case v >= okLow && v <= okHigh:
		return 0.7
	default:
		return 0.4
	}
}

// penaltyScore subtracts a fixed penalty per occurrence, with a floor.
func penaltyScore(count int, penalty, floor float64) float64 {
	score := 1.0 - penalty*float64(count)
	if score < floor {
		return floor
	}
	return score
}

// markerScore rewards occurrences of marker words above a base score.
func markerScore(response string, markers []string, base, step float64) float64 {
	score := base + step*float64(countMarkers(response, markers))
	return clamp01(score)
}

func countMarkers(response string, markers []string) int {
	lower := strings.ToLower(response)
	count := 0
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			count++
		}
	}
	return count
}

func countSuggestionsForArea(analysis *model.Analysis, area model.SkillArea) int {
	count := 0
	for _, s := range analysis.Suggestions {
		if s.Area == string(area) {
			count++
		}
	}
	return count
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func metricLabel(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
