package service

import (
	"sort"

	"github.com/infektyd/FoundationWriting/internal/model"
)

// GapAnalyzer converts analysis suggestions into prioritized skill gaps
// against the writer's current progress. Pure computation, safe to call
// from any goroutine.
type GapAnalyzer struct{}

func NewGapAnalyzer() *GapAnalyzer {
	return &GapAnalyzer{}
}

// targetLevelFor weighs how urgent a suggestion is against how much work
// it demands. Capped at full competence.
func targetLevelFor(s model.ImprovementSuggestion) float64 {
	target := s.Priority*0.8 + s.LearningEffort*0.2
	if target > 1.0 {
		return 1.0
	}
	return target
}

// Analyze maps each suggestion onto its skill area, computes the target
// level, and drops gaps that are already covered by current progress.
// The result is sorted by descending priority; equal priorities keep
// suggestion input order. A skill never tracked counts as level 0.
func (GapAnalyzer) Analyze(analysis *model.Analysis, progress map[model.SkillArea]*model.SkillProgress) []model.SkillGap {
	gaps := make([]model.SkillGap, 0, len(analysis.Suggestions))

	for _, suggestion := range analysis.Suggestions {
		area, ok := model.SkillAreaFromString(suggestion.Area)
		if !ok {
			continue
		}

		current := 0.0
		if sp, tracked := progress[area]; tracked {
			current = sp.CurrentLevel
		}

		target := targetLevelFor(suggestion)
		if target <= current {
			continue
		}

		gaps = append(gaps, model.SkillGap{
			SkillArea:    area,
			CurrentLevel: current,
			TargetLevel:  target,
			Priority:     suggestion.Priority,
			Suggestion:   suggestion,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Priority > gaps[j].Priority
	})

	return gaps
}
