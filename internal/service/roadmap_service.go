package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
)

const (
	// maxRoadmapModules caps a roadmap at the highest-priority gaps.
	maxRoadmapModules = 5

	// moduleBaseSeconds is the time floor for a module; the gap size
	// scales it up to double.
	moduleBaseSeconds = 3600.0

	// difficultyTieTolerance treats near-equal module difficulties as
	// tied so the shorter module sorts first.
	difficultyTieTolerance = 0.1

	defaultTimeframeWeeks = 4

	genericWeeklyGoal = "Continue practicing your writing skills"
)

// RoadmapService turns prioritized gaps into an ordered learning roadmap.
// Pure computation over its inputs.
type RoadmapService struct{}

func NewRoadmapService() *RoadmapService {
	return &RoadmapService{}
}

// Build produces a roadmap from pre-sorted gaps. The module order is
// easy-and-quick-first: ascending difficulty, with estimated time breaking
// near-ties, regardless of gap priority order.
func (s *RoadmapService) Build(
	gaps []model.SkillGap,
	analysis *model.Analysis,
	progress map[model.SkillArea]*model.SkillProgress,
	sessions []model.LearningSession,
	timeframeWeeks int,
) *model.Roadmap {
	if timeframeWeeks <= 0 {
		timeframeWeeks = defaultTimeframeWeeks
	}

	top := gaps
	if len(top) > maxRoadmapModules {
		top = top[:maxRoadmapModules]
	}

	modules := make([]model.LearningModule, 0, len(top))
	for _, gap := range top {
		modules = append(modules, s.buildModule(gap))
	}

	sort.SliceStable(modules, func(i, j int) bool {
		if math.Abs(modules[i].Difficulty-modules[j].Difficulty) <= difficultyTieTolerance {
			return modules[i].EstimatedTime < modules[j].EstimatedTime
		}
		return modules[i].Difficulty < modules[j].Difficulty
	})

	return &model.Roadmap{
		ID:            model.GenerateUUID(),
		CreatedAt:     time.Now(),
		Modules:       modules,
		TotalDuration: float64(timeframeWeeks) * 7 * 24 * 3600,
		Insights:      s.buildInsights(gaps, progress, sessions),
	}
}

func (s *RoadmapService) buildModule(gap model.SkillGap) model.LearningModule {
	gapSize := gap.GapSize()
	catalog := model.CatalogFor(gap.SkillArea)

	exercise := model.WritingExercise{
		ID:              model.GenerateUUID(),
		Title:           fmt.Sprintf("Targeted %s Practice", gap.SkillArea.DisplayName()),
		Description:     catalog.ExerciseDescription,
		Type:            model.ExerciseTypeForSkill(gap.SkillArea),
		TargetSkill:     gap.SkillArea,
		Difficulty:      difficultyForGap(gapSize),
		Instructions:    catalog.InstructionTemplate,
		Objectives:      catalog.Objectives,
		ExpectedOutcome: catalog.ExpectedOutcome,
		TimeEstimate:    moduleBaseSeconds * (1 + gapSize),
		CreatedAt:       time.Now(),
	}
	// The originating suggestion's resources ride along with the drill.
	exercise.SampleAnswer = gap.Suggestion.AfterExample
	if len(gap.Suggestion.Resources) > 0 {
		exercise.Objectives = append(append([]string{}, catalog.Objectives...), gap.Suggestion.Resources...)
	}

	return model.LearningModule{
		ID:            model.GenerateUUID(),
		Title:         fmt.Sprintf("Improve Your %s", gap.SkillArea.DisplayName()),
		TargetSkill:   gap.SkillArea,
		Objectives:    catalog.Objectives,
		EstimatedTime: moduleBaseSeconds * (1 + gapSize),
		Difficulty:    gapSize,
		Exercises:     []model.WritingExercise{exercise},
	}
}

func (s *RoadmapService) buildInsights(
	gaps []model.SkillGap,
	progress map[model.SkillArea]*model.SkillProgress,
	sessions []model.LearningSession,
) model.RoadmapInsights {
	insights := model.RoadmapInsights{
		OverallLevel:        averageSkillLevel(progress),
		ImprovementVelocity: improvementVelocity(sessions),
		WeeklyGoal:          genericWeeklyGoal,
	}

	for i, gap := range gaps {
		if i >= 3 {
			break
		}
		insights.FocusAreas = append(insights.FocusAreas, gap.SkillArea.DisplayName())
		insights.EstimatedTimeToImprovement += moduleBaseSeconds * (1 + gap.GapSize())
	}

	for _, area := range model.AllSkillAreas {
		if sp, ok := progress[area]; ok && sp.CurrentLevel > 0.7 {
			insights.Strengths = append(insights.Strengths, area.DisplayName())
		}
	}

	if len(gaps) > 0 {
		insights.WeeklyGoal = fmt.Sprintf("Focus on %s this week: complete the targeted practice and apply it to one piece of your own writing", gaps[0].SkillArea.DisplayName())
	}

	return insights
}

func averageSkillLevel(progress map[model.SkillArea]*model.SkillProgress) float64 {
	if len(progress) == 0 {
		return 0
	}
	total := 0.0
	for _, sp := range progress {
		total += sp.CurrentLevel
	}
	return total / float64(len(progress))
}

// improvementVelocity is the mean performance of the last 10 sessions,
// zero when there is no history yet.
func improvementVelocity(sessions []model.LearningSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	recent := sessions
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	total := 0.0
	for _, s := range recent {
		total += s.PerformanceScore
	}
	return total / float64(len(recent))
}

// difficultyForGap banks the fractional gap into the ordinal scale used
// by exercises.
func difficultyForGap(gapSize float64) model.ExerciseDifficulty {
	switch {
	case gapSize < 0.25:
		return model.DifficultyEasy
	case gapSize < 0.5:
		return model.DifficultyMedium
	case gapSize < 0.75:
		return model.DifficultyHard
	default:
		return model.DifficultyExpert
	}
}
