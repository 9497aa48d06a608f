package service_test

import (
	"context"
	"testing"

	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExerciseService(analyzer service.AnalysisProvider, store *memStore) (*service.ExerciseService, *service.ProgressionEngine) {
	engine := newEngine(store)
	svc := service.NewExerciseService(
		analyzer,
		service.NewEvaluationService(),
		engine,
		&config.AnalysisConfig{Depth: "standard"},
	)
	return svc, engine
}

func TestDailyExercises_OnePerSkillArea(t *testing.T) {
	svc, _ := newExerciseService(&stubAnalyzer{analysis: sampleAnalysis()}, newMemStore())

	exercises := svc.DailyExercises(context.Background(), 1)

	require.Len(t, exercises, len(model.AllSkillAreas))
	seen := make(map[model.SkillArea]bool)
	for _, e := range exercises {
		seen[e.TargetSkill] = true
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Instructions)
		assert.Len(t, e.Objectives, 3)
	}
	assert.Len(t, seen, len(model.AllSkillAreas))
}

func TestDailyExercises_DifficultyFromSkillLevel(t *testing.T) {
	store := newMemStore()
	svc, engine := newExerciseService(&stubAnalyzer{analysis: sampleAnalysis()}, store)

	profile := engine.Profile(context.Background(), 1)
	profile.Progress(model.SkillGrammar).CurrentLevel = 0.85
	profile.Progress(model.SkillStyle).CurrentLevel = 0.65

	exercises := svc.DailyExercises(context.Background(), 1)

	byArea := make(map[model.SkillArea]model.WritingExercise)
	for _, e := range exercises {
		byArea[e.TargetSkill] = e
	}
	assert.Equal(t, model.DifficultyExpert, byArea[model.SkillGrammar].Difficulty)
	assert.Equal(t, model.DifficultyHard, byArea[model.SkillStyle].Difficulty)
	// Untouched areas sit at the 0.3 starting level.
	assert.Equal(t, model.DifficultyEasy, byArea[model.SkillClarity].Difficulty)
}

func TestStart_UnknownExercise(t *testing.T) {
	svc, _ := newExerciseService(&stubAnalyzer{analysis: sampleAnalysis()}, newMemStore())
	svc.DailyExercises(context.Background(), 1)

	_, err := svc.Start(1, "nope")

	assert.ErrorIs(t, err, util.ErrExerciseNotFound)
}

func TestSubmit_RequiresStart(t *testing.T) {
	svc, _ := newExerciseService(&stubAnalyzer{analysis: sampleAnalysis()}, newMemStore())
	exercises := svc.DailyExercises(context.Background(), 1)

	_, err := svc.Submit(context.Background(), 1, exercises[0].ID, "My response.")

	assert.ErrorIs(t, err, util.ErrExerciseNotStarted)
}

func TestSubmit_FullPipeline(t *testing.T) {
	store := newMemStore()
	svc, engine := newExerciseService(&stubAnalyzer{analysis: sampleAnalysis()}, store)
	exercises := svc.DailyExercises(context.Background(), 1)
	target := exercises[0]

	_, err := svc.Start(1, target.ID)
	require.NoError(t, err)

	result, err := svc.Submit(context.Background(), 1, target.ID, "A thoughtful response to the exercise.")
	require.NoError(t, err)

	require.NotNil(t, result.Analysis)
	require.NotNil(t, result.Performance)
	require.NotNil(t, result.Feedback)
	require.NotNil(t, result.Outcome)
	assert.Equal(t, target.TargetSkill, result.Session.SkillArea)
	assert.Equal(t, target.Type, result.Session.ExerciseType)

	profile := engine.Profile(context.Background(), 1)
	assert.Equal(t, 1, profile.TotalSessions)
	require.Len(t, profile.Sessions, 1)
	assert.Equal(t, result.Session.ID, profile.Sessions[0].ID)

	// A submitted exercise is consumed.
	_, err = svc.Submit(context.Background(), 1, target.ID, "Again.")
	assert.ErrorIs(t, err, util.ErrExerciseNotFound)
}

func TestSubmit_AnalysisFailureLeavesStateUntouched(t *testing.T) {
	store := newMemStore()
	analyzer := &stubAnalyzer{err: util.ErrAnalysisUnavailable}
	svc, engine := newExerciseService(analyzer, store)
	exercises := svc.DailyExercises(context.Background(), 1)
	target := exercises[0]

	_, err := svc.Start(1, target.ID)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), 1, target.ID, "A response.")
	require.ErrorIs(t, err, util.ErrAnalysisUnavailable)

	// Nothing recorded, exercise still submittable.
	assert.Equal(t, 0, engine.Profile(context.Background(), 1).TotalSessions)

	analyzer.err = nil
	analyzer.analysis = sampleAnalysis()
	_, err = svc.Submit(context.Background(), 1, target.ID, "A response.")
	assert.NoError(t, err)
	assert.Equal(t, 1, engine.Profile(context.Background(), 1).TotalSessions)
}

func TestDailyExercises_RegenerationReplacesSet(t *testing.T) {
	svc, _ := newExerciseService(&stubAnalyzer{analysis: sampleAnalysis()}, newMemStore())

	first := svc.DailyExercises(context.Background(), 1)
	svc.DailyExercises(context.Background(), 1)

	_, err := svc.Start(1, first[0].ID)
	assert.ErrorIs(t, err, util.ErrExerciseNotFound)
}
