package service_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// memStore is an in-memory ProfileStore with injectable failures.
type memStore struct {
	profiles map[uint]*model.GamifiedUserProfile
	loadErr  error
	saveErr  error
	saves    int
}

func newMemStore() *memStore {
	return &memStore{profiles: make(map[uint]*model.GamifiedUserProfile)}
}

func (s *memStore) Load(ctx context.Context, userID uint) (*model.GamifiedUserProfile, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, service.ErrProfileNotFound
	}
	return profile, nil
}

func (s *memStore) Save(ctx context.Context, userID uint, profile *model.GamifiedUserProfile) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.profiles[userID] = profile
	return nil
}

// stubAnalyzer returns a canned analysis or error.
type stubAnalyzer struct {
	analysis *model.Analysis
	err      error
	calls    int
}

func (a *stubAnalyzer) Analyze(ctx context.Context, text string, opts model.AnalysisOptions) (*model.Analysis, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}
	return a.analysis, nil
}

// nopSink swallows notifications.
type nopSink struct{}

func (nopSink) AchievementUnlocked(userID uint, achievement model.Achievement) {}

var errBoom = errors.New("boom")

func sampleAnalysis(suggestions ...model.ImprovementSuggestion) *model.Analysis {
	return &model.Analysis{
		Metrics: model.WritingMetrics{
			FleschKincaidGrade:    9.5,
			AverageSentenceLength: 15,
			AverageWordLength:     5,
			VocabularyDiversity:   0.6,
			SentenceCount:         10,
		},
		Assessment:  "solid draft",
		Suggestions: suggestions,
	}
}

func suggestion(area string, priority, effort float64) model.ImprovementSuggestion {
	return model.ImprovementSuggestion{
		Title:          "Improve " + area,
		Area:           area,
		Description:    "work on " + area,
		Priority:       priority,
		LearningEffort: effort,
	}
}

func newEngine(store service.ProfileStore) *service.ProgressionEngine {
	achievements := service.NewAchievementService(nopSink{})
	challenges := service.NewChallengeService(achievements)
	return service.NewProgressionEngine(store, achievements, challenges)
}

func session(area model.SkillArea, score, timeSpent float64) model.LearningSession {
	return model.LearningSession{
		ID:               model.GenerateUUID(),
		SkillArea:        area,
		PerformanceScore: score,
		TimeSpent:        timeSpent,
		ExerciseType:     model.ExerciseTypeForSkill(area),
	}
}
