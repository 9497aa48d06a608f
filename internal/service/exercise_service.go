package service

import (
	"context"
	"sync"
	"time"

	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/util"
	"github.com/infektyd/FoundationWriting/pkg/logger"

	"go.uber.org/zap"
)

// dailyExerciseSeconds is the time estimate for a standard daily drill.
const dailyExerciseSeconds = 900.0

// activeExercise pairs a generated exercise with its start timestamp.
// StartedAt is nil until the writer begins working on it.
type activeExercise struct {
	exercise  model.WritingExercise
	startedAt *time.Time
}

// SubmissionResult bundles everything one submission produced.
type SubmissionResult struct {
	Analysis    *model.Analysis             `json:"analysis"`
	Performance *model.ExercisePerformance  `json:"performance"`
	Feedback    *model.PerformanceFeedback  `json:"feedback"`
	Session     model.LearningSession       `json:"session"`
	Outcome     *SessionOutcome             `json:"outcome"`
}

// ExerciseService generates daily exercises and runs the submission
// pipeline: analyze, evaluate, record. Submissions race against the
// writer's own resubmits, so each user has at most one analysis in
// flight; a newer submission cancels the older one.
type ExerciseService struct {
	mu          sync.Mutex
	analyzer    AnalysisProvider
	evaluator   *EvaluationService
	progression *ProgressionEngine
	cfg         *config.AnalysisConfig

	exercises map[uint]map[string]*activeExercise
	inflight  map[uint]*inflightAnalysis
}

// inflightAnalysis tokens the one analysis a user may have running.
type inflightAnalysis struct {
	cancel context.CancelFunc
}

func NewExerciseService(
	analyzer AnalysisProvider,
	evaluator *EvaluationService,
	progression *ProgressionEngine,
	cfg *config.AnalysisConfig,
) *ExerciseService {
	return &ExerciseService{
		analyzer:    analyzer,
		evaluator:   evaluator,
		progression: progression,
		cfg:         cfg,
		exercises:   make(map[uint]map[string]*activeExercise),
		inflight:    make(map[uint]*inflightAnalysis),
	}
}

// DailyExercises generates one exercise per skill area, difficulty keyed
// to the writer's current fractional competence. Regenerating replaces
// any unfinished set.
func (s *ExerciseService) DailyExercises(ctx context.Context, userID uint) []model.WritingExercise {
	profile := s.progression.Profile(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	set := make(map[string]*activeExercise, len(model.AllSkillAreas))
	out := make([]model.WritingExercise, 0, len(model.AllSkillAreas))

	for _, area := range model.AllSkillAreas {
		catalog := model.CatalogFor(area)
		exercise := model.WritingExercise{
			ID:              model.GenerateUUID(),
			Title:           "Daily " + area.DisplayName() + " Practice",
			Description:     catalog.ExerciseDescription,
			Type:            model.ExerciseTypeForSkill(area),
			TargetSkill:     area,
			Difficulty:      difficultyForSkillLevel(profile.Progress(area).CurrentLevel),
			Instructions:    catalog.InstructionTemplate,
			Objectives:      catalog.Objectives,
			ExpectedOutcome: catalog.ExpectedOutcome,
			TimeEstimate:    dailyExerciseSeconds,
			CreatedAt:       now,
		}
		set[exercise.ID] = &activeExercise{exercise: exercise}
		out = append(out, exercise)
	}

	s.exercises[userID] = set
	return out
}

// Start marks an exercise as begun; time spent is measured from here.
func (s *ExerciseService) Start(userID uint, exerciseID string) (*model.WritingExercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := s.findLocked(userID, exerciseID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	active.startedAt = &now
	return &active.exercise, nil
}

// Submit runs the full pipeline for a started exercise. A failed analysis
// leaves all state untouched: the exercise stays started and nothing is
// recorded, so the writer can resubmit.
func (s *ExerciseService) Submit(ctx context.Context, userID uint, exerciseID, response string) (*SubmissionResult, error) {
	s.mu.Lock()
	active, err := s.findLocked(userID, exerciseID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if active.startedAt == nil {
		s.mu.Unlock()
		return nil, util.ErrExerciseNotStarted
	}
	exercise := active.exercise
	timeSpent := time.Since(*active.startedAt).Seconds()

	// Newest submission wins: cancel any analysis this user already has
	// in flight before starting ours.
	if prev, ok := s.inflight[userID]; ok {
		prev.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	token := &inflightAnalysis{cancel: cancel}
	s.inflight[userID] = token
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.inflight[userID] == token {
			delete(s.inflight, userID)
		}
		s.mu.Unlock()
		cancel()
	}()

	analysis, err := s.analyzer.Analyze(runCtx, response, model.AnalysisOptions{Depth: s.cfg.Depth})
	if err != nil {
		logger.Log.Warn("exercise analysis failed",
			zap.Uint("user_id", userID), zap.String("exercise_id", exerciseID), zap.Error(err))
		return nil, err
	}

	performance := s.evaluator.Evaluate(exercise, response, analysis, timeSpent)
	feedback := s.evaluator.Feedback(exercise, performance)

	session := model.LearningSession{
		ID:               model.GenerateUUID(),
		SkillArea:        exercise.TargetSkill,
		PerformanceScore: performance.OverallScore,
		TimeSpent:        timeSpent,
		CompletedAt:      time.Now(),
		ExerciseType:     exercise.Type,
	}

	outcome := s.progression.RecordSession(ctx, userID, session, analysis)

	s.mu.Lock()
	delete(s.exercises[userID], exerciseID)
	s.mu.Unlock()

	return &SubmissionResult{
		Analysis:    analysis,
		Performance: performance,
		Feedback:    feedback,
		Session:     session,
		Outcome:     outcome,
	}, nil
}

func (s *ExerciseService) findLocked(userID uint, exerciseID string) (*activeExercise, error) {
	set, ok := s.exercises[userID]
	if !ok {
		return nil, util.ErrExerciseNotFound
	}
	active, ok := set[exerciseID]
	if !ok {
		return nil, util.ErrExerciseNotFound
	}
	return active, nil
}

// difficultyForSkillLevel keys drill difficulty to fractional competence.
func difficultyForSkillLevel(level float64) model.ExerciseDifficulty {
	switch {
	case level < 0.4:
		return model.DifficultyEasy
	case level < 0.6:
		return model.DifficultyMedium
	case level < 0.8:
		return model.DifficultyHard
	default:
		return model.DifficultyExpert
	}
}
