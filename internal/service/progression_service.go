package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/pkg/logger"
	"github.com/infektyd/FoundationWriting/pkg/monitoring"

	"go.uber.org/zap"
)

// skillProgressStep is how much one session moves fractional competence,
// scaled by performance.
const skillProgressStep = 0.05

// featureUnlocks maps profile levels to the feature gate they open.
var featureUnlocks = map[int]string{
	5:  "advanced_exercises",
	10: "detailed_analytics",
	15: "custom_challenges",
	20: "expert_roadmaps",
}

// SessionOutcome summarizes everything one recorded session changed on the
// profile.
type SessionOutcome struct {
	ExperienceEarned   int                     `json:"experienceEarned"`
	LeveledUp          bool                    `json:"leveledUp"`
	NewLevel           int                     `json:"newLevel,omitempty"`
	UnlockedFeature    string                  `json:"unlockedFeature,omitempty"`
	Achievements       []model.Achievement     `json:"achievements,omitempty"`
	CompletedChallenge *model.WritingChallenge `json:"completedChallenge,omitempty"`
}

// ProgressionEngine owns all mutation of gamified profiles. A single
// mutex serializes writers, so every update is effectively one atomic
// step against the in-memory profile; persistence happens after the
// profile already reflects the session.
type ProgressionEngine struct {
	mu           sync.Mutex
	store        ProfileStore
	achievements *AchievementService
	challenges   *ChallengeService
	profiles     map[uint]*model.GamifiedUserProfile
}

func NewProgressionEngine(store ProfileStore, achievements *AchievementService, challenges *ChallengeService) *ProgressionEngine {
	return &ProgressionEngine{
		store:        store,
		achievements: achievements,
		challenges:   challenges,
		profiles:     make(map[uint]*model.GamifiedUserProfile),
	}
}

// Profile returns the user's profile, loading it from the store on first
// access. Load failures of any kind degrade to a fresh default profile;
// progression must keep working even when persistence does not.
func (e *ProgressionEngine) Profile(ctx context.Context, userID uint) *model.GamifiedUserProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profileLocked(ctx, userID)
}

func (e *ProgressionEngine) profileLocked(ctx context.Context, userID uint) *model.GamifiedUserProfile {
	if profile, ok := e.profiles[userID]; ok {
		return profile
	}

	profile, err := e.store.Load(ctx, userID)
	if err != nil {
		if err != ErrProfileNotFound {
			logger.Log.Warn("profile load failed, starting fresh",
				zap.Uint("user_id", userID), zap.Error(err))
		}
		profile = model.NewGamifiedUserProfile(time.Now())
	}

	e.challenges.EnsureDefaults(profile, time.Now())
	e.profiles[userID] = profile
	return profile
}

// RecordSession applies one completed session to the profile: counters,
// experience, skill progression, history, level-ups, achievements and
// challenge progress, in that order, then persists.
func (e *ProgressionEngine) RecordSession(
	ctx context.Context,
	userID uint,
	session model.LearningSession,
	analysis *model.Analysis,
) *SessionOutcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	profile := e.profileLocked(ctx, userID)
	now := time.Now()
	words := analysis.EstimatedWordCount()

	profile.TotalSessions++
	profile.TotalWordsAnalyzed += words

	xp := sessionExperience(session, len(analysis.Suggestions))
	profile.ExperiencePoints += xp

	e.applySkillProgress(profile, session, now)
	profile.AppendSession(session)

	outcome := &SessionOutcome{ExperienceEarned: xp}

	if newLevel := model.ProfileLevelForXP(profile.ExperiencePoints); newLevel > profile.Level {
		profile.Level = newLevel
		outcome.LeveledUp = true
		outcome.NewLevel = newLevel
		outcome.Achievements = append(outcome.Achievements,
			e.achievements.AwardLevelUp(userID, profile, newLevel))

		if feature, ok := featureUnlocks[newLevel]; ok {
			profile.UnlockedFeatures[feature] = true
			outcome.UnlockedFeature = feature
		}
	}

	outcome.Achievements = append(outcome.Achievements,
		e.achievements.Evaluate(userID, profile, session, analysis)...)

	outcome.CompletedChallenge = e.challenges.Advance(userID, profile, session, words, now)

	e.persistLocked(ctx, userID, profile)
	monitoring.SessionsRecorded.Inc()

	return outcome
}

// StartChallenge activates an available challenge and persists the move.
func (e *ProgressionEngine) StartChallenge(ctx context.Context, userID uint, challengeID string) (*model.WritingChallenge, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	profile := e.profileLocked(ctx, userID)
	challenge, err := e.challenges.Start(profile, challengeID, time.Now())
	if err != nil {
		return nil, err
	}

	e.persistLocked(ctx, userID, profile)
	return challenge, nil
}

// persistLocked writes the profile through the store. Save failures are
// logged, not surfaced: the session already happened and the in-memory
// profile stays authoritative for this process.
func (e *ProgressionEngine) persistLocked(ctx context.Context, userID uint, profile *model.GamifiedUserProfile) {
	if err := e.store.Save(ctx, userID, profile); err != nil {
		logger.Log.Error("profile save failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}
}

// sessionExperience computes the experience one session is worth:
// a base grant, a performance share, capped time credit, an engagement
// bonus for sessions with several suggestions and an excellence bonus.
func sessionExperience(session model.LearningSession, suggestionCount int) int {
	xp := 10
	xp += int(math.Floor(session.PerformanceScore * 20))

	timeBonus := int(math.Floor(session.TimeSpent / 60))
	if timeBonus > 30 {
		timeBonus = 30
	}
	xp += timeBonus

	if suggestionCount >= 3 {
		xp += 15
	}
	if session.PerformanceScore >= 0.8 {
		xp += 25
	}
	return xp
}

// applySkillProgress updates both tracks for the practiced area: the
// gamified skill record (integer level from experience) and the fractional
// competence used by gap analysis.
func (e *ProgressionEngine) applySkillProgress(profile *model.GamifiedUserProfile, session model.LearningSession, now time.Time) {
	data := profile.SkillData(session.SkillArea)
	data.ExperiencePoints += int(math.Floor(session.PerformanceScore*30)) + int(math.Floor(session.TimeSpent/120))
	data.SessionsCompleted++
	data.Level = model.SkillLevelForXP(data.ExperiencePoints)

	sp := profile.Progress(session.SkillArea)
	next := sp.CurrentLevel + session.PerformanceScore*skillProgressStep
	limit := sp.TargetLevel
	if limit <= 0 || limit > 1.0 {
		limit = 1.0
	}
	if next > limit {
		next = limit
	}
	if next > sp.CurrentLevel {
		sp.CurrentLevel = next
	}
	sp.SessionsCompleted++
	sp.LastPracticed = now
}
