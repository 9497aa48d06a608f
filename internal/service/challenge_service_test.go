package service_test

import (
	"testing"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChallengeService() *service.ChallengeService {
	return service.NewChallengeService(service.NewAchievementService(nopSink{}))
}

func seededProfile(t *testing.T, svc *service.ChallengeService) *model.GamifiedUserProfile {
	t.Helper()
	profile := freshProfile()
	svc.EnsureDefaults(profile, time.Now())
	require.Len(t, profile.AvailableChallenges, 4)
	return profile
}

func startByType(t *testing.T, svc *service.ChallengeService, profile *model.GamifiedUserProfile, typ model.ChallengeType) *model.WritingChallenge {
	t.Helper()
	for _, c := range profile.AvailableChallenges {
		if c.Type == typ {
			started, err := svc.Start(profile, c.ID, time.Now())
			require.NoError(t, err)
			return started
		}
	}
	t.Fatalf("no available challenge of type %s", typ)
	return nil
}

func TestEnsureDefaults_SeedsOnce(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)

	svc.EnsureDefaults(profile, time.Now())

	assert.Len(t, profile.AvailableChallenges, 4)
}

func TestStart_MovesToActivePool(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)

	started := startByType(t, svc, profile, model.ChallengeWordCount)

	assert.True(t, started.IsActive)
	require.NotNil(t, started.StartedAt)
	assert.Len(t, profile.AvailableChallenges, 3)
	assert.Len(t, profile.ActiveChallenges, 1)
}

func TestStart_UnknownChallenge(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)

	_, err := svc.Start(profile, "nope", time.Now())

	assert.ErrorIs(t, err, util.ErrChallengeNotFound)
}

func TestStart_AlreadyActive(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)
	started := startByType(t, svc, profile, model.ChallengeWordCount)

	_, err := svc.Start(profile, started.ID, time.Now())

	assert.ErrorIs(t, err, util.ErrChallengeActive)
}

func TestAdvance_WordCountCompletesAtThreshold(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)
	startByType(t, svc, profile, model.ChallengeWordCount)

	completed := svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 60), 999, time.Now())
	assert.Nil(t, completed)

	completed = svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 60), 1, time.Now())
	require.NotNil(t, completed)
	assert.Equal(t, model.ChallengeWordCount, completed.Type)
	assert.Equal(t, 1000, completed.Progress.WordsWritten)
	assert.Empty(t, profile.ActiveChallenges)
	assert.Len(t, profile.CompletedChallenges, 1)
}

func TestAdvance_CompletionPaysRewards(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)
	startByType(t, svc, profile, model.ChallengeWordCount)
	before := profile.ExperiencePoints

	completed := svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 60), 1500, time.Now())

	require.NotNil(t, completed)
	assert.Equal(t, before+150, profile.ExperiencePoints)
	assert.True(t, profile.Badges[model.BadgeProlificWriter])
	assert.True(t, profile.HasAchievementType(model.AchievementChallenge))
	require.NotNil(t, completed.CompletedAt)
	assert.False(t, completed.IsActive)
}

func TestAdvance_SkillFocusOnlyMatchingSessions(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)
	startByType(t, svc, profile, model.ChallengeSkillFocus) // grammar, 3 exercises

	svc.Advance(1, profile, session(model.SkillStyle, 0.5, 60), 100, time.Now())
	require.Len(t, profile.ActiveChallenges, 1)
	assert.Equal(t, 0, profile.ActiveChallenges[0].Progress.ExercisesCompleted)

	svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 60), 100, time.Now())
	svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 60), 100, time.Now())
	completed := svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 60), 100, time.Now())

	require.NotNil(t, completed)
	assert.Equal(t, model.ChallengeSkillFocus, completed.Type)
}

func TestAdvance_ConsistencyCountsEverySession(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)
	startByType(t, svc, profile, model.ChallengeConsistency)

	// Seven sessions on the same day complete the streak: day counting
	// is per matching session, not per distinct day.
	var completed *model.WritingChallenge
	for i := 0; i < 7; i++ {
		completed = svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 60), 100, time.Now())
	}

	require.NotNil(t, completed)
	assert.Equal(t, model.ChallengeConsistency, completed.Type)
	assert.Equal(t, 7, completed.Progress.ConsecutiveDays)
}

func TestAdvance_AtMostOneCompletionPerSession(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)
	startByType(t, svc, profile, model.ChallengeTimed)      // 1 exercise
	startByType(t, svc, profile, model.ChallengeWordCount)  // 1000 words

	// Both thresholds are crossed by this session, but only the first
	// active challenge completes.
	completed := svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 60), 5000, time.Now())

	require.NotNil(t, completed)
	assert.Len(t, profile.CompletedChallenges, 1)
	assert.Len(t, profile.ActiveChallenges, 1)
}

func TestAdvance_TracksTimeSpent(t *testing.T) {
	svc := newChallengeService()
	profile := seededProfile(t, svc)
	startByType(t, svc, profile, model.ChallengeWordCount)

	svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 120), 100, time.Now())
	svc.Advance(1, profile, session(model.SkillGrammar, 0.5, 180), 100, time.Now())

	require.Len(t, profile.ActiveChallenges, 1)
	assert.InDelta(t, 300, profile.ActiveChallenges[0].Progress.TimeSpent, 1e-9)
}
