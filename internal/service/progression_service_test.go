package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSession_SessionExperience(t *testing.T) {
	engine := newEngine(newMemStore())

	// 10 base + floor(0.5*20)=10 + floor(120/60)=2, no bonuses
	outcome := engine.RecordSession(context.Background(), 1, session(model.SkillGrammar, 0.5, 120), sampleAnalysis())

	assert.Equal(t, 22, outcome.ExperienceEarned)
}

func TestRecordSession_TimeBonusCapped(t *testing.T) {
	engine := newEngine(newMemStore())

	// time bonus capped at 30 even for a two-hour session
	outcome := engine.RecordSession(context.Background(), 1, session(model.SkillGrammar, 0.0, 7200), sampleAnalysis())

	assert.Equal(t, 10+0+30, outcome.ExperienceEarned)
}

func TestRecordSession_SuggestionAndExcellenceBonuses(t *testing.T) {
	engine := newEngine(newMemStore())
	analysis := sampleAnalysis(
		suggestion("grammar", 0.5, 0.5),
		suggestion("style", 0.5, 0.5),
		suggestion("clarity", 0.5, 0.5),
	)

	// 10 + floor(0.8*20)=16 + 1 + 15 + 25
	outcome := engine.RecordSession(context.Background(), 1, session(model.SkillGrammar, 0.8, 60), analysis)

	assert.Equal(t, 67, outcome.ExperienceEarned)
}

func TestRecordSession_FirstAndPerfectInSameCall(t *testing.T) {
	engine := newEngine(newMemStore())

	outcome := engine.RecordSession(context.Background(), 1, session(model.SkillGrammar, 0.96, 60), sampleAnalysis())

	types := make([]model.AchievementType, 0, len(outcome.Achievements))
	for _, a := range outcome.Achievements {
		types = append(types, a.Type)
	}
	assert.Contains(t, types, model.AchievementFirstTime)
	assert.Contains(t, types, model.AchievementPerformance)
}

func TestRecordSession_SkillTracksUpdated(t *testing.T) {
	engine := newEngine(newMemStore())

	engine.RecordSession(context.Background(), 1, session(model.SkillStyle, 0.6, 240), sampleAnalysis())
	profile := engine.Profile(context.Background(), 1)

	data := profile.Skills[model.SkillStyle]
	require.NotNil(t, data)
	// floor(0.6*30)=18 + floor(240/120)=2
	assert.Equal(t, 20, data.ExperiencePoints)
	assert.Equal(t, 1, data.SessionsCompleted)
	assert.Equal(t, 1, data.Level)

	sp := profile.SkillProgress[model.SkillStyle]
	require.NotNil(t, sp)
	// 0.3 initial + 0.6*0.05
	assert.InDelta(t, 0.33, sp.CurrentLevel, 1e-9)
	assert.False(t, sp.LastPracticed.IsZero())
}

func TestRecordSession_WordsAccumulated(t *testing.T) {
	engine := newEngine(newMemStore())

	engine.RecordSession(context.Background(), 1, session(model.SkillGrammar, 0.5, 60), sampleAnalysis())
	engine.RecordSession(context.Background(), 1, session(model.SkillGrammar, 0.5, 60), sampleAnalysis())
	profile := engine.Profile(context.Background(), 1)

	// 15 * 10 words per analysis
	assert.Equal(t, 300, profile.TotalWordsAnalyzed)
	assert.Equal(t, 2, profile.TotalSessions)
}

func TestRecordSession_SessionHistoryEvictsOldest(t *testing.T) {
	engine := newEngine(newMemStore())

	var first string
	for i := 0; i < model.SessionHistoryLimit+1; i++ {
		s := session(model.SkillGrammar, 0.5, 60)
		if i == 0 {
			first = s.ID
		}
		engine.RecordSession(context.Background(), 1, s, sampleAnalysis())
	}

	profile := engine.Profile(context.Background(), 1)
	require.Len(t, profile.Sessions, model.SessionHistoryLimit)
	assert.NotEqual(t, first, profile.Sessions[0].ID)
}

func TestRecordSession_LevelUpAwardsAndUnlocks(t *testing.T) {
	store := newMemStore()
	engine := newEngine(store)

	// Pre-seed a profile just below level 5 (xp >= 5^2*200 = 5000).
	profile := model.NewGamifiedUserProfile(time.Now())
	profile.Level = 4
	profile.ExperiencePoints = 4990
	store.profiles[1] = profile

	outcome := engine.RecordSession(context.Background(), 1, session(model.SkillGrammar, 0.5, 60), sampleAnalysis())

	assert.True(t, outcome.LeveledUp)
	assert.Equal(t, 5, outcome.NewLevel)
	assert.Equal(t, "advanced_exercises", outcome.UnlockedFeature)
	assert.True(t, profile.UnlockedFeatures["advanced_exercises"])

	types := make([]model.AchievementType, 0, len(outcome.Achievements))
	for _, a := range outcome.Achievements {
		types = append(types, a.Type)
	}
	assert.Contains(t, types, model.AchievementLevelUp)
}

func TestProfile_FreshDefaultOnLoadFailure(t *testing.T) {
	store := newMemStore()
	store.loadErr = errBoom
	engine := newEngine(store)

	profile := engine.Profile(context.Background(), 1)

	require.NotNil(t, profile)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 0, profile.TotalSessions)
	assert.NotEmpty(t, profile.AvailableChallenges)
}

func TestRecordSession_SaveFailureDoesNotFail(t *testing.T) {
	store := newMemStore()
	store.saveErr = errBoom
	engine := newEngine(store)

	outcome := engine.RecordSession(context.Background(), 1, session(model.SkillGrammar, 0.5, 60), sampleAnalysis())

	require.NotNil(t, outcome)
	// The in-memory profile still reflects the session.
	assert.Equal(t, 1, engine.Profile(context.Background(), 1).TotalSessions)
	assert.Equal(t, 1, store.saves)
}

func TestProfile_CachedAcrossCalls(t *testing.T) {
	store := newMemStore()
	engine := newEngine(store)

	p1 := engine.Profile(context.Background(), 1)
	p2 := engine.Profile(context.Background(), 1)

	assert.Same(t, p1, p2)
}
