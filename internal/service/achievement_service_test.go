package service_test

import (
	"testing"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshProfile() *model.GamifiedUserProfile {
	return model.NewGamifiedUserProfile(time.Now())
}

// neutralAnalysis avoids the readability and vocabulary triggers.
func neutralAnalysis() *model.Analysis {
	a := sampleAnalysis()
	a.Metrics.FleschKincaidGrade = 5
	a.Metrics.VocabularyDiversity = 0.6
	return a
}

func TestEvaluate_FirstSessionAward(t *testing.T) {
	svc := service.NewAchievementService(nopSink{})
	profile := freshProfile()
	profile.TotalSessions = 1

	awarded := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.5, 60), neutralAnalysis())

	require.Len(t, awarded, 1)
	assert.Equal(t, model.AchievementFirstTime, awarded[0].Type)
	assert.Equal(t, 25, awarded[0].ExperienceReward)
}

func TestEvaluate_MilestoneRewards(t *testing.T) {
	svc := service.NewAchievementService(nopSink{})

	tests := []struct {
		sessions int
		reward   int
	}{
		{10, 100},
		{50, 100},
		{100, 200},
		{500, 200},
	}

	for _, tt := range tests {
		profile := freshProfile()
		profile.TotalSessions = tt.sessions

		awarded := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.5, 60), neutralAnalysis())

		require.Len(t, awarded, 1, "sessions=%d", tt.sessions)
		assert.Equal(t, model.AchievementMilestone, awarded[0].Type)
		assert.Equal(t, tt.reward, awarded[0].ExperienceReward, "sessions=%d", tt.sessions)
	}
}

func TestEvaluate_NoMilestoneBetweenThresholds(t *testing.T) {
	svc := service.NewAchievementService(nopSink{})
	profile := freshProfile()
	profile.TotalSessions = 11

	awarded := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.5, 60), neutralAnalysis())

	assert.Empty(t, awarded)
}

func TestEvaluate_PerfectPerformanceRepeats(t *testing.T) {
	svc := service.NewAchievementService(nopSink{})
	profile := freshProfile()
	profile.TotalSessions = 2

	first := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.97, 60), neutralAnalysis())
	profile.TotalSessions = 3
	second := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.95, 60), neutralAnalysis())

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, model.AchievementPerformance, first[0].Type)
	assert.Equal(t, model.AchievementPerformance, second[0].Type)
}

func TestEvaluate_ReadabilityOnlyOnce(t *testing.T) {
	svc := service.NewAchievementService(nopSink{})
	profile := freshProfile()
	profile.TotalSessions = 2
	analysis := sampleAnalysis() // grade 9.5, in band

	first := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.5, 60), analysis)
	profile.TotalSessions = 3
	second := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.5, 60), analysis)

	require.Len(t, first, 1)
	assert.Equal(t, model.AchievementReadability, first[0].Type)
	assert.Empty(t, second)
}

func TestEvaluate_VocabularyOnlyOnce(t *testing.T) {
	svc := service.NewAchievementService(nopSink{})
	profile := freshProfile()
	profile.TotalSessions = 2
	analysis := sampleAnalysis()
	analysis.Metrics.FleschKincaidGrade = 5 // out of readability band
	analysis.Metrics.VocabularyDiversity = 0.85

	first := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.5, 60), analysis)
	profile.TotalSessions = 3
	second := svc.Evaluate(1, profile, session(model.SkillGrammar, 0.5, 60), analysis)

	require.Len(t, first, 1)
	assert.Equal(t, model.AchievementVocabulary, first[0].Type)
	assert.Empty(t, second)
}

func TestAward_UpdatesProfileAndRecentList(t *testing.T) {
	svc := service.NewAchievementService(nopSink{})
	profile := freshProfile()

	for i := 0; i < model.RecentAchievementLimit+2; i++ {
		svc.Award(1, profile, model.Achievement{
			Type:             model.AchievementPerformance,
			Title:            "Perfect Performance",
			ExperienceReward: 10,
		})
	}

	assert.Len(t, profile.Achievements, model.RecentAchievementLimit+2)
	assert.Len(t, profile.RecentAchievements, model.RecentAchievementLimit)
	assert.Equal(t, (model.RecentAchievementLimit+2)*10, profile.ExperiencePoints)
	// Newest first.
	assert.Equal(t, profile.Achievements[len(profile.Achievements)-1].ID, profile.RecentAchievements[0].ID)
}

func TestAward_StampsIDAndTimestamp(t *testing.T) {
	svc := service.NewAchievementService(nopSink{})
	profile := freshProfile()

	a := svc.Award(1, profile, model.Achievement{Type: model.AchievementLevelUp, Title: "Level 2"})

	assert.NotEmpty(t, a.ID)
	assert.False(t, a.UnlockedAt.IsZero())
}
