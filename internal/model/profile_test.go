package model_test

import (
	"testing"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 1},
		{399, 1},
		{400, 2},
		{900, 3},
		{2500, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.SkillLevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestProfileLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{199, 1},
		{799, 1},
		{800, 2},
		{1800, 3},
		{5000, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.ProfileLevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func TestAppendSession_EvictsOldest(t *testing.T) {
	profile := model.NewGamifiedUserProfile(time.Now())

	for i := 0; i < model.SessionHistoryLimit+1; i++ {
		profile.AppendSession(model.LearningSession{ID: model.GenerateUUID()})
	}

	assert.Len(t, profile.Sessions, model.SessionHistoryLimit)
}

func TestProgress_LazyInitAtStartingLevel(t *testing.T) {
	profile := model.NewGamifiedUserProfile(time.Now())

	sp := profile.Progress(model.SkillTone)

	require.NotNil(t, sp)
	assert.Equal(t, model.InitialSkillLevel, sp.CurrentLevel)
	assert.Equal(t, 1.0, sp.TargetLevel)
	// Same record on repeated access.
	assert.Same(t, sp, profile.Progress(model.SkillTone))
}

func TestSkillData_LazyInitAtLevelOne(t *testing.T) {
	profile := model.NewGamifiedUserProfile(time.Now())

	data := profile.SkillData(model.SkillClarity)

	require.NotNil(t, data)
	assert.Equal(t, 1, data.Level)
	assert.Equal(t, 0, data.ExperiencePoints)
}

func TestHasAchievementType(t *testing.T) {
	profile := model.NewGamifiedUserProfile(time.Now())
	profile.Achievements = append(profile.Achievements, model.Achievement{Type: model.AchievementReadability})

	assert.True(t, profile.HasAchievementType(model.AchievementReadability))
	assert.False(t, profile.HasAchievementType(model.AchievementVocabulary))
}

func TestSkillAreaFromString(t *testing.T) {
	for _, area := range model.AllSkillAreas {
		got, ok := model.SkillAreaFromString(string(area))
		assert.True(t, ok)
		assert.Equal(t, area, got)
	}

	_, ok := model.SkillAreaFromString("penmanship")
	assert.False(t, ok)
}

func TestBadgeInfo_KnownAndUnknown(t *testing.T) {
	info := model.BadgeSpeedWriter.Info()
	assert.Equal(t, "Speed Writer", info.Title)
	assert.Equal(t, model.RarityRare, info.Rarity)

	unknown := model.Badge("mystery").Info()
	assert.Equal(t, "mystery", unknown.Title)
	assert.Equal(t, model.RarityCommon, unknown.Rarity)
}

func TestEstimatedWordCount(t *testing.T) {
	analysis := &model.Analysis{
		Metrics: model.WritingMetrics{AverageSentenceLength: 12.5, SentenceCount: 8},
	}

	assert.Equal(t, 100, analysis.EstimatedWordCount())
}
