package service

import (
	"fmt"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/pkg/monitoring"
)

// sessionMilestones are the totals that trigger a milestone achievement.
var sessionMilestones = map[int]bool{10: true, 25: true, 50: true, 100: true, 250: true, 500: true}

// AchievementService is a stateless rule evaluator run after every
// recorded session. Each rule is checked independently on every call.
type AchievementService struct {
	Notifier NotificationSink
}

func NewAchievementService(notifier NotificationSink) *AchievementService {
	return &AchievementService{Notifier: notifier}
}

// Evaluate checks every rule against the just-updated profile and session
// and awards whatever qualifies. Returns the achievements awarded by this
// call in award order.
func (s *AchievementService) Evaluate(
	userID uint,
	profile *model.GamifiedUserProfile,
	session model.LearningSession,
	analysis *model.Analysis,
) []model.Achievement {
	var awarded []model.Achievement

	if profile.TotalSessions == 1 {
		awarded = append(awarded, s.Award(userID, profile, model.Achievement{
			Type:             model.AchievementFirstTime,
			Title:            "First Steps",
			Description:      "Completed your first learning session",
			Icon:             "footprints",
			ExperienceReward: 25,
		}))
	}

	if sessionMilestones[profile.TotalSessions] {
		reward := 100
		if profile.TotalSessions >= 100 {
			reward = 200
		}
		awarded = append(awarded, s.Award(userID, profile, model.Achievement{
			Type:             model.AchievementMilestone,
			Title:            fmt.Sprintf("%d Sessions", profile.TotalSessions),
			Description:      fmt.Sprintf("Completed %d learning sessions", profile.TotalSessions),
			Icon:             "medal",
			ExperienceReward: reward,
		}))
	}

	// Perfect performance is awarded every time it happens.
	if session.PerformanceScore >= 0.95 {
		awarded = append(awarded, s.Award(userID, profile, model.Achievement{
			Type:             model.AchievementPerformance,
			Title:            "Perfect Performance",
			Description:      "Scored 95% or higher on an exercise",
			Icon:             "star",
			ExperienceReward: 100,
		}))
	}

	// Readability and vocabulary are first-of-their-kind: once per
	// profile lifetime, checked by scanning earned types.
	grade := analysis.Metrics.FleschKincaidGrade
	if grade >= 8 && grade <= 12 && !profile.HasAchievementType(model.AchievementReadability) {
		awarded = append(awarded, s.Award(userID, profile, model.Achievement{
			Type:             model.AchievementReadability,
			Title:            "Clear Communicator",
			Description:      "Hit the optimal readability range",
			Icon:             "glasses",
			ExperienceReward: 75,
		}))
	}

	if analysis.Metrics.VocabularyDiversity >= 0.8 && !profile.HasAchievementType(model.AchievementVocabulary) {
		awarded = append(awarded, s.Award(userID, profile, model.Achievement{
			Type:             model.AchievementVocabulary,
			Title:            "Rich Vocabulary",
			Description:      "Reached 80% vocabulary diversity",
			Icon:             "book",
			ExperienceReward: 75,
		}))
	}

	return awarded
}

// AwardLevelUp grants the level-up achievement triggered by the
// progression engine.
func (s *AchievementService) AwardLevelUp(userID uint, profile *model.GamifiedUserProfile, level int) model.Achievement {
	return s.Award(userID, profile, model.Achievement{
		Type:             model.AchievementLevelUp,
		Title:            fmt.Sprintf("Level %d", level),
		Description:      fmt.Sprintf("Reached writer level %d", level),
		Icon:             "arrow-up",
		ExperienceReward: 50,
	})
}

// Award finalizes an achievement: stamps it, appends it to the profile
// history, pays its experience reward, pushes it onto the recent list and
// notifies the UI sink.
func (s *AchievementService) Award(userID uint, profile *model.GamifiedUserProfile, achievement model.Achievement) model.Achievement {
	achievement.ID = model.GenerateUUID()
	achievement.UnlockedAt = time.Now()

	profile.Achievements = append(profile.Achievements, achievement)
	profile.ExperiencePoints += achievement.ExperienceReward

	profile.RecentAchievements = append([]model.Achievement{achievement}, profile.RecentAchievements...)
	if len(profile.RecentAchievements) > model.RecentAchievementLimit {
		profile.RecentAchievements = profile.RecentAchievements[:model.RecentAchievementLimit]
	}

	monitoring.AchievementsAwarded.WithLabelValues(string(achievement.Type)).Inc()
	if s.Notifier != nil {
		s.Notifier.AchievementUnlocked(userID, achievement)
	}

	return achievement
}
