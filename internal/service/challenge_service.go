package service

import (
	"fmt"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/util"
	"github.com/infektyd/FoundationWriting/pkg/monitoring"
)

// Fallback thresholds used when a challenge carries zero-valued
// requirements.
const (
	defaultExerciseCount   = 1
	defaultSkillFocusCount = 3
	defaultConsecutiveDays = 7
	defaultMinimumWords    = 1000
)

// ChallengeService manages the challenge pools on a profile: seeding the
// available set, starting challenges and advancing active ones after each
// session. It mutates the profile it is given; persistence is the
// caller's job.
type ChallengeService struct {
	Achievements *AchievementService
}

func NewChallengeService(achievements *AchievementService) *ChallengeService {
	return &ChallengeService{Achievements: achievements}
}

// DefaultChallenges returns the seed pool offered to every new profile.
func DefaultChallenges(now time.Time) []model.WritingChallenge {
	return []model.WritingChallenge{
		{
			ID:          model.GenerateUUID(),
			Title:       "Beat the Clock",
			Description: "Complete a timed exercise without running over",
			Type:        model.ChallengeTimed,
			Difficulty:  model.DifficultyMedium,
			Requirements: model.ChallengeRequirements{
				ExerciseCount: 1,
			},
			Rewards: model.ChallengeRewards{
				ExperiencePoints: 50,
				Badge:            model.BadgeSpeedWriter,
			},
			CreatedAt: now,
		},
		{
			ID:          model.GenerateUUID(),
			Title:       "Grammar Deep Dive",
			Description: "Complete three grammar-focused exercises",
			Type:        model.ChallengeSkillFocus,
			Difficulty:  model.DifficultyMedium,
			Requirements: model.ChallengeRequirements{
				ExerciseCount: 3,
				TargetSkills:  []model.SkillArea{model.SkillGrammar},
			},
			Rewards: model.ChallengeRewards{
				ExperiencePoints: 100,
				Badge:            model.BadgeWordsmith,
			},
			CreatedAt: now,
		},
		{
			ID:          model.GenerateUUID(),
			Title:       "Seven Day Streak",
			Description: "Practice on seven consecutive days",
			Type:        model.ChallengeConsistency,
			Difficulty:  model.DifficultyHard,
			Requirements: model.ChallengeRequirements{
				ConsecutiveDays: 7,
			},
			Rewards: model.ChallengeRewards{
				ExperiencePoints:  200,
				Badge:             model.BadgeStreakKeeper,
				UnlockableContent: "streak_themes",
			},
			CreatedAt: now,
		},
		{
			ID:          model.GenerateUUID(),
			Title:       "Thousand Words",
			Description: "Write one thousand words across your sessions",
			Type:        model.ChallengeWordCount,
			Difficulty:  model.DifficultyHard,
			Requirements: model.ChallengeRequirements{
				MinimumWords: 1000,
			},
			Rewards: model.ChallengeRewards{
				ExperiencePoints: 150,
				Badge:            model.BadgeProlificWriter,
			},
			CreatedAt: now,
		},
	}
}

// EnsureDefaults seeds the available pool for profiles that have never
// seen a challenge.
func (s *ChallengeService) EnsureDefaults(profile *model.GamifiedUserProfile, now time.Time) {
	if len(profile.AvailableChallenges) == 0 && len(profile.ActiveChallenges) == 0 && len(profile.CompletedChallenges) == 0 {
		profile.AvailableChallenges = DefaultChallenges(now)
	}
}

// Start moves a challenge from the available pool to the active pool.
func (s *ChallengeService) Start(profile *model.GamifiedUserProfile, challengeID string, now time.Time) (*model.WritingChallenge, error) {
	for _, active := range profile.ActiveChallenges {
		if active.ID == challengeID {
			return nil, util.ErrChallengeActive
		}
	}

	for i, challenge := range profile.AvailableChallenges {
		if challenge.ID != challengeID {
			continue
		}
		challenge.IsActive = true
		startedAt := now
		challenge.StartedAt = &startedAt

		profile.AvailableChallenges = append(profile.AvailableChallenges[:i], profile.AvailableChallenges[i+1:]...)
		profile.ActiveChallenges = append(profile.ActiveChallenges, challenge)
		return &profile.ActiveChallenges[len(profile.ActiveChallenges)-1], nil
	}

	return nil, util.ErrChallengeNotFound
}

// Advance updates every active challenge that targets the session's skill
// area and completes the first one whose thresholds are met. At most one
// challenge completes per session; the rest keep their progress until the
// next call.
func (s *ChallengeService) Advance(
	userID uint,
	profile *model.GamifiedUserProfile,
	session model.LearningSession,
	wordsWritten int,
	now time.Time,
) *model.WritingChallenge {
	for i := range profile.ActiveChallenges {
		challenge := &profile.ActiveChallenges[i]
		if !challenge.Requirements.TargetsSkill(session.SkillArea) {
			continue
		}

		challenge.Progress.SessionsCompleted++
		challenge.Progress.ExercisesCompleted++
		challenge.Progress.WordsWritten += wordsWritten
		challenge.Progress.TimeSpent += session.TimeSpent
		if challenge.Type == model.ChallengeConsistency {
			challenge.Progress.ConsecutiveDays++
		}

		if s.isComplete(*challenge) {
			completed := s.complete(userID, profile, i, now)
			return completed
		}
	}
	return nil
}

func (s *ChallengeService) isComplete(challenge model.WritingChallenge) bool {
	req := challenge.Requirements
	switch challenge.Type {
	case model.ChallengeTimed:
		target := req.ExerciseCount
		if target <= 0 {
			target = defaultExerciseCount
		}
		return challenge.Progress.SessionsCompleted >= target
	case model.ChallengeSkillFocus:
		target := req.ExerciseCount
		if target <= 0 {
			target = defaultSkillFocusCount
		}
		return challenge.Progress.ExercisesCompleted >= target
	case model.ChallengeConsistency:
		target := req.ConsecutiveDays
		if target <= 0 {
			target = defaultConsecutiveDays
		}
		return challenge.Progress.ConsecutiveDays >= target
	case model.ChallengeWordCount:
		target := req.MinimumWords
		if target <= 0 {
			target = defaultMinimumWords
		}
		return challenge.Progress.WordsWritten >= target
	}
	return false
}

// complete archives the active challenge at index i and pays out its
// rewards.
func (s *ChallengeService) complete(userID uint, profile *model.GamifiedUserProfile, i int, now time.Time) *model.WritingChallenge {
	challenge := profile.ActiveChallenges[i]
	challenge.IsActive = false
	completedAt := now
	challenge.CompletedAt = &completedAt

	profile.ActiveChallenges = append(profile.ActiveChallenges[:i], profile.ActiveChallenges[i+1:]...)
	profile.CompletedChallenges = append(profile.CompletedChallenges, challenge)

	profile.ExperiencePoints += challenge.Rewards.ExperiencePoints
	if challenge.Rewards.Badge != "" {
		if profile.Badges == nil {
			profile.Badges = make(map[model.Badge]bool)
		}
		profile.Badges[challenge.Rewards.Badge] = true
	}
	if challenge.Rewards.UnlockableContent != "" {
		if profile.UnlockedFeatures == nil {
			profile.UnlockedFeatures = make(map[string]bool)
		}
		profile.UnlockedFeatures[challenge.Rewards.UnlockableContent] = true
	}

	if s.Achievements != nil {
		s.Achievements.Award(userID, profile, model.Achievement{
			Type:             model.AchievementChallenge,
			Title:            fmt.Sprintf("Challenge Complete: %s", challenge.Title),
			Description:      challenge.Description,
			Icon:             "trophy",
			ExperienceReward: 0,
		})
	}

	monitoring.ChallengesCompleted.WithLabelValues(string(challenge.Type)).Inc()

	return &profile.CompletedChallenges[len(profile.CompletedChallenges)-1]
}
