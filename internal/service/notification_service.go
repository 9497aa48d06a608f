package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NotificationSink receives fire-and-forget achievement events for the UI
// layer. Implementations must never block progression.
type NotificationSink interface {
	AchievementUnlocked(userID uint, achievement model.Achievement)
}

// AchievementNotification is the payload published to the UI channel.
type AchievementNotification struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ExperienceReward int    `json:"experienceReward"`
}

// RedisNotificationSink publishes achievement events on a per-user
// channel; clients subscribe for live toasts.
type RedisNotificationSink struct {
	Redis *redis.Client
}

func NewRedisNotificationSink(rdb *redis.Client) *RedisNotificationSink {
	return &RedisNotificationSink{Redis: rdb}
}

func (s *RedisNotificationSink) AchievementUnlocked(userID uint, achievement model.Achievement) {
	payload, err := json.Marshal(AchievementNotification{
		Title:            achievement.Title,
		Description:      achievement.Description,
		ExperienceReward: achievement.ExperienceReward,
	})
	if err != nil {
		return
	}

	channel := fmt.Sprintf("notifications:user:%d", userID)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.Redis.Publish(ctx, channel, payload).Err(); err != nil {
			logger.Log.Warn("achievement notification publish failed",
				zap.Uint("userID", userID), zap.Error(err))
		}
	}()
}

// LogNotificationSink writes achievement events to the application log.
// Used when redis is unavailable and in tests.
type LogNotificationSink struct{}

func (LogNotificationSink) AchievementUnlocked(userID uint, achievement model.Achievement) {
	logger.Log.Info("achievement unlocked",
		zap.Uint("userID", userID),
		zap.String("title", achievement.Title),
		zap.Int("xp", achievement.ExperienceReward),
	)
}
