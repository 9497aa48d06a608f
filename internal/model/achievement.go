package model

import "time"

type AchievementType string

const (
	AchievementFirstTime    AchievementType = "firstTime"
	AchievementMilestone    AchievementType = "milestone"
	AchievementPerformance  AchievementType = "performance"
	AchievementConsistency  AchievementType = "consistency"
	AchievementLevelUp      AchievementType = "levelUp"
	AchievementSkillMastery AchievementType = "skillMastery"
	AchievementReadability  AchievementType = "readability"
	AchievementVocabulary   AchievementType = "vocabulary"
	AchievementCreativity   AchievementType = "creativity"
	AchievementEfficiency   AchievementType = "efficiency"
	AchievementSocial       AchievementType = "social"
	AchievementChallenge    AchievementType = "challenge"
)

// Achievement is a one-time award appended to the profile history.
// Immutable once created.
type Achievement struct {
	ID               string          `json:"id"`
	Type             AchievementType `json:"type"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Icon             string          `json:"icon"`
	ExperienceReward int             `json:"experienceReward"`
	UnlockedAt       time.Time       `json:"unlockedAt"`
}

type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityUncommon  BadgeRarity = "uncommon"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

// Badge is an enumerated tag with fixed display metadata; profiles hold
// badges as a set, so awarding one twice is a no-op.
type Badge string

const (
	BadgeWordsmith         Badge = "wordsmith"
	BadgeSpeedWriter       Badge = "speed_writer"
	BadgeStreakKeeper      Badge = "streak_keeper"
	BadgeProlificWriter    Badge = "prolific_writer"
	BadgeChallengeChampion Badge = "challenge_champion"
)

type BadgeInfo struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Rarity      BadgeRarity `json:"rarity"`
}

var badgeCatalog = map[Badge]BadgeInfo{
	BadgeWordsmith:         {Title: "Wordsmith", Description: "Master of focused skill practice", Icon: "quill", Rarity: RarityUncommon},
	BadgeSpeedWriter:       {Title: "Speed Writer", Description: "Beat the clock on a timed challenge", Icon: "stopwatch", Rarity: RarityRare},
	BadgeStreakKeeper:      {Title: "Streak Keeper", Description: "Practiced day after day", Icon: "flame", Rarity: RarityEpic},
	BadgeProlificWriter:    {Title: "Prolific Writer", Description: "Wrote a mountain of words", Icon: "stack", Rarity: RarityRare},
	BadgeChallengeChampion: {Title: "Challenge Champion", Description: "Conquered a writing challenge", Icon: "trophy", Rarity: RarityLegendary},
}

// Info returns the fixed display metadata for the badge.
func (b Badge) Info() BadgeInfo {
	if info, ok := badgeCatalog[b]; ok {
		return info
	}
	return BadgeInfo{Title: string(b), Rarity: RarityCommon}
}
