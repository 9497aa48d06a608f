package model

import (
	"math"
	"time"
)

// RecentAchievementLimit caps the newest-first recent list surfaced to the
// client; the oldest entry drops off the tail.
const RecentAchievementLimit = 10

// SkillLevelForXP computes the per-skill integer level from experience.
// Pure function of experience; never decreases because experience never
// decreases.
func SkillLevelForXP(xp int) int {
	level := int(math.Sqrt(float64(xp) / 100.0))
	if level < 1 {
		return 1
	}
	return level
}

// ProfileLevelForXP computes the overall profile level from experience.
func ProfileLevelForXP(xp int) int {
	level := int(math.Sqrt(float64(xp) / 200.0))
	if level < 1 {
		return 1
	}
	return level
}

// GamifiedSkillData tracks per-skill experience for the gamified profile.
type GamifiedSkillData struct {
	Level             int `json:"level"`
	ExperiencePoints  int `json:"experiencePoints"`
	SessionsCompleted int `json:"sessionsCompleted"`
}

// GamifiedUserProfile is the persistent root of all progression state.
// Owned exclusively by the progression engine and persisted as a single
// serialized blob.
type GamifiedUserProfile struct {
	Level              int                           `json:"level"`
	ExperiencePoints   int                           `json:"experiencePoints"`
	TotalSessions      int                           `json:"totalSessions"`
	TotalWordsAnalyzed int                           `json:"totalWordsAnalyzed"`
	JoinedAt           time.Time                     `json:"joinedAt"`
	Skills             map[SkillArea]*GamifiedSkillData `json:"skills"`
	SkillProgress      map[SkillArea]*SkillProgress  `json:"skillProgress"`
	Sessions           []LearningSession             `json:"sessions"`
	Achievements       []Achievement                 `json:"achievements"`
	RecentAchievements []Achievement                 `json:"recentAchievements"`
	Badges             map[Badge]bool                `json:"badges"`
	UnlockedFeatures   map[string]bool               `json:"unlockedFeatures"`
	AvailableChallenges []WritingChallenge           `json:"availableChallenges"`
	ActiveChallenges    []WritingChallenge           `json:"activeChallenges"`
	CompletedChallenges []WritingChallenge           `json:"completedChallenges"`
}

// NewGamifiedUserProfile returns a fresh default profile. Also the
// fallback when persisted state is missing or unreadable.
func NewGamifiedUserProfile(now time.Time) *GamifiedUserProfile {
	return &GamifiedUserProfile{
		Level:            1,
		JoinedAt:         now,
		Skills:           make(map[SkillArea]*GamifiedSkillData),
		SkillProgress:    make(map[SkillArea]*SkillProgress),
		Badges:           make(map[Badge]bool),
		UnlockedFeatures: make(map[string]bool),
	}
}

// SkillData returns the gamified record for an area, creating it on first
// access.
func (p *GamifiedUserProfile) SkillData(area SkillArea) *GamifiedSkillData {
	if p.Skills == nil {
		p.Skills = make(map[SkillArea]*GamifiedSkillData)
	}
	data, ok := p.Skills[area]
	if !ok {
		data = &GamifiedSkillData{Level: 1}
		p.Skills[area] = data
	}
	return data
}

// Progress returns the skill progress record for an area, lazily
// initialized at the basic starting competence.
func (p *GamifiedUserProfile) Progress(area SkillArea) *SkillProgress {
	if p.SkillProgress == nil {
		p.SkillProgress = make(map[SkillArea]*SkillProgress)
	}
	sp, ok := p.SkillProgress[area]
	if !ok {
		sp = NewSkillProgress(area)
		p.SkillProgress[area] = sp
	}
	return sp
}

// AppendSession adds a session to the history, evicting the oldest entry
// once the cap is reached.
func (p *GamifiedUserProfile) AppendSession(s LearningSession) {
	p.Sessions = append(p.Sessions, s)
	if len(p.Sessions) > SessionHistoryLimit {
		p.Sessions = p.Sessions[len(p.Sessions)-SessionHistoryLimit:]
	}
}

// HasAchievementType reports whether any earned achievement carries the
// given type. Used for first-of-its-kind awards.
func (p *GamifiedUserProfile) HasAchievementType(t AchievementType) bool {
	for _, a := range p.Achievements {
		if a.Type == t {
			return true
		}
	}
	return false
}
