package controller

import (
	"time"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressionController struct {
	Progression *service.ProgressionEngine
}

func NewProgressionController(progression *service.ProgressionEngine) *ProgressionController {
	return &ProgressionController{Progression: progression}
}

// Profile handles GET /api/profile — the full gamified profile.
func (ctl *ProgressionController) Profile(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	util.Success(c, ctl.Progression.Profile(c.Request.Context(), claims.UserID))
}

// Achievements handles GET /api/profile/achievements
func (ctl *ProgressionController) Achievements(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	profile := ctl.Progression.Profile(c.Request.Context(), claims.UserID)
	util.Success(c, gin.H{
		"achievements": profile.Achievements,
		"recent":       profile.RecentAchievements,
	})
}

// Skills handles GET /api/profile/skills — both progression tracks plus
// earned badges.
func (ctl *ProgressionController) Skills(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	profile := ctl.Progression.Profile(c.Request.Context(), claims.UserID)

	badges := make([]model.BadgeInfo, 0, len(profile.Badges))
	for badge, earned := range profile.Badges {
		if earned {
			badges = append(badges, badge.Info())
		}
	}

	util.Success(c, gin.H{
		"skills":        profile.Skills,
		"skillProgress": profile.SkillProgress,
		"badges":        badges,
	})
}

// Sessions handles GET /api/profile/sessions — the capped history, newest
// last.
func (ctl *ProgressionController) Sessions(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	profile := ctl.Progression.Profile(c.Request.Context(), claims.UserID)
	util.Success(c, gin.H{"sessions": profile.Sessions})
}

type recordSessionInput struct {
	SkillArea        string          `json:"skillArea" binding:"required"`
	PerformanceScore float64         `json:"performanceScore" binding:"min=0,max=1"`
	TimeSpent        float64         `json:"timeSpent" binding:"min=0"`
	ExerciseType     string          `json:"exerciseType"`
	Analysis         *model.Analysis `json:"analysis" binding:"required"`
}

// RecordSession handles POST /api/profile/sessions — records practice
// done outside the exercise pipeline, such as free writing analyzed in
// the editor.
func (ctl *ProgressionController) RecordSession(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var input recordSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	area, ok := model.SkillAreaFromString(input.SkillArea)
	if !ok {
		util.BadRequest(c, "Unknown skill area")
		return
	}

	session := model.LearningSession{
		ID:               model.GenerateUUID(),
		SkillArea:        area,
		PerformanceScore: input.PerformanceScore,
		TimeSpent:        input.TimeSpent,
		CompletedAt:      time.Now(),
		ExerciseType:     model.ExerciseType(input.ExerciseType),
	}

	outcome := ctl.Progression.RecordSession(c.Request.Context(), claims.UserID, session, input.Analysis)
	util.Success(c, gin.H{
		"session": session,
		"outcome": outcome,
	})
}
