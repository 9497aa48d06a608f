package controller

import (
	"errors"

	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	Progression *service.ProgressionEngine
}

func NewChallengeController(progression *service.ProgressionEngine) *ChallengeController {
	return &ChallengeController{Progression: progression}
}

// List handles GET /api/challenges — all three pools.
func (ctl *ChallengeController) List(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	profile := ctl.Progression.Profile(c.Request.Context(), claims.UserID)
	util.Success(c, gin.H{
		"available": profile.AvailableChallenges,
		"active":    profile.ActiveChallenges,
		"completed": profile.CompletedChallenges,
	})
}

// Start handles POST /api/challenges/:id/start
func (ctl *ChallengeController) Start(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	challenge, err := ctl.Progression.StartChallenge(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrChallengeNotFound):
			util.NotFound(c)
		case errors.Is(err, util.ErrChallengeActive):
			util.Conflict(c, "Challenge already active")
		default:
			util.LogInternalError(c, err)
		}
		return
	}

	util.Success(c, challenge)
}
