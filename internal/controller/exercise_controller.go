package controller

import (
	"errors"

	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Exercises *service.ExerciseService
}

func NewExerciseController(exercises *service.ExerciseService) *ExerciseController {
	return &ExerciseController{Exercises: exercises}
}

// Daily handles GET /api/exercises/daily — generates a fresh set, one per
// skill area.
func (ctl *ExerciseController) Daily(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	exercises := ctl.Exercises.DailyExercises(c.Request.Context(), claims.UserID)
	util.Success(c, gin.H{"exercises": exercises})
}

// Start handles POST /api/exercises/:id/start
func (ctl *ExerciseController) Start(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	exercise, err := ctl.Exercises.Start(claims.UserID, c.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(c)
			return
		}
		util.LogInternalError(c, err)
		return
	}

	util.Success(c, exercise)
}

type submitInput struct {
	Response string `json:"response" binding:"required"`
}

// Submit handles POST /api/exercises/:id/submit — the full pipeline:
// analyze, evaluate, record progression.
func (ctl *ExerciseController) Submit(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var input submitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	result, err := ctl.Exercises.Submit(c.Request.Context(), claims.UserID, c.Param("id"), input.Response)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrExerciseNotFound):
			util.NotFound(c)
		case errors.Is(err, util.ErrExerciseNotStarted):
			util.BadRequest(c, "Exercise has not been started")
		case errors.Is(err, util.ErrEmptyText):
			util.BadRequest(c, "Response text is empty")
		case errors.Is(err, util.ErrAnalysisUnavailable):
			util.ServiceUnavailable(c, "Analysis service unavailable, please retry")
		default:
			util.LogInternalError(c, err)
		}
		return
	}

	util.Success(c, result)
}
