package controller

import (
	"errors"

	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/service"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	Analyzer    service.AnalysisProvider
	Gaps        *service.GapAnalyzer
	Roadmaps    *service.RoadmapService
	Progression *service.ProgressionEngine
}

func NewRoadmapController(
	analyzer service.AnalysisProvider,
	gaps *service.GapAnalyzer,
	roadmaps *service.RoadmapService,
	progression *service.ProgressionEngine,
) *RoadmapController {
	return &RoadmapController{
		Analyzer:    analyzer,
		Gaps:        gaps,
		Roadmaps:    roadmaps,
		Progression: progression,
	}
}

type roadmapInput struct {
	Text           string `json:"text" binding:"required"`
	TimeframeWeeks int    `json:"timeframeWeeks"`
	Depth          string `json:"depth"`
}

// Generate handles POST /api/roadmap — analyzes the writing sample, finds
// skill gaps against the writer's progress and builds a personalized
// roadmap.
func (ctl *RoadmapController) Generate(c *gin.Context) {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		util.Unauthorized(c)
		return
	}

	var input roadmapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	analysis, err := ctl.Analyzer.Analyze(c.Request.Context(), input.Text, model.AnalysisOptions{Depth: input.Depth})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyText):
			util.BadRequest(c, "Text is empty")
		case errors.Is(err, util.ErrAnalysisUnavailable):
			util.ServiceUnavailable(c, "Analysis service unavailable, please retry")
		default:
			util.LogInternalError(c, err)
		}
		return
	}

	profile := ctl.Progression.Profile(c.Request.Context(), claims.UserID)
	gaps := ctl.Gaps.Analyze(analysis, profile.SkillProgress)
	roadmap := ctl.Roadmaps.Build(gaps, analysis, profile.SkillProgress, profile.Sessions, input.TimeframeWeeks)

	util.Success(c, gin.H{
		"analysis": analysis,
		"gaps":     gaps,
		"roadmap":  roadmap,
	})
}
