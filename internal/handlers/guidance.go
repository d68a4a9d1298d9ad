package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ankitsingh13022003-code/MindCare/internal/services"
)

type GuidanceHandler struct {
	guidanceService services.GuidanceService
}

func NewGuidanceHandler(guidanceService services.GuidanceService) *GuidanceHandler {
	return &GuidanceHandler{guidanceService: guidanceService}
}

func (gh *GuidanceHandler) GetGuidance(c *gin.Context) {
	RespondOK(c, gh.guidanceService.Content())
}
