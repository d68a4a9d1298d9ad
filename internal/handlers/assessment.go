package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ankitsingh13022003-code/MindCare/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
	guidanceService   services.GuidanceService
}

func NewAssessmentHandler(assessmentService services.AssessmentService, guidanceService services.GuidanceService) *AssessmentHandler {
	return &AssessmentHandler{assessmentService: assessmentService, guidanceService: guidanceService}
}

func (ah *AssessmentHandler) Dashboard(c *gin.Context) {
	stats, err := ah.assessmentService.Dashboard(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, stats)
}

// GetResult returns one assessment together with the advice list for its
// severity category.
func (ah *AssessmentHandler) GetResult(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	assessment, err := ah.assessmentService.GetForUser(c.Request.Context(), assessmentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"assessment":      assessment,
		"recommendations": ah.guidanceService.Recommendations(assessment.OverallCategory),
	})
}
