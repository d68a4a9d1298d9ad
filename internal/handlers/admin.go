package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ankitsingh13022003-code/MindCare/internal/services"
)

// AdminHandler backs the staff-only panel: catalog maintenance, contact
// message triage and a small counts overview.
type AdminHandler struct {
	adminService   services.AdminService
	catalogService services.CatalogService
	contactService services.ContactService
}

func NewAdminHandler(adminService services.AdminService, catalogService services.CatalogService, contactService services.ContactService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		catalogService: catalogService,
		contactService: contactService,
	}
}

func (ah *AdminHandler) Overview(c *gin.Context) {
	overview, err := ah.adminService.Overview(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, overview)
}

func (ah *AdminHandler) ListQuestions(c *gin.Context) {
	questions, err := ah.catalogService.ListQuestions(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"questions": questions})
}

func (ah *AdminHandler) CreateQuestion(c *gin.Context) {
	var req services.QuestionUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	question, err := ah.catalogService.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"question": question})
}

func (ah *AdminHandler) UpdateQuestion(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	var req services.QuestionUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	question, err := ah.catalogService.UpdateQuestion(c.Request.Context(), questionID, req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"question": question})
}

func (ah *AdminHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ah.catalogService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

func (ah *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := ah.contactService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"messages": messages})
}

func (ah *AdminHandler) GetMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	msg, err := ah.contactService.Get(c.Request.Context(), messageID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": msg})
}

func (ah *AdminHandler) DeleteMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ah.contactService.Delete(c.Request.Context(), messageID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
