package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ankitsingh13022003-code/MindCare/internal/services"
	"github.com/ankitsingh13022003-code/MindCare/internal/types"
)

type QuizHandler struct {
	catalogService services.CatalogService
	scoringService services.ScoringService
}

func NewQuizHandler(catalogService services.CatalogService, scoringService services.ScoringService) *QuizHandler {
	return &QuizHandler{catalogService: catalogService, scoringService: scoringService}
}

type quizOption struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type quizQuestion struct {
	ID       uuid.UUID              `json:"id"`
	Text     string                 `json:"text"`
	Category types.QuestionCategory `json:"category"`
	Options  []quizOption           `json:"options"`
}

// GetQuiz returns the question catalog without option weights. The weights
// drive scoring and stay server-side.
func (qh *QuizHandler) GetQuiz(c *gin.Context) {
	questions, err := qh.catalogService.ListQuestions(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	out := make([]quizQuestion, 0, len(questions))
	for _, q := range questions {
		opts := make([]quizOption, 0, len(q.Options))
		for _, opt := range q.Options {
			opts = append(opts, quizOption{ID: opt.ID, Text: opt.Text})
		}
		out = append(out, quizQuestion{ID: q.ID, Text: q.Text, Category: q.Category, Options: opts})
	}
	RespondOK(c, gin.H{"questions": out})
}

func (qh *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	answers := make(map[uuid.UUID]uuid.UUID, len(req.Answers))
	for questionID, optionID := range req.Answers {
		qid, err := uuid.Parse(questionID)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		oid, err := uuid.Parse(optionID)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
		answers[qid] = oid
	}
	assessment, err := qh.scoringService.SubmitAnswers(c.Request.Context(), answers)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assessment": assessment})
}
