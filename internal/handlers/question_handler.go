package handlers

import (
	"net/http"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/models"
	"quizhub-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

// CorrectAnswer is a pointer so an omitted field is not mistaken for a legal
// answer index of zero.
type questionRequest struct {
	QuizID        string   `json:"quizId"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer"`
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	if req.QuizID == "" || req.CorrectAnswer == nil {
		writeError(c, apperr.NewValidation("required fields are missing", missingQuestionFields(&req)...))
		return
	}
	quizID, err := primitive.ObjectIDFromHex(req.QuizID)
	if err != nil {
		writeError(c, apperr.NewValidation("invalid question", "quizId"))
		return
	}
	question := &models.Question{
		QuizID:        quizID,
		QuestionText:  req.QuestionText,
		Options:       req.Options,
		CorrectAnswer: *req.CorrectAnswer,
	}
	if err := h.Service.Create(c.Request.Context(), question); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	if req.CorrectAnswer == nil {
		writeError(c, apperr.NewValidation("required fields are missing", "correctAnswer"))
		return
	}
	question := &models.Question{
		QuestionText:  req.QuestionText,
		Options:       req.Options,
		CorrectAnswer: *req.CorrectAnswer,
	}
	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), question)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}

func missingQuestionFields(req *questionRequest) []string {
	var missing []string
	if req.QuizID == "" {
		missing = append(missing, "quizId")
	}
	if req.QuestionText == "" {
		missing = append(missing, "questionText")
	}
	if len(req.Options) == 0 {
		missing = append(missing, "options")
	}
	if req.CorrectAnswer == nil {
		missing = append(missing, "correctAnswer")
	}
	return missing
}
