package handlers

import (
	"net/http"

	"quizhub-service/internal/models"
	"quizhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service   *service.QuizService
	Questions *service.QuestionService
}

func NewQuizHandler(s *service.QuizService, questions *service.QuestionService) *QuizHandler {
	return &QuizHandler{Service: s, Questions: questions}
}

type quizRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"isActive"`
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Service.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// GetQuizQuestions serves the quiz-taking surface: the answer key is
// stripped before the questions leave the server.
func (h *QuizHandler) GetQuizQuestions(c *gin.Context) {
	questions, err := h.Questions.ListByQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	public := make([]models.PublicQuestion, 0, len(questions))
	for _, q := range questions {
		public = append(public, q.PublicView())
	}
	c.JSON(http.StatusOK, public)
}

// GetQuizQuestionsFull returns questions with the answer key. Admin only.
func (h *QuizHandler) GetQuizQuestionsFull(c *gin.Context) {
	questions, err := h.Questions.ListByQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, questions)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	quiz := &models.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := h.Service.Create(c.Request.Context(), quiz); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	quiz := &models.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), quiz)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}
