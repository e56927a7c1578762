package handlers

import (
	"net/http"

	"quizhub-service/internal/models"
	"quizhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.ResultService
	Stats   *service.StatsService
}

func NewResultHandler(s *service.ResultService, stats *service.StatsService) *ResultHandler {
	return &ResultHandler{Service: s, Stats: stats}
}

// SubmitResult is the public recorder endpoint. The confirmation echoes the
// authoritative server-side numbers, not whatever the client claimed.
func (h *ResultHandler) SubmitResult(c *gin.Context) {
	var sub models.ResultSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		resultSubmissions.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	confirmation, err := h.Service.Submit(c.Request.Context(), &sub, c.ClientIP())
	if err != nil {
		resultSubmissions.WithLabelValues("rejected").Inc()
		writeError(c, err)
		return
	}
	resultSubmissions.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Result saved successfully",
		"result":  confirmation,
	})
}

func (h *ResultHandler) ListResults(c *gin.Context) {
	opts := service.ListOptions{
		QuizID: c.Query("quizId"),
		SortBy: c.DefaultQuery("sortBy", "completedAt"),
		Order:  c.DefaultQuery("order", "desc"),
	}
	results, err := h.Service.List(c.Request.Context(), opts)
	if err != nil {
		writeError(c, err)
		return
	}
	if results == nil {
		results = []models.Result{}
	}
	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) ListResultsByQuiz(c *gin.Context) {
	results, err := h.Service.List(c.Request.Context(), service.ListOptions{
		QuizID: c.Param("quizId"),
		SortBy: "completedAt",
		Order:  "desc",
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if results == nil {
		results = []models.Result{}
	}
	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) QuizStats(c *gin.Context) {
	stats, err := h.Stats.QuizStats(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
