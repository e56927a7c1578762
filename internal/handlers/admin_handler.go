package handlers

import (
	"net/http"

	"quizhub-service/internal/apperr"
	"quizhub-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Auth  *service.AuthService
	Stats *service.StatsService
}

func NewAdminHandler(auth *service.AuthService, stats *service.StatsService) *AdminHandler {
	return &AdminHandler{Auth: auth, Stats: stats}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	token, admin, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		writeError(c, err)
		return
	}
	loginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin": gin.H{
			"id":        admin.ID.Hex(),
			"username":  admin.Username,
			"lastLogin": admin.LastLogin,
		},
	})
}

// Verify resolves the already-authenticated claims to the stored principal.
func (h *AdminHandler) Verify(c *gin.Context) {
	claims := ClaimsFrom(c)
	if claims == nil {
		writeError(c, apperr.NewAuth("invalid credentials"))
		return
	}
	admin, err := h.Auth.Principal(c.Request.Context(), claims)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	summary, err := h.Stats.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
