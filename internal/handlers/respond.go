package handlers

import (
	"errors"
	"log"
	"net/http"

	"quizhub-service/internal/apperr"

	"github.com/gin-gonic/gin"
)

// writeError maps the error taxonomy onto HTTP responses with a stable code
// string. Storage failures are logged and never exposed verbatim.
func writeError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		c.JSON(ve.Status(), gin.H{"error": ve.Message, "code": ve.Code(), "fields": ve.Fields})
		return
	}
	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(nf.Status(), gin.H{"error": nf.Error(), "code": nf.Code()})
		return
	}
	var ae *apperr.AuthError
	if errors.As(err, &ae) {
		c.JSON(ae.Status(), gin.H{"error": ae.Error(), "code": ae.Code()})
		return
	}
	var se *apperr.StorageError
	if errors.As(err, &se) {
		log.Printf("storage error: %v", se)
		c.JSON(se.Status(), gin.H{"error": "internal server error", "code": se.Code()})
		return
	}
	log.Printf("unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "INTERNAL_ERROR"})
}
