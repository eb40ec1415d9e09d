package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ishan007-bot/Food-Delivery-Backend/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Page is the envelope every paged listing uses.
type Page struct {
	Content       any   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}

func Paged(c *gin.Context, content any, total int64, page, size int) {
	c.JSON(http.StatusOK, Page{Content: content, TotalElements: total, Page: page, Size: size})
}

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error renders {"error": msg, "status": code} with the status for the error's kind.
func Error(c *gin.Context, err error) {
	status := statusOf(err)
	c.JSON(status, gin.H{"error": err.Error(), "status": status})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "status": http.StatusBadRequest})
}
