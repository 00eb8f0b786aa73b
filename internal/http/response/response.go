// Package response shapes the uniform API envelope: every payload carries a
// success flag plus either data fields or a single error message.
package response

import (
	"github.com/gin-gonic/gin"

	"github.com/civiclens/civiclens-backend/internal/pkg/apperr"
)

// OK writes {"success":true} merged with the given fields.
func OK(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes {"success":false,"error":msg} with an explicit status.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// Error maps an apperr kind to its HTTP status and public message.
func Error(c *gin.Context, err error) {
	Fail(c, apperr.HTTPStatus(err), apperr.PublicMessage(err))
}
