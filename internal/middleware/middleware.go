// Package middleware provides the gin middleware chain for the standalone
// server surface.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/pkg/lambda"
)

// CORS middleware for handling Cross-Origin Resource Sharing. The header
// set matches what the Lambda surface sends, so browser clients see the
// same contract on both deployments.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		for key, value := range lambda.CORSHeaders() {
			c.Header(key, value)
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// ErrorHandler middleware for centralized error handling. Handlers attach
// errors with c.Error and write their own responses; this logs them with
// the request context and answers 500 only when nothing was written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			logrus.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"error":      err.Error(),
			}).Error("Request error")

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}
	}
}
