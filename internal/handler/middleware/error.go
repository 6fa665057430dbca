package middleware

import (
	"log/slog"
	"net/http"

	"smartstay-gateway/internal/handler/httperr"
	"smartstay-gateway/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 8

// ErrorHandler writes the last public error when a handler aborted without a
// body, and logs the cause of every server-side failure.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && c.Writer.Status() >= http.StatusInternalServerError {
			last := c.Errors.Last()
			slog.Error("Request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("path", c.Request.URL.Path),
				slog.Int("status", c.Writer.Status()),
				slog.String("error", last.Err.Error()),
				slog.Any("stack", errs.ExtractStackLines(last.Err, stackLinesLogged)),
			)
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("Recovered from panic",
					slog.Any("error", err),
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
