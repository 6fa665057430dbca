package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"smartstay-gateway/internal/domain/assistant"
	"smartstay-gateway/internal/infra"
	"smartstay-gateway/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a use case error onto the response. msg names the failed
// operation; validation and configuration errors use their own message.
func Abort(c *gin.Context, err error, msg string) {
	status, message, detail := Classify(err, msg)
	AbortWithError(c, status, err, message, detail)
}

// Classify returns status, message and detail for err.
//
//	validation    -> 400
//	configuration -> 500
//	timeout       -> 504
//	model failure -> model status, or 500
//	vendor error  -> vendor status, or 502 when it is not an error status
func Classify(err error, msg string) (int, string, any) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error(), nil
	case errors.Is(err, errs.ErrConfiguration):
		return http.StatusInternalServerError, err.Error(), nil
	case errors.Is(err, errs.ErrTimeout):
		return http.StatusGatewayTimeout, msg, "upstream request timed out"
	}

	var gen *assistant.GenerationError
	if errors.As(err, &gen) {
		status := gen.Status
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusInternalServerError
		}
		detail := gen.Detail
		if detail == nil {
			detail = gen.Message
		}
		return status, msg, detail
	}

	if up, ok := infra.AsUpstream(err); ok {
		status := up.Status
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusBadGateway
		}
		return status, msg, bodyDetail(up.Body, err)
	}

	return http.StatusInternalServerError, msg, nil
}

// bodyDetail forwards a JSON body as-is and anything else as a string.
func bodyDetail(body []byte, err error) any {
	if len(body) == 0 {
		return err.Error()
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
