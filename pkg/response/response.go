// Package response defines the JSON wire format shared by all handlers.
// Success responses are the bare resource; failures use the
// {"error":{"code","message"}} envelope.
package response

import (
	"github.com/gin-gonic/gin"
)

// Code is a stable machine-readable error code.
type Code string

const (
	CodeValidationError    Code = "VALIDATION_ERROR"
	CodeUserExists         Code = "USER_EXISTS"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeNoAuth             Code = "NO_AUTH"
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodeBadRequest         Code = "BAD_REQUEST"
	CodeRateLimited        Code = "RATE_LIMITED"
	CodeInternalError      Code = "INTERNAL_ERROR"
)

// ErrorDetail is the inner error object.
type ErrorDetail struct {
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// ErrorBody is the failure envelope.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// Fail writes the failure envelope with the given status.
func Fail(c *gin.Context, status int, code Code, message string) {
	c.JSON(status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}

// FailDetails writes the failure envelope with field-level details
// (validation errors).
func FailDetails(c *gin.Context, status int, code Code, message string, details any) {
	c.JSON(status, ErrorBody{Error: ErrorDetail{Code: code, Message: message, Details: details}})
}

// AbortFail writes the failure envelope and aborts the handler chain.
// Used by middleware.
func AbortFail(c *gin.Context, status int, code Code, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}
