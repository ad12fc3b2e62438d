package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string       `json:"message"`
	Code    string       `json:"code,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// MessageBody is the JSON shape of responses that only carry a message.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes data as the response body. Entities and lists are sent bare,
// without an envelope, so storefront clients can consume them directly.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message writes a {"message": ...} response.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Error writes an error response with provided API error code and message.
func Error(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, ErrorBody{
		Message: message,
		Code:    errCode,
	})
}

// ValidationFailed writes a 400 response listing the field-level problems.
func ValidationFailed(c *gin.Context, message string, fields []FieldError) {
	c.JSON(400, ErrorBody{
		Message: message,
		Code:    ErrValidation.Error(),
		Errors:  fields,
	})
}

// RequestID returns the id assigned by the logging middleware, if any.
func RequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
