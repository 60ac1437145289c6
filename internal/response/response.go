package response

import (
	"net/http"
	"time"

	"carlookup/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// Meta carries the per-request correlation data echoed on every response.
type Meta struct {
	RequestID string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorDetailInfo is the innermost error payload.
type ErrorDetailInfo struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorDetails describes a failed request.
type ErrorDetails struct {
	Code    int               `json:"code"`
	Type    string            `json:"type"`
	Details []ErrorDetailInfo `json:"details"`
}

// APIResponse is the uniform envelope wrapping every response body.
type APIResponse struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	Data       any           `json:"data,omitempty"`
	Pagination *PageInfo     `json:"pagination,omitempty"`
	Meta       Meta          `json:"meta"`
	Error      *ErrorDetails `json:"error,omitempty"`
}

// PageInfo describes the current page and links to its neighbors.
type PageInfo struct {
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	TotalItems  int64   `json:"totalItems"`
	Limit       int     `json:"limit"`
	NextPage    *string `json:"nextPage,omitempty"`
	PrevPage    *string `json:"prevPage,omitempty"`
}

// RequestIDKey is the gin context key holding the correlation id.
const RequestIDKey = "request_id"

func newMeta(c *gin.Context) Meta {
	return Meta{
		RequestID: c.GetString(RequestIDKey),
		Timestamp: time.Now().UTC(),
	}
}

// OK writes a success envelope.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    newMeta(c),
	})
}

// Paged writes a success envelope with pagination info.
func Paged(c *gin.Context, message string, data any, page *PageInfo) {
	c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: page,
		Meta:       newMeta(c),
	})
}

// Fail writes an error envelope.
func Fail(c *gin.Context, status int, message, errType string, details []ErrorDetailInfo) {
	c.JSON(status, APIResponse{
		Success: false,
		Message: message,
		Meta:    newMeta(c),
		Error: &ErrorDetails{
			Code:    status,
			Type:    errType,
			Details: details,
		},
	})
}

// FieldDetails converts validation field errors to the wire shape.
func FieldDetails(fields []apperrors.FieldError) []ErrorDetailInfo {
	details := make([]ErrorDetailInfo, 0, len(fields))
	for _, f := range fields {
		details = append(details, ErrorDetailInfo{Field: f.Field, Message: f.Message})
	}
	return details
}
