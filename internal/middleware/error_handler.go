package middleware

import (
	"errors"
	"net/http"

	"carlookup/internal/apperrors"
	"carlookup/internal/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// mapped is the status/body pair a handler produces for an error.
type mapped struct {
	Status  int
	Message string
	Type    string
	Details []response.ErrorDetailInfo
}

// ErrorHandler claims a specific error category and maps it to a response.
type ErrorHandler struct {
	CanHandle func(err error) bool
	Handle    func(err error) mapped
}

// handlerChain builds the ordered dispatch list. The catch-all handler is
// last and always matches.
func handlerChain(isProduction bool) []ErrorHandler {
	return []ErrorHandler{
		{
			CanHandle: func(err error) bool {
				var target *apperrors.ValidationError
				return errors.As(err, &target)
			},
			Handle: func(err error) mapped {
				var target *apperrors.ValidationError
				errors.As(err, &target)
				return mapped{
					Status:  http.StatusBadRequest,
					Message: "Validation failed",
					Type:    "ValidationError",
					Details: response.FieldDetails(target.Fields),
				}
			},
		},
		{
			CanHandle: func(err error) bool {
				var target *apperrors.NotFoundError
				return errors.As(err, &target)
			},
			Handle: func(err error) mapped {
				return mapped{
					Status:  http.StatusNotFound,
					Message: "Resource not found",
					Type:    "NotFoundError",
					Details: []response.ErrorDetailInfo{{Message: err.Error()}},
				}
			},
		},
		{
			CanHandle: func(err error) bool {
				var target *apperrors.ConflictError
				return errors.As(err, &target)
			},
			Handle: func(err error) mapped {
				return mapped{
					Status:  http.StatusConflict,
					Message: "Conflict occurred",
					Type:    "ConflictError",
					Details: []response.ErrorDetailInfo{{Message: err.Error()}},
				}
			},
		},
		{
			CanHandle: func(err error) bool {
				var target *apperrors.UnauthorizedError
				return errors.As(err, &target)
			},
			Handle: func(err error) mapped {
				return mapped{
					Status:  http.StatusUnauthorized,
					Message: "Unauthorized",
					Type:    "UnauthorizedError",
					Details: []response.ErrorDetailInfo{{Message: err.Error()}},
				}
			},
		},
		{
			CanHandle: func(err error) bool {
				var target *apperrors.ForbiddenError
				return errors.As(err, &target)
			},
			Handle: func(err error) mapped {
				return mapped{
					Status:  http.StatusForbidden,
					Message: "Forbidden",
					Type:    "ForbiddenError",
					Details: []response.ErrorDetailInfo{{Message: err.Error()}},
				}
			},
		},
		{
			CanHandle: func(err error) bool { return true },
			Handle: func(err error) mapped {
				message := "The server encountered an unexpected condition that prevented it from fulfilling the request"
				if !isProduction {
					message = "Internal server error: " + err.Error()
				}
				return mapped{
					Status:  http.StatusInternalServerError,
					Message: "An internal server error occurred",
					Type:    "InternalServerError",
					Details: []response.ErrorDetailInfo{{Message: message}},
				}
			},
		},
	}
}

// ErrorMapper catches errors recorded on the gin context and writes the
// structured error envelope. Errors are logged exactly once, here.
func ErrorMapper(log *zap.Logger, isProduction bool) gin.HandlerFunc {
	handlers := handlerChain(isProduction)

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// A partially streamed response cannot carry an error body.
		if c.Writer.Written() {
			log.Warn("Cannot write error response, response has already started",
				zap.String("request_id", c.GetString(response.RequestIDKey)),
				zap.Error(err),
			)
			return
		}

		for _, h := range handlers {
			if !h.CanHandle(err) {
				continue
			}
			m := h.Handle(err)

			if m.Status >= http.StatusInternalServerError {
				log.Error("Unhandled error while processing request",
					zap.String("request_id", c.GetString(response.RequestIDKey)),
					zap.String("path", c.FullPath()),
					zap.Error(err),
				)
			} else {
				log.Warn("Request failed",
					zap.String("request_id", c.GetString(response.RequestIDKey)),
					zap.String("path", c.FullPath()),
					zap.Int("status", m.Status),
					zap.Error(err),
				)
			}

			response.Fail(c, m.Status, m.Message, m.Type, m.Details)
			return
		}
	}
}
