package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"carlookup/internal/apperrors"
	"carlookup/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newErrorMapperRouter(isProduction bool, failWith error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(ErrorMapper(zap.NewNop(), isProduction))
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(failWith)
	})
	return router
}

func doRequest(t *testing.T, router *gin.Engine) (*httptest.ResponseRecorder, response.APIResponse) {
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestErrorMapper_ValidationError(t *testing.T) {
	router := newErrorMapperRouter(false, apperrors.NewValidation(
		apperrors.FieldError{Field: "name", Message: "Name is required"},
		apperrors.FieldError{Field: "countryOfOrigin", Message: "Country of origin is required"},
	))

	w, body := doRequest(t, router)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, http.StatusBadRequest, body.Error.Code)
	assert.Equal(t, "ValidationError", body.Error.Type)
	require.Len(t, body.Error.Details, 2)
	assert.Equal(t, "name", body.Error.Details[0].Field)
}

func TestErrorMapper_NotFoundError(t *testing.T) {
	id := uuid.New()
	router := newErrorMapperRouter(false, apperrors.NewNotFound("CarMake", id))

	w, body := doRequest(t, router)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NotFoundError", body.Error.Type)
	require.Len(t, body.Error.Details, 1)
	assert.Contains(t, body.Error.Details[0].Message, id.String())
}

func TestErrorMapper_ConflictError(t *testing.T) {
	router := newErrorMapperRouter(false, apperrors.NewConflict("A car make with the name '%s' already exists.", "Toyota"))

	w, body := doRequest(t, router)

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ConflictError", body.Error.Type)
	assert.Equal(t, "A car make with the name 'Toyota' already exists.", body.Error.Details[0].Message)
}

func TestErrorMapper_UnauthorizedError(t *testing.T) {
	router := newErrorMapperRouter(false, apperrors.NewUnauthorized("Invalid credentials"))

	w, body := doRequest(t, router)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UnauthorizedError", body.Error.Type)
}

func TestErrorMapper_ForbiddenError(t *testing.T) {
	router := newErrorMapperRouter(false, apperrors.NewForbidden("Insufficient role for this operation"))

	w, body := doRequest(t, router)

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ForbiddenError", body.Error.Type)
}

func TestErrorMapper_UnknownErrorIs500(t *testing.T) {
	router := newErrorMapperRouter(false, errors.New("database exploded"))

	w, body := doRequest(t, router)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "InternalServerError", body.Error.Type)
	assert.Contains(t, body.Error.Details[0].Message, "database exploded",
		"Development responses include the cause")
}

func TestErrorMapper_ProductionHidesInternalDetails(t *testing.T) {
	router := newErrorMapperRouter(true, errors.New("database exploded"))

	w, body := doRequest(t, router)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.NotContains(t, body.Error.Details[0].Message, "database exploded",
		"Production responses must not leak internals")
}

func TestErrorMapper_WrappedErrorStillMatches(t *testing.T) {
	wrapped := errors.Join(errors.New("outer context"), apperrors.NewConflict("duplicate"))
	router := newErrorMapperRouter(false, wrapped)

	w, body := doRequest(t, router)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ConflictError", body.Error.Type)
}

func TestErrorMapper_NoErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(ErrorMapper(zap.NewNop(), false))
	router.GET("/ok", func(c *gin.Context) {
		response.OK(c, http.StatusOK, "fine", gin.H{"hello": "world"})
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestErrorMapper_EnvelopeCarriesRequestID(t *testing.T) {
	router := newErrorMapperRouter(false, apperrors.NewUnauthorized("nope"))

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "req-abc-123", body.Meta.RequestID, "Caller-supplied correlation id is echoed")
	assert.Equal(t, "req-abc-123", w.Header().Get(RequestIDHeader))
}
