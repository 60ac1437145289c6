package handler

import (
	"net/http"

	"carlookup/internal/apperrors"
	"carlookup/internal/dto"
	"carlookup/internal/response"
	"carlookup/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CarMakeHandler struct {
	makes *service.CarMakeService
	log   *zap.Logger
}

func NewCarMakeHandler(makes *service.CarMakeService, log *zap.Logger) *CarMakeHandler {
	return &CarMakeHandler{makes: makes, log: log}
}

// List handles GET /api/v1/carmakes
func (h *CarMakeHandler) List(c *gin.Context) {
	query, err := parsePageQuery(c, false)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items, pageInfo, err := h.makes.List(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Paged(c, "Successful", items, pageInfo)
}

// GetByID handles GET /api/v1/carmakes/:carMakeId
func (h *CarMakeHandler) GetByID(c *gin.Context) {
	makeID, err := parseUUIDParam(c, "carMakeId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.makes.GetByID(c.Request.Context(), makeID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Car make retrieved successfully", result)
}

// ListModels handles GET /api/v1/carmakes/:carMakeId/carmodels
func (h *CarMakeHandler) ListModels(c *gin.Context) {
	makeID, err := parseUUIDParam(c, "carMakeId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	query, err := parsePageQuery(c, true)
	if err != nil {
		_ = c.Error(err)
		return
	}

	items, pageInfo, err := h.makes.ListModels(c.Request.Context(), makeID, query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Paged(c, "Successful", items, pageInfo)
}

// Create handles POST /api/v1/carmakes
func (h *CarMakeHandler) Create(c *gin.Context) {
	var req dto.CarMakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidation(apperrors.FieldError{
			Field:   "body",
			Message: "Invalid request body",
		}))
		return
	}

	h.log.Info("Create car make request", zap.String("name", req.Name))

	result, err := h.makes.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", "/api/v1/carmakes/"+result.MakeID.String())
	response.OK(c, http.StatusCreated, "Car make created successfully", result)
}

// Update handles PUT /api/v1/carmakes/:carMakeId
func (h *CarMakeHandler) Update(c *gin.Context) {
	makeID, err := parseUUIDParam(c, "carMakeId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.CarMakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidation(apperrors.FieldError{
			Field:   "body",
			Message: "Invalid request body",
		}))
		return
	}

	result, err := h.makes.Update(c.Request.Context(), makeID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Car make updated successfully", result)
}

// Delete handles DELETE /api/v1/carmakes/:carMakeId
func (h *CarMakeHandler) Delete(c *gin.Context) {
	makeID, err := parseUUIDParam(c, "carMakeId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.makes.Delete(c.Request.Context(), makeID); err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Car make deleted successfully", nil)
}
