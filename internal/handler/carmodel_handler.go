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

type CarModelHandler struct {
	models *service.CarModelService
	log    *zap.Logger
}

func NewCarModelHandler(models *service.CarModelService, log *zap.Logger) *CarModelHandler {
	return &CarModelHandler{models: models, log: log}
}

// GetByID handles GET /api/v1/carmodels/:carModelId
func (h *CarModelHandler) GetByID(c *gin.Context) {
	modelID, err := parseUUIDParam(c, "carModelId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.models.GetByID(c.Request.Context(), modelID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Car model retrieved successfully", result)
}

// Create handles POST /api/v1/carmodels
func (h *CarModelHandler) Create(c *gin.Context) {
	var req dto.CarModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidation(apperrors.FieldError{
			Field:   "body",
			Message: "Invalid request body",
		}))
		return
	}

	h.log.Info("Create car model request",
		zap.String("name", req.Name),
		zap.String("make_id", req.MakeID.String()),
	)

	result, err := h.models.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", "/api/v1/carmodels/"+result.ModelID.String())
	response.OK(c, http.StatusCreated, "Car model created successfully", result)
}

// Update handles PUT /api/v1/carmodels/:carModelId
func (h *CarModelHandler) Update(c *gin.Context) {
	modelID, err := parseUUIDParam(c, "carModelId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.CarModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewValidation(apperrors.FieldError{
			Field:   "body",
			Message: "Invalid request body",
		}))
		return
	}

	result, err := h.models.Update(c.Request.Context(), modelID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Car model updated successfully", result)
}

// Delete handles DELETE /api/v1/carmodels/:carModelId
func (h *CarModelHandler) Delete(c *gin.Context) {
	modelID, err := parseUUIDParam(c, "carModelId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.models.Delete(c.Request.Context(), modelID); err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Car model deleted successfully", nil)
}
