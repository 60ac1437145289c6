package service

import (
	"context"
	"strings"
	"time"

	"carlookup/internal/apperrors"
	"carlookup/internal/dto"
	"carlookup/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Model years start at 1885; next year's models are allowed.
const minModelYear = 1885

type CarModelService struct {
	newUOW UnitOfWorkFactory
	log    *zap.Logger
}

func NewCarModelService(newUOW UnitOfWorkFactory, log *zap.Logger) *CarModelService {
	return &CarModelService{newUOW: newUOW, log: log}
}

// GetByID returns a single car model.
func (s *CarModelService) GetByID(ctx context.Context, modelID uuid.UUID) (dto.CarModelDTO, error) {
	uow := s.newUOW()
	defer uow.Release()

	carModel, err := uow.Models().GetByID(ctx, modelID)
	if err != nil {
		return dto.CarModelDTO{}, err
	}
	if carModel == nil {
		return dto.CarModelDTO{}, apperrors.NewNotFound("CarModel", modelID)
	}

	return dto.FromCarModel(carModel), nil
}

// Create validates the request, verifies the owning make exists, checks
// the (make, name, year) triple and persists inside one transaction.
func (s *CarModelService) Create(ctx context.Context, req dto.CarModelRequest) (dto.CarModelDTO, error) {
	s.log.Info("Creating car model",
		zap.String("name", req.Name),
		zap.String("make_id", req.MakeID.String()),
	)

	uow := s.newUOW()
	defer uow.Release()

	var created dto.CarModelDTO
	err := uow.ExecuteInTransaction(ctx, func(ctx context.Context) error {
		if err := validateCarModelRequest(req); err != nil {
			return err
		}

		carMake, err := uow.Makes().GetByID(ctx, req.MakeID)
		if err != nil {
			return err
		}
		if carMake == nil {
			return apperrors.NewNotFound("CarMake", req.MakeID)
		}

		exists, err := uow.Models().ExistsByNameMakeAndYear(ctx, req.Name, req.MakeID, req.ModelYear, nil)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewConflict(
				"A car model with the name '%s' for year %d already exists for this car make.",
				req.Name, req.ModelYear)
		}

		carModel := &models.CarModel{
			ModelID:   uuid.New(),
			MakeID:    req.MakeID,
			Name:      req.Name,
			ModelYear: req.ModelYear,
		}

		if err := uow.Models().Create(ctx, carModel); err != nil {
			return err
		}

		created = dto.FromCarModel(carModel)
		s.log.Info("Created car model",
			zap.String("model_id", carModel.ModelID.String()),
			zap.String("name", carModel.Name),
		)
		return nil
	})
	if err != nil {
		return dto.CarModelDTO{}, err
	}

	return created, nil
}

// Update validates, loads the existing model, verifies a changed owning
// make, checks the uniqueness triple excluding itself and persists.
func (s *CarModelService) Update(ctx context.Context, modelID uuid.UUID, req dto.CarModelRequest) (dto.CarModelDTO, error) {
	s.log.Info("Updating car model", zap.String("model_id", modelID.String()))

	uow := s.newUOW()
	defer uow.Release()

	var updated dto.CarModelDTO
	err := uow.ExecuteInTransaction(ctx, func(ctx context.Context) error {
		if err := validateCarModelRequest(req); err != nil {
			return err
		}

		existing, err := uow.Models().GetByID(ctx, modelID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperrors.NewNotFound("CarModel", modelID)
		}

		if existing.MakeID != req.MakeID {
			carMake, err := uow.Makes().GetByID(ctx, req.MakeID)
			if err != nil {
				return err
			}
			if carMake == nil {
				return apperrors.NewNotFound("CarMake", req.MakeID)
			}
		}

		exists, err := uow.Models().ExistsByNameMakeAndYear(ctx, req.Name, req.MakeID, req.ModelYear, &modelID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewConflict(
				"A car model with the name '%s' for year %d already exists for this car make.",
				req.Name, req.ModelYear)
		}

		existing.MakeID = req.MakeID
		existing.Name = req.Name
		existing.ModelYear = req.ModelYear

		if err := uow.Models().Update(ctx, existing); err != nil {
			return err
		}

		updated = dto.FromCarModel(existing)
		s.log.Info("Updated car model",
			zap.String("model_id", modelID.String()),
			zap.String("name", existing.Name),
		)
		return nil
	})
	if err != nil {
		return dto.CarModelDTO{}, err
	}

	return updated, nil
}

// Delete removes a car model.
func (s *CarModelService) Delete(ctx context.Context, modelID uuid.UUID) error {
	s.log.Info("Deleting car model", zap.String("model_id", modelID.String()))

	uow := s.newUOW()
	defer uow.Release()

	return uow.ExecuteInTransaction(ctx, func(ctx context.Context) error {
		carModel, err := uow.Models().GetByID(ctx, modelID)
		if err != nil {
			return err
		}
		if carModel == nil {
			return apperrors.NewNotFound("CarModel", modelID)
		}

		if err := uow.Models().Delete(ctx, modelID); err != nil {
			return err
		}

		s.log.Info("Deleted car model", zap.String("model_id", modelID.String()))
		return nil
	})
}

func validateCarModelRequest(req dto.CarModelRequest) error {
	var fields []apperrors.FieldError

	if req.MakeID == uuid.Nil {
		fields = append(fields, apperrors.FieldError{Field: "makeId", Message: "Make ID is required"})
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "Name is required"})
	} else if len(name) > 120 {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "Name must be between 1 and 120 characters"})
	}

	maxYear := time.Now().UTC().Year() + 1
	if req.ModelYear < minModelYear {
		fields = append(fields, apperrors.FieldError{Field: "modelYear", Message: "Model year must be 1885 or later"})
	} else if req.ModelYear > maxYear {
		fields = append(fields, apperrors.FieldError{Field: "modelYear", Message: "Model year cannot be later than next year"})
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields...)
	}
	return nil
}

func validateYearFilter(year *int) error {
	if year == nil {
		return nil
	}
	maxYear := time.Now().UTC().Year() + 1
	if *year < minModelYear || *year > maxYear {
		return apperrors.NewValidation(apperrors.FieldError{
			Field:   "year",
			Message: "Year must be between 1885 and next year",
		})
	}
	return nil
}
