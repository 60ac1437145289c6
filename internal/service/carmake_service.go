package service

import (
	"context"
	"strconv"
	"strings"

	"carlookup/internal/apperrors"
	"carlookup/internal/dto"
	"carlookup/internal/models"
	"carlookup/internal/repository"
	"carlookup/internal/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnitOfWorkFactory builds a fresh unit of work for one request.
type UnitOfWorkFactory func() *repository.UnitOfWork

const maxNameFilterLength = 50

type CarMakeService struct {
	newUOW     UnitOfWorkFactory
	pagination *PaginationService
	log        *zap.Logger
}

func NewCarMakeService(newUOW UnitOfWorkFactory, pagination *PaginationService, log *zap.Logger) *CarMakeService {
	return &CarMakeService{
		newUOW:     newUOW,
		pagination: pagination,
		log:        log,
	}
}

// List returns one page of car makes with pagination links.
func (s *CarMakeService) List(ctx context.Context, query PageQuery) ([]dto.CarMakeDTO, *response.PageInfo, error) {
	s.log.Debug("Listing car makes",
		zap.Int("page", query.Page),
		zap.Int("limit", query.Limit),
		zap.String("name_contains", query.NameContains),
	)

	if err := validateNameFilter(query.NameContains); err != nil {
		return nil, nil, err
	}

	clamped := s.pagination.Clamp(query)

	uow := s.newUOW()
	defer uow.Release()

	items, totalCount, err := uow.Makes().List(ctx, clamped.Page, clamped.Limit, clamped.NameContains)
	if err != nil {
		s.log.Error("Failed to list car makes", zap.Error(err))
		return nil, nil, err
	}

	extra := map[string]string{}
	if strings.TrimSpace(clamped.NameContains) != "" {
		extra["nameContains"] = clamped.NameContains
	}

	pageInfo := s.pagination.BuildPageInfo(clamped.Page, clamped.Limit, totalCount, "/api/v1/carmakes", extra)

	return dto.FromCarMakes(items), pageInfo, nil
}

// GetByID returns a single car make.
func (s *CarMakeService) GetByID(ctx context.Context, makeID uuid.UUID) (dto.CarMakeDTO, error) {
	uow := s.newUOW()
	defer uow.Release()

	carMake, err := uow.Makes().GetByID(ctx, makeID)
	if err != nil {
		return dto.CarMakeDTO{}, err
	}
	if carMake == nil {
		return dto.CarMakeDTO{}, apperrors.NewNotFound("CarMake", makeID)
	}

	return dto.FromCarMake(carMake), nil
}

// ListModels returns one page of car models owned by a make.
func (s *CarMakeService) ListModels(ctx context.Context, makeID uuid.UUID, query PageQuery) ([]dto.CarModelDTO, *response.PageInfo, error) {
	s.log.Debug("Listing car models for car make",
		zap.String("make_id", makeID.String()),
		zap.Int("page", query.Page),
		zap.Int("limit", query.Limit),
	)

	if err := validateNameFilter(query.NameContains); err != nil {
		return nil, nil, err
	}
	if err := validateYearFilter(query.Year); err != nil {
		return nil, nil, err
	}

	uow := s.newUOW()
	defer uow.Release()

	carMake, err := uow.Makes().GetByID(ctx, makeID)
	if err != nil {
		return nil, nil, err
	}
	if carMake == nil {
		return nil, nil, apperrors.NewNotFound("CarMake", makeID)
	}

	clamped := s.pagination.Clamp(query)

	items, totalCount, err := uow.Models().List(ctx, makeID, clamped.Page, clamped.Limit, clamped.NameContains, clamped.Year)
	if err != nil {
		s.log.Error("Failed to list car models", zap.Error(err))
		return nil, nil, err
	}

	extra := map[string]string{}
	if strings.TrimSpace(clamped.NameContains) != "" {
		extra["nameContains"] = clamped.NameContains
	}
	if clamped.Year != nil {
		extra["year"] = strconv.Itoa(*clamped.Year)
	}

	basePath := "/api/v1/carmakes/" + makeID.String() + "/carmodels"
	pageInfo := s.pagination.BuildPageInfo(clamped.Page, clamped.Limit, totalCount, basePath, extra)

	return dto.FromCarModels(items), pageInfo, nil
}

// Create validates the request, checks name uniqueness and persists the
// new make inside one transaction.
func (s *CarMakeService) Create(ctx context.Context, req dto.CarMakeRequest) (dto.CarMakeDTO, error) {
	s.log.Info("Creating car make", zap.String("name", req.Name))

	uow := s.newUOW()
	defer uow.Release()

	var created dto.CarMakeDTO
	err := uow.ExecuteInTransaction(ctx, func(ctx context.Context) error {
		if err := validateCarMakeRequest(req); err != nil {
			return err
		}

		nameExists, err := uow.Makes().ExistsByName(ctx, req.Name, nil)
		if err != nil {
			return err
		}
		if nameExists {
			return apperrors.NewConflict("A car make with the name '%s' already exists.", req.Name)
		}

		carMake := &models.CarMake{
			MakeID:          uuid.New(),
			Name:            req.Name,
			CountryOfOrigin: req.CountryOfOrigin,
		}

		if err := uow.Makes().Create(ctx, carMake); err != nil {
			return err
		}

		created = dto.FromCarMake(carMake)
		s.log.Info("Created car make",
			zap.String("make_id", carMake.MakeID.String()),
			zap.String("name", carMake.Name),
		)
		return nil
	})
	if err != nil {
		return dto.CarMakeDTO{}, err
	}

	return created, nil
}

// Update validates, loads the existing make, checks name uniqueness
// excluding itself and persists the change inside one transaction.
func (s *CarMakeService) Update(ctx context.Context, makeID uuid.UUID, req dto.CarMakeRequest) (dto.CarMakeDTO, error) {
	s.log.Info("Updating car make", zap.String("make_id", makeID.String()))

	uow := s.newUOW()
	defer uow.Release()

	var updated dto.CarMakeDTO
	err := uow.ExecuteInTransaction(ctx, func(ctx context.Context) error {
		if err := validateCarMakeRequest(req); err != nil {
			return err
		}

		existing, err := uow.Makes().GetByID(ctx, makeID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperrors.NewNotFound("CarMake", makeID)
		}

		nameExists, err := uow.Makes().ExistsByName(ctx, req.Name, &makeID)
		if err != nil {
			return err
		}
		if nameExists {
			return apperrors.NewConflict("A car make with the name '%s' already exists.", req.Name)
		}

		existing.Name = req.Name
		existing.CountryOfOrigin = req.CountryOfOrigin

		if err := uow.Makes().Update(ctx, existing); err != nil {
			return err
		}

		updated = dto.FromCarMake(existing)
		s.log.Info("Updated car make",
			zap.String("make_id", makeID.String()),
			zap.String("name", existing.Name),
		)
		return nil
	})
	if err != nil {
		return dto.CarMakeDTO{}, err
	}

	return updated, nil
}

// Delete removes a make after verifying no model references it.
func (s *CarMakeService) Delete(ctx context.Context, makeID uuid.UUID) error {
	s.log.Info("Deleting car make", zap.String("make_id", makeID.String()))

	uow := s.newUOW()
	defer uow.Release()

	return uow.ExecuteInTransaction(ctx, func(ctx context.Context) error {
		carMake, err := uow.Makes().GetByID(ctx, makeID)
		if err != nil {
			return err
		}
		if carMake == nil {
			return apperrors.NewNotFound("CarMake", makeID)
		}

		hasModels, err := uow.Models().HasModelsForMake(ctx, makeID)
		if err != nil {
			return err
		}
		if hasModels {
			return apperrors.NewConflict("Cannot delete car make because it has associated car models. Delete the car models first.")
		}

		if err := uow.Makes().Delete(ctx, makeID); err != nil {
			return err
		}

		s.log.Info("Deleted car make", zap.String("make_id", makeID.String()))
		return nil
	})
}

func validateCarMakeRequest(req dto.CarMakeRequest) error {
	var fields []apperrors.FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "Name is required"})
	} else if len(name) < 2 || len(name) > 100 {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "Name must be between 2 and 100 characters"})
	}

	country := strings.TrimSpace(req.CountryOfOrigin)
	if country == "" {
		fields = append(fields, apperrors.FieldError{Field: "countryOfOrigin", Message: "Country of origin is required"})
	} else if len(country) < 2 || len(country) > 100 {
		fields = append(fields, apperrors.FieldError{Field: "countryOfOrigin", Message: "Country of origin must be between 2 and 100 characters"})
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields...)
	}
	return nil
}

func validateNameFilter(nameContains string) error {
	if len(nameContains) > maxNameFilterLength {
		return apperrors.NewValidation(apperrors.FieldError{
			Field:   "nameContains",
			Message: "Name filter cannot be longer than 50 characters",
		})
	}
	return nil
}
