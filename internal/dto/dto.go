package dto

import (
	"time"

	"carlookup/internal/models"

	"github.com/google/uuid"
)

// CarMakeRequest is the body of create/update make calls.
type CarMakeRequest struct {
	Name            string `json:"name"`
	CountryOfOrigin string `json:"countryOfOrigin"`
}

// CarModelRequest is the body of create/update model calls.
type CarModelRequest struct {
	MakeID    uuid.UUID `json:"makeId"`
	Name      string    `json:"name"`
	ModelYear int       `json:"modelYear"`
}

// LoginRequest carries the credentials for token issuance.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the payload of a successful authentication.
type TokenResponse struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ExpiresIn   int      `json:"expiresIn"`
	Roles       []string `json:"roles"`
}

type CarMakeDTO struct {
	MakeID          uuid.UUID `json:"makeId"`
	Name            string    `json:"name"`
	CountryOfOrigin string    `json:"countryOfOrigin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CarModelDTO struct {
	ModelID   uuid.UUID `json:"modelId"`
	MakeID    uuid.UUID `json:"makeId"`
	Name      string    `json:"name"`
	ModelYear int       `json:"modelYear"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCarMake(m *models.CarMake) CarMakeDTO {
	return CarMakeDTO{
		MakeID:          m.MakeID,
		Name:            m.Name,
		CountryOfOrigin: m.CountryOfOrigin,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromCarMakes(ms []models.CarMake) []CarMakeDTO {
	dtos := make([]CarMakeDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, FromCarMake(&ms[i]))
	}
	return dtos
}

func FromCarModel(m *models.CarModel) CarModelDTO {
	return CarModelDTO{
		ModelID:   m.ModelID,
		MakeID:    m.MakeID,
		Name:      m.Name,
		ModelYear: m.ModelYear,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromCarModels(ms []models.CarModel) []CarModelDTO {
	dtos := make([]CarModelDTO, 0, len(ms))
	for i := range ms {
		dtos = append(dtos, FromCarModel(&ms[i]))
	}
	return dtos
}
