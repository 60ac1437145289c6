package models

import (
	"time"

	"github.com/google/uuid"
)

// CarModel is a specific model under a make.
// (MakeID, Name, ModelYear) must be unique as a triple.
type CarModel struct {
	ModelID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"modelId"`
	MakeID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_car_models_make_name_year" json:"makeId"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_car_models_make_name_year" json:"name"`
	ModelYear int       `gorm:"not null;uniqueIndex:idx_car_models_make_name_year" json:"modelYear"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Make CarMake `gorm:"foreignKey:MakeID" json:"-"`
}
