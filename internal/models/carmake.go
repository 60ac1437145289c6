package models

import (
	"time"

	"github.com/google/uuid"
)

// CarMake is a car manufacturer/brand.
type CarMake struct {
	MakeID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"makeId"`
	Name            string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CountryOfOrigin string    `gorm:"type:varchar(100);not null" json:"countryOfOrigin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Owned models. Deletion of a make is blocked at the manager level while
	// any model references it; the FK is not relied on for business rules.
	Models []CarModel `gorm:"foreignKey:MakeID" json:"-"`
}
