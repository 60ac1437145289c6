package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names as issued in JWT role claims.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleReader = "reader"
)

type Role struct {
	RoleID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"roleId"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	UserRoles []UserRole `gorm:"foreignKey:RoleID" json:"-"`
}

// UserRole is the join entity between User and Role.
type UserRole struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	RoleID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"roleId"`
	AssignedAt time.Time `json:"assignedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Role Role `gorm:"foreignKey:RoleID" json:"-"`
}
