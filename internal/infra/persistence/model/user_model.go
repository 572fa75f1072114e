// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The unique index on username is what actually enforces uniqueness under
// concurrent registration; application-level checks are only a fast path.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string     `gorm:"type:varchar(30);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Email        string     `gorm:"type:varchar(254);not null"`
	Phone        string     `gorm:"type:varchar(16)"`
	DOB          *time.Time `gorm:"column:dob;type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
