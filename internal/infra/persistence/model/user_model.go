// Package model contains the GORM persistence models.
// They mirror the database schema and are mapped to pure domain entities at the repository boundary.
package model

import (
	"time"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName overrides the default GORM table name.
func (UserModel) TableName() string {
	return "users"
}
