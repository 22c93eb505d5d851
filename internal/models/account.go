package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type Account struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	LoginID      string    `gorm:"uniqueIndex;size:255;not null" json:"loginId"`
	EmployeeCode string    `gorm:"uniqueIndex;size:64;not null" json:"employeeId"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:20;not null;default:employee" json:"role"`
	Verified     bool      `gorm:"not null;default:false" json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
