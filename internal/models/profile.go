package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the descriptive, freely editable side of an account.
type Profile struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	AccountID   uuid.UUID `gorm:"type:char(36);uniqueIndex;not null" json:"accountId"`
	DisplayName string    `gorm:"size:255;not null" json:"fullName"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Address     string    `gorm:"size:500" json:"address"`
	JobTitle    string    `gorm:"size:120" json:"jobTitle"`
	Department  string    `gorm:"size:120" json:"department"`
	PictureURL  string    `gorm:"size:2048" json:"profilePicture,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
