package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHalfDay = "Half-day"
	AttendanceLeave   = "Leave"
)

// DayLayout is the calendar-date form stored in Attendance.Day.
const DayLayout = "2006-01-02"

type Attendance struct {
	ID           uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	AccountID    uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:idx_attendance_account_day" json:"accountId"`
	Day          string     `gorm:"size:10;not null;uniqueIndex:idx_attendance_account_day;index" json:"date"`
	CheckIn      *time.Time `json:"checkIn"`
	CheckOut     *time.Time `json:"checkOut"`
	Status       string     `gorm:"size:20;not null;default:Present" json:"status"`
	WorkingHours *float64   `gorm:"type:decimal(5,2)" json:"workingHours"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
