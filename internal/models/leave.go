package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

const (
	LeavePaid   = "Paid"
	LeaveSick   = "Sick"
	LeaveUnpaid = "Unpaid"
)

type LeaveRequest struct {
	ID             uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	AccountID      uuid.UUID  `gorm:"type:char(36);index;not null" json:"accountId"`
	LeaveType      string     `gorm:"size:20;not null" json:"leaveType"`
	StartDate      time.Time  `gorm:"not null" json:"startDate"`
	EndDate        time.Time  `gorm:"not null" json:"endDate"`
	Remarks        string     `gorm:"size:500" json:"remarks"`
	Status         string     `gorm:"size:20;index;not null;default:Pending" json:"status"`
	ReviewerID     *uuid.UUID `gorm:"type:char(36)" json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time `json:"reviewDate,omitempty"`
	ReviewComments string     `gorm:"size:500" json:"reviewComments,omitempty"`
	CreatedAt      time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (r *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func ValidLeaveType(value string) bool {
	switch value {
	case LeavePaid, LeaveSick, LeaveUnpaid:
		return true
	}
	return false
}
