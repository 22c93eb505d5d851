package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/models"
)

type DashboardService struct {
	DB  *gorm.DB
	Now Clock
}

type DashboardStats struct {
	Employees       int64 `json:"employees"`
	TodayAttendance int64 `json:"todayAttendance"`
	PendingLeaves   int64 `json:"pendingLeaves"`
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

func (s *DashboardService) Stats(ctx context.Context, actor Actor) (DashboardStats, error) {
	var stats DashboardStats
	if err := actor.requireAdmin(); err != nil {
		return stats, err
	}

	db := s.DB.WithContext(ctx)
	if err := db.Model(&models.Account{}).Where("role = ?", models.RoleEmployee).Count(&stats.Employees).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.Attendance{}).Where("day = ?", dayKey(s.Now.now())).Count(&stats.TodayAttendance).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&models.LeaveRequest{}).Where("status = ?", models.LeavePending).Count(&stats.PendingLeaves).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
