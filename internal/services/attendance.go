package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/models"
	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

var (
	errAlreadyCheckedIn  = newError(KindConflict, "already checked in today")
	errNotCheckedIn      = newError(KindConflict, "no check-in record found for today")
	errAlreadyCheckedOut = newError(KindConflict, "already checked out today")
)

const attendanceOrder = "day desc, created_at desc"

// AttendanceService tracks one check-in/check-out record per account per
// calendar day.
type AttendanceService struct {
	DB  *gorm.DB
	Now Clock
}

// AttendanceView is a record annotated with its owner's display name.
type AttendanceView struct {
	models.Attendance
	EmployeeName string `json:"employeeName"`
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

func (s *AttendanceService) CheckIn(ctx context.Context, accountID uuid.UUID) (models.Attendance, error) {
	now := s.Now.now()
	day := dayKey(now)
	db := s.DB.WithContext(ctx)

	var existing models.Attendance
	err := db.Where("account_id = ? AND day = ?", accountID, day).First(&existing).Error
	if err == nil {
		return models.Attendance{}, errAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Attendance{}, err
	}

	record := models.Attendance{
		AccountID: accountID,
		Day:       day,
		CheckIn:   &now,
		Status:    models.AttendancePresent,
	}
	if err := db.Create(&record).Error; err != nil {
		// a concurrent check-in won the unique index
		if isDuplicateKey(err) {
			return models.Attendance{}, errAlreadyCheckedIn
		}
		return models.Attendance{}, err
	}
	return record, nil
}

func (s *AttendanceService) CheckOut(ctx context.Context, accountID uuid.UUID) (models.Attendance, error) {
	now := s.Now.now()
	db := s.DB.WithContext(ctx)

	var record models.Attendance
	err := db.Where("account_id = ? AND day = ?", accountID, dayKey(now)).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Attendance{}, errNotCheckedIn
	}
	if err != nil {
		return models.Attendance{}, err
	}
	if record.CheckIn == nil {
		return models.Attendance{}, errNotCheckedIn
	}
	if record.CheckOut != nil {
		return models.Attendance{}, errAlreadyCheckedOut
	}

	hours := WorkingHours(*record.CheckIn, now)
	result := db.Model(&models.Attendance{}).
		Where("id = ? AND check_out IS NULL", record.ID).
		Updates(map[string]interface{}{
			"check_out":     now,
			"working_hours": hours,
		})
	if result.Error != nil {
		return models.Attendance{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Attendance{}, errAlreadyCheckedOut
	}

	record.CheckOut = &now
	record.WorkingHours = &hours
	return record, nil
}

// WorkingHours is the span between check-in and check-out in hours, rounded
// to two decimals.
func WorkingHours(checkIn, checkOut time.Time) float64 {
	millis := decimal.NewFromInt(checkOut.Sub(checkIn).Milliseconds())
	return millis.Div(decimal.NewFromInt(3600000)).Round(2).InexactFloat64()
}

// Today returns the caller's record for the current day, or nil.
func (s *AttendanceService) Today(ctx context.Context, accountID uuid.UUID) (*models.Attendance, error) {
	var record models.Attendance
	err := s.DB.WithContext(ctx).
		Where("account_id = ? AND day = ?", accountID, dayKey(s.Now.now())).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *AttendanceService) ListMine(ctx context.Context, accountID uuid.UUID, p utils.PageParams) (Page[models.Attendance], error) {
	query := s.DB.WithContext(ctx).Model(&models.Attendance{}).Where("account_id = ?", accountID)
	return paginate[models.Attendance](query, p, attendanceOrder)
}

func (s *AttendanceService) ListAll(ctx context.Context, actor Actor, p utils.PageParams) (Page[AttendanceView], error) {
	if err := actor.requireAdmin(); err != nil {
		return Page[AttendanceView]{}, err
	}
	query := s.DB.WithContext(ctx).Model(&models.Attendance{})
	return s.annotated(ctx, query, p)
}

func (s *AttendanceService) ListForAccount(ctx context.Context, actor Actor, accountID uuid.UUID, p utils.PageParams) (Page[AttendanceView], error) {
	if err := actor.requireAdmin(); err != nil {
		return Page[AttendanceView]{}, err
	}
	query := s.DB.WithContext(ctx).Model(&models.Attendance{}).Where("account_id = ?", accountID)
	return s.annotated(ctx, query, p)
}

func (s *AttendanceService) annotated(ctx context.Context, query *gorm.DB, p utils.PageParams) (Page[AttendanceView], error) {
	records, err := paginate[models.Attendance](query, p, attendanceOrder)
	if err != nil {
		return Page[AttendanceView]{}, err
	}

	ids := make([]uuid.UUID, 0, len(records.Data))
	for _, record := range records.Data {
		ids = append(ids, record.AccountID)
	}
	names, err := displayNames(s.DB.WithContext(ctx), ids)
	if err != nil {
		return Page[AttendanceView]{}, err
	}

	out := Page[AttendanceView]{Data: make([]AttendanceView, 0, len(records.Data)), Total: records.Total, Page: records.Page, Limit: records.Limit}
	for _, record := range records.Data {
		out.Data = append(out.Data, AttendanceView{Attendance: record, EmployeeName: names[record.AccountID]})
	}
	return out, nil
}

// PurgeInvalid hard-deletes every record without a check-in timestamp and
// reports how many were removed.
func (s *AttendanceService) PurgeInvalid(ctx context.Context, actor Actor) (int64, error) {
	if err := actor.requireAdmin(); err != nil {
		return 0, err
	}
	result := s.DB.WithContext(ctx).Where("check_in IS NULL").Delete(&models.Attendance{})
	if result.Error != nil {
		return 0, result.Error
	}
	log.Printf("attendance purge by %s: removed %d records without check-in", actor.ID, result.RowsAffected)
	return result.RowsAffected, nil
}
