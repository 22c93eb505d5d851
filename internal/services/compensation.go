package services

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/models"
	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

var errSalaryNotFound = newError(KindNotFound, "salary record not found")

type CompensationService struct {
	DB *gorm.DB
}

// CompensationInput carries the fields an admin may change. Nil fields are
// left as stored; net pay is always derived.
type CompensationInput struct {
	BasePay   *float64
	Allowance *float64
	Deduction *float64
}

type CompensationView struct {
	models.Compensation
	EmployeeName string `json:"employeeName"`
}

func NewCompensationService(db *gorm.DB) *CompensationService {
	return &CompensationService{DB: db}
}

func (s *CompensationService) find(ctx context.Context, accountID uuid.UUID) (models.Compensation, error) {
	var record models.Compensation
	err := s.DB.WithContext(ctx).Where("account_id = ?", accountID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, errSalaryNotFound
	}
	return record, err
}

func (s *CompensationService) Mine(ctx context.Context, accountID uuid.UUID) (models.Compensation, error) {
	return s.find(ctx, accountID)
}

func (s *CompensationService) Get(ctx context.Context, actor Actor, accountID uuid.UUID) (models.Compensation, error) {
	if err := actor.requireAdmin(); err != nil {
		return models.Compensation{}, err
	}
	return s.find(ctx, accountID)
}

func (s *CompensationService) List(ctx context.Context, actor Actor, p utils.PageParams) (Page[CompensationView], error) {
	if err := actor.requireAdmin(); err != nil {
		return Page[CompensationView]{}, err
	}

	records, err := paginate[models.Compensation](s.DB.WithContext(ctx).Model(&models.Compensation{}), p, "created_at desc")
	if err != nil {
		return Page[CompensationView]{}, err
	}
	ids := make([]uuid.UUID, 0, len(records.Data))
	for _, record := range records.Data {
		ids = append(ids, record.AccountID)
	}
	names, err := displayNames(s.DB.WithContext(ctx), ids)
	if err != nil {
		return Page[CompensationView]{}, err
	}

	out := Page[CompensationView]{Data: make([]CompensationView, 0, len(records.Data)), Total: records.Total, Page: records.Page, Limit: records.Limit}
	for _, record := range records.Data {
		out.Data = append(out.Data, CompensationView{Compensation: record, EmployeeName: names[record.AccountID]})
	}
	return out, nil
}

func (s *CompensationService) Update(ctx context.Context, actor Actor, accountID uuid.UUID, in CompensationInput) (models.Compensation, error) {
	if err := actor.requireAdmin(); err != nil {
		return models.Compensation{}, err
	}
	for _, value := range []*float64{in.BasePay, in.Allowance, in.Deduction} {
		if value != nil && *value < 0 {
			return models.Compensation{}, newError(KindValidation, "salary components cannot be negative")
		}
		if value != nil && *value > models.MaxAmount {
			return models.Compensation{}, newError(KindValidation, "salary component exceeds the maximum amount")
		}
	}

	record, err := s.find(ctx, accountID)
	if err != nil {
		return record, err
	}
	if in.BasePay != nil {
		record.BasePay = *in.BasePay
	}
	if in.Allowance != nil {
		record.Allowance = *in.Allowance
	}
	if in.Deduction != nil {
		record.Deduction = *in.Deduction
	}
	record.Recompute()
	if math.Abs(record.NetPay) > models.MaxAmount {
		return models.Compensation{}, newError(KindValidation, "net salary exceeds the maximum amount")
	}

	if err := s.DB.WithContext(ctx).Save(&record).Error; err != nil {
		return record, err
	}
	return record, nil
}
