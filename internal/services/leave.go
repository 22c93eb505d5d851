package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/models"
	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

var errLeaveNotFound = newError(KindNotFound, "leave request not found")

// LeaveNotifier is told about a decision after it has been committed.
type LeaveNotifier interface {
	NotifyLeaveDecision(ctx context.Context, to string, request models.LeaveRequest) error
}

type LeaveService struct {
	DB       *gorm.DB
	Now      Clock
	Notifier LeaveNotifier
}

type LeaveInput struct {
	LeaveType string
	StartDate string
	EndDate   string
	Remarks   string
}

type LeaveView struct {
	models.LeaveRequest
	EmployeeName string `json:"employeeName"`
}

func NewLeaveService(db *gorm.DB, notifier LeaveNotifier) *LeaveService {
	return &LeaveService{DB: db, Notifier: notifier}
}

func parseLeaveDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.ParseInLocation(models.DayLayout, value, time.Local); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (s *LeaveService) Create(ctx context.Context, accountID uuid.UUID, in LeaveInput) (LeaveView, error) {
	if in.LeaveType == "" || in.StartDate == "" || in.EndDate == "" {
		return LeaveView{}, newError(KindValidation, "leaveType, startDate and endDate are required")
	}
	if !models.ValidLeaveType(in.LeaveType) {
		return LeaveView{}, newError(KindValidation, "invalid leave type")
	}
	start, err := parseLeaveDate(in.StartDate)
	if err != nil {
		return LeaveView{}, newError(KindValidation, "invalid startDate")
	}
	end, err := parseLeaveDate(in.EndDate)
	if err != nil {
		return LeaveView{}, newError(KindValidation, "invalid endDate")
	}
	if end.Before(start) {
		return LeaveView{}, newError(KindValidation, "endDate cannot be before startDate")
	}

	request := models.LeaveRequest{
		AccountID: accountID,
		LeaveType: in.LeaveType,
		StartDate: start,
		EndDate:   end,
		Remarks:   strings.TrimSpace(in.Remarks),
		Status:    models.LeavePending,
	}
	if err := s.DB.WithContext(ctx).Create(&request).Error; err != nil {
		return LeaveView{}, err
	}
	return s.view(ctx, request)
}

func validLeaveStatus(status string) bool {
	switch status {
	case models.LeavePending, models.LeaveApproved, models.LeaveRejected:
		return true
	}
	return false
}

func (s *LeaveService) ListMine(ctx context.Context, accountID uuid.UUID, status string, p utils.PageParams) (Page[LeaveView], error) {
	query := s.DB.WithContext(ctx).Model(&models.LeaveRequest{}).Where("account_id = ?", accountID)
	return s.list(ctx, query, status, p)
}

func (s *LeaveService) ListAll(ctx context.Context, actor Actor, status string, p utils.PageParams) (Page[LeaveView], error) {
	if err := actor.requireAdmin(); err != nil {
		return Page[LeaveView]{}, err
	}
	return s.list(ctx, s.DB.WithContext(ctx).Model(&models.LeaveRequest{}), status, p)
}

func (s *LeaveService) list(ctx context.Context, query *gorm.DB, status string, p utils.PageParams) (Page[LeaveView], error) {
	if status != "" {
		if !validLeaveStatus(status) {
			return Page[LeaveView]{}, newError(KindValidation, "invalid status filter")
		}
		query = query.Where("status = ?", status)
	}

	requests, err := paginate[models.LeaveRequest](query, p, "created_at desc")
	if err != nil {
		return Page[LeaveView]{}, err
	}

	ids := make([]uuid.UUID, 0, len(requests.Data))
	for _, request := range requests.Data {
		ids = append(ids, request.AccountID)
	}
	names, err := displayNames(s.DB.WithContext(ctx), ids)
	if err != nil {
		return Page[LeaveView]{}, err
	}

	out := Page[LeaveView]{Data: make([]LeaveView, 0, len(requests.Data)), Total: requests.Total, Page: requests.Page, Limit: requests.Limit}
	for _, request := range requests.Data {
		out.Data = append(out.Data, LeaveView{LeaveRequest: request, EmployeeName: names[request.AccountID]})
	}
	return out, nil
}

func (s *LeaveService) Approve(ctx context.Context, actor Actor, id uuid.UUID, comments string) (LeaveView, error) {
	return s.decide(ctx, actor, id, models.LeaveApproved, comments)
}

func (s *LeaveService) Reject(ctx context.Context, actor Actor, id uuid.UUID, comments string) (LeaveView, error) {
	return s.decide(ctx, actor, id, models.LeaveRejected, comments)
}

// decide moves a Pending request to a terminal status. Only Pending rows
// match the update, so a second decision is reported as a conflict.
func (s *LeaveService) decide(ctx context.Context, actor Actor, id uuid.UUID, status string, comments string) (LeaveView, error) {
	if err := actor.requireAdmin(); err != nil {
		return LeaveView{}, err
	}

	db := s.DB.WithContext(ctx)
	now := s.Now.now()
	result := db.Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", id, models.LeavePending).
		Updates(map[string]interface{}{
			"status":          status,
			"reviewer_id":     actor.ID,
			"reviewed_at":     now,
			"review_comments": strings.TrimSpace(comments),
		})
	if result.Error != nil {
		return LeaveView{}, result.Error
	}

	var request models.LeaveRequest
	err := db.First(&request, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LeaveView{}, errLeaveNotFound
	}
	if err != nil {
		return LeaveView{}, err
	}
	if result.RowsAffected == 0 {
		return LeaveView{}, newError(KindConflict, "leave request already reviewed")
	}

	s.notify(ctx, request)
	return s.view(ctx, request)
}

func (s *LeaveService) notify(ctx context.Context, request models.LeaveRequest) {
	if s.Notifier == nil {
		return
	}
	var owner models.Account
	if err := s.DB.WithContext(ctx).Select("login_id").First(&owner, "id = ?", request.AccountID).Error; err != nil {
		log.Printf("leave %s: notify lookup failed: %v", request.ID, err)
		return
	}
	if err := s.Notifier.NotifyLeaveDecision(ctx, owner.LoginID, request); err != nil {
		log.Printf("leave %s: notify %s failed: %v", request.ID, owner.LoginID, err)
	}
}

func (s *LeaveService) view(ctx context.Context, request models.LeaveRequest) (LeaveView, error) {
	names, err := displayNames(s.DB.WithContext(ctx), []uuid.UUID{request.AccountID})
	if err != nil {
		return LeaveView{}, err
	}
	return LeaveView{LeaveRequest: request, EmployeeName: names[request.AccountID]}, nil
}
