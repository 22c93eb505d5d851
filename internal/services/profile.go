package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/models"
	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

var errProfileNotFound = newError(KindNotFound, "profile not found")

type ProfileService struct {
	DB *gorm.DB
}

// ProfileInput applies only the fields that are non-empty.
type ProfileInput struct {
	FullName       string
	Phone          string
	Address        string
	JobTitle       string
	Department     string
	ProfilePicture string
}

// DirectoryEntry is one row of the admin employee directory.
type DirectoryEntry struct {
	models.Profile
	LoginID    string               `json:"loginId"`
	EmployeeID string               `json:"employeeId"`
	Role       string               `json:"role"`
	Salary     *models.Compensation `json:"salary"`
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

func (s *ProfileService) Get(ctx context.Context, actor Actor, accountID uuid.UUID) (models.Profile, error) {
	if !actor.canAccess(accountID) {
		return models.Profile{}, errForbidden
	}
	return s.find(s.DB.WithContext(ctx), accountID)
}

func (s *ProfileService) find(db *gorm.DB, accountID uuid.UUID) (models.Profile, error) {
	var profile models.Profile
	err := db.Where("account_id = ?", accountID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile, errProfileNotFound
	}
	return profile, err
}

func (s *ProfileService) Update(ctx context.Context, actor Actor, accountID uuid.UUID, in ProfileInput) (models.Profile, error) {
	if !actor.canAccess(accountID) {
		return models.Profile{}, errForbidden
	}

	db := s.DB.WithContext(ctx)
	profile, err := s.find(db, accountID)
	if err != nil {
		return profile, err
	}

	apply := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
		}
	}
	apply(&profile.DisplayName, in.FullName)
	apply(&profile.Phone, in.Phone)
	apply(&profile.Address, in.Address)
	apply(&profile.JobTitle, in.JobTitle)
	apply(&profile.Department, in.Department)
	apply(&profile.PictureURL, in.ProfilePicture)

	if err := db.Save(&profile).Error; err != nil {
		return profile, err
	}
	return profile, nil
}

// Directory lists every profile, newest first, with account and salary.
func (s *ProfileService) Directory(ctx context.Context, actor Actor, p utils.PageParams) (Page[DirectoryEntry], error) {
	if err := actor.requireAdmin(); err != nil {
		return Page[DirectoryEntry]{}, err
	}

	db := s.DB.WithContext(ctx)
	profiles, err := paginate[models.Profile](db.Model(&models.Profile{}), p, "created_at desc")
	if err != nil {
		return Page[DirectoryEntry]{}, err
	}

	ids := make([]uuid.UUID, 0, len(profiles.Data))
	for _, profile := range profiles.Data {
		ids = append(ids, profile.AccountID)
	}

	accounts := map[uuid.UUID]models.Account{}
	salaries := map[uuid.UUID]models.Compensation{}
	if len(ids) > 0 {
		var accountRows []models.Account
		if err := db.Where("id IN ?", ids).Find(&accountRows).Error; err != nil {
			return Page[DirectoryEntry]{}, err
		}
		for _, account := range accountRows {
			accounts[account.ID] = account
		}

		var salaryRows []models.Compensation
		if err := db.Where("account_id IN ?", ids).Find(&salaryRows).Error; err != nil {
			return Page[DirectoryEntry]{}, err
		}
		for _, salary := range salaryRows {
			salaries[salary.AccountID] = salary
		}
	}

	out := Page[DirectoryEntry]{Data: make([]DirectoryEntry, 0, len(profiles.Data)), Total: profiles.Total, Page: profiles.Page, Limit: profiles.Limit}
	for _, profile := range profiles.Data {
		entry := DirectoryEntry{Profile: profile}
		if account, ok := accounts[profile.AccountID]; ok {
			entry.LoginID = account.LoginID
			entry.EmployeeID = account.EmployeeCode
			entry.Role = account.Role
		}
		if salary, ok := salaries[profile.AccountID]; ok {
			entry.Salary = &salary
		}
		out.Data = append(out.Data, entry)
	}
	return out, nil
}
