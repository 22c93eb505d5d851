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

const minPasswordLength = 6

var errAccountExists = newError(KindConflict, "account already exists")

type AccountService struct {
	DB *gorm.DB
	// AdminLoginID is granted the admin role when it registers.
	AdminLoginID string
}

type RegisterInput struct {
	LoginID     string
	EmployeeID  string
	DisplayName string
	Password    string
}

// AccountView is the account summary returned to clients.
type AccountView struct {
	models.Account
	FullName string `json:"fullName"`
}

func NewAccountService(db *gorm.DB, adminLoginID string) *AccountService {
	return &AccountService{DB: db, AdminLoginID: normalizeLoginID(adminLoginID)}
}

func normalizeLoginID(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Register creates the account together with its empty profile and zeroed
// compensation record. Either all three rows are written or none are.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (AccountView, error) {
	loginID := normalizeLoginID(in.LoginID)
	employeeID := strings.TrimSpace(in.EmployeeID)
	displayName := strings.TrimSpace(in.DisplayName)

	switch {
	case loginID == "":
		return AccountView{}, newError(KindValidation, "loginId is required")
	case employeeID == "":
		return AccountView{}, newError(KindValidation, "employeeId is required")
	case displayName == "":
		return AccountView{}, newError(KindValidation, "displayName is required")
	case len(in.Password) < minPasswordLength:
		return AccountView{}, newError(KindValidation, "password must be at least 6 characters")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return AccountView{}, err
	}

	role := models.RoleEmployee
	if s.AdminLoginID != "" && loginID == s.AdminLoginID {
		role = models.RoleAdmin
	}

	account := models.Account{
		LoginID:      loginID,
		EmployeeCode: employeeID,
		PasswordHash: hash,
		Role:         role,
		Verified:     true,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Account{}).
			Where("login_id = ? OR employee_code = ?", loginID, employeeID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errAccountExists
		}

		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.Profile{AccountID: account.ID, DisplayName: displayName}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Compensation{AccountID: account.ID}).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return AccountView{}, errAccountExists
		}
		return AccountView{}, err
	}

	return AccountView{Account: account, FullName: displayName}, nil
}

// Authenticate checks a login id and password. Unknown ids and wrong
// passwords produce the same error.
func (s *AccountService) Authenticate(ctx context.Context, loginID string, password string) (AccountView, error) {
	var account models.Account
	err := s.DB.WithContext(ctx).Where("login_id = ?", normalizeLoginID(loginID)).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AccountView{}, errInvalidCredentials
	}
	if err != nil {
		return AccountView{}, err
	}

	if !utils.CheckPassword(account.PasswordHash, password) {
		return AccountView{}, errInvalidCredentials
	}
	if !account.Verified {
		return AccountView{}, newError(KindForbidden, "account not verified")
	}

	return s.view(ctx, account)
}

func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (AccountView, error) {
	var account models.Account
	err := s.DB.WithContext(ctx).First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AccountView{}, newError(KindNotFound, "account not found")
	}
	if err != nil {
		return AccountView{}, err
	}
	return s.view(ctx, account)
}

func (s *AccountService) view(ctx context.Context, account models.Account) (AccountView, error) {
	names, err := displayNames(s.DB.WithContext(ctx), []uuid.UUID{account.ID})
	if err != nil {
		return AccountView{}, err
	}
	return AccountView{Account: account, FullName: names[account.ID]}, nil
}
