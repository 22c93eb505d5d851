package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

// Page is the single list envelope every listing endpoint returns.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func paginate[T any](query *gorm.DB, p utils.PageParams, order string) (Page[T], error) {
	out := Page[T]{Data: make([]T, 0), Page: p.Page, Limit: p.Limit}

	base := query.Session(&gorm.Session{})
	if err := base.Count(&out.Total).Error; err != nil {
		return out, err
	}
	if out.Total == 0 {
		return out, nil
	}
	if err := base.Order(order).Offset(p.Offset()).Limit(p.Limit).Find(&out.Data).Error; err != nil {
		return out, err
	}
	return out, nil
}

type nameRow struct {
	ID           uuid.UUID
	DisplayName  string
	EmployeeCode string
}

// displayNames resolves account ids to the profile display name, falling
// back to the employee code and then to "Employee".
func displayNames(tx *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []nameRow
	err := tx.Table("accounts").
		Select("accounts.id AS id, COALESCE(profiles.display_name, '') AS display_name, accounts.employee_code AS employee_code").
		Joins("LEFT JOIN profiles ON profiles.account_id = accounts.id").
		Where("accounts.id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		switch {
		case row.DisplayName != "":
			names[row.ID] = row.DisplayName
		case row.EmployeeCode != "":
			names[row.ID] = row.EmployeeCode
		}
	}
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			names[id] = "Employee"
		}
	}
	return names, nil
}
