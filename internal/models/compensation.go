package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxAmount is the largest magnitude a decimal(12,2) column holds.
const MaxAmount = 9999999999.99

type Compensation struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:char(36);uniqueIndex;not null" json:"accountId"`
	BasePay   float64   `gorm:"type:decimal(12,2);not null;default:0" json:"basicPay"`
	Allowance float64   `gorm:"type:decimal(12,2);not null;default:0" json:"allowances"`
	Deduction float64   `gorm:"type:decimal(12,2);not null;default:0" json:"deductions"`
	NetPay    float64   `gorm:"type:decimal(12,2);not null;default:0" json:"netSalary"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Compensation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps NetPay derived on every create and save.
func (c *Compensation) BeforeSave(tx *gorm.DB) error {
	c.Recompute()
	return nil
}

// Recompute sets NetPay = BasePay + Allowance - Deduction, rounded to cents.
func (c *Compensation) Recompute() {
	net := decimal.NewFromFloat(c.BasePay).
		Add(decimal.NewFromFloat(c.Allowance)).
		Sub(decimal.NewFromFloat(c.Deduction)).
		Round(2)
	c.NetPay = net.InexactFloat64()
}
