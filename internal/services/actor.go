package services

import (
	"github.com/google/uuid"

	"github.com/DB1132/Odoo-hackathon/internal/models"
)

// Actor is the authenticated caller as resolved from the bearer token.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) requireAdmin() error {
	if !a.IsAdmin() {
		return errForbidden
	}
	return nil
}

func (a Actor) canAccess(accountID uuid.UUID) bool {
	return a.IsAdmin() || a.ID == accountID
}
