package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/db/dbtest"
	"github.com/DB1132/Odoo-hackathon/internal/models"
)

const testAdminLogin = "admin@dayflow.com"

type fixture struct {
	db       *gorm.DB
	accounts *AccountService
	admin    Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := dbtest.Open(t)
	f := &fixture{db: database, accounts: NewAccountService(database, testAdminLogin)}

	admin := f.register(t, testAdminLogin, "ADMIN001", "Dayflow Admin")
	require.Equal(t, models.RoleAdmin, admin.Role)
	f.admin = Actor{ID: admin.ID, Role: admin.Role}
	return f
}

func (f *fixture) register(t *testing.T, loginID, employeeID, name string) AccountView {
	t.Helper()
	view, err := f.accounts.Register(context.Background(), RegisterInput{
		LoginID:     loginID,
		EmployeeID:  employeeID,
		DisplayName: name,
		Password:    "Password123",
	})
	require.NoError(t, err)
	return view
}

func (f *fixture) employee(t *testing.T, loginID, employeeID, name string) Actor {
	t.Helper()
	view := f.register(t, loginID, employeeID, name)
	return Actor{ID: view.ID, Role: view.Role}
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 4, hour, minute, 0, 0, time.Local)
}

func fixedClock(ts *time.Time) Clock {
	return func() time.Time { return *ts }
}

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, IsKind(err, kind), "want %s error, got %v", kind, err)
}
