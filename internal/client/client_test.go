package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DB1132/Odoo-hackathon/internal/config"
	"github.com/DB1132/Odoo-hackathon/internal/db/dbtest"
	"github.com/DB1132/Odoo-hackathon/internal/routes"
)

func newServer(t *testing.T) *Client {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.Register(router, dbtest.Open(t), config.Config{
		JwtSecret:      "test-secret",
		JwtTTLHours:    1,
		AdminBootstrap: "admin@dayflow.com",
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client())
}

func signUp(t *testing.T, c *Client, loginID, employeeID, name string) *Session {
	t.Helper()
	sess := &Session{}
	require.NoError(t, c.Auth().Register(context.Background(), sess, RegisterRequest{
		LoginID: loginID, EmployeeID: employeeID, DisplayName: name, Password: "Password123",
	}))
	require.True(t, sess.Active())
	return sess
}

func TestSessionLifecycle(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()
	signUp(t, c, "emp2@dayflow.com", "EMP002", "Jane Doe")

	sess := &Session{}
	assert.False(t, sess.Active())
	require.NoError(t, c.Auth().Login(ctx, sess, "emp2@dayflow.com", "Password123"))
	assert.Equal(t, "Jane Doe", sess.Account().FullName)
	assert.False(t, sess.IsAdmin())

	me, err := c.Auth().Me(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "EMP002", me.EmployeeID)

	c.Auth().Logout(sess)
	assert.False(t, sess.Active())
	_, err = c.Attendance(sess).Today(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	err = c.Auth().Login(ctx, sess, "emp2@dayflow.com", "nope")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.False(t, sess.Active())
}

func TestAuthRequiresSession(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	err := c.Auth().Register(ctx, nil, RegisterRequest{
		LoginID: "emp2@dayflow.com", EmployeeID: "EMP002", DisplayName: "Jane Doe", Password: "Password123",
	})
	assert.ErrorIs(t, err, ErrNoSession)

	err = c.Auth().Login(ctx, nil, "emp2@dayflow.com", "Password123")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = c.Auth().Me(ctx, nil)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.NotPanics(t, func() { c.Auth().Logout(nil) })

	// nothing was sent, so the login id is still free
	signUp(t, c, "emp2@dayflow.com", "EMP002", "Jane Doe")
}

func TestAttendanceAndLeaveThroughClient(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()
	admin := signUp(t, c, "admin@dayflow.com", "ADMIN001", "Dayflow Admin")
	emp := signUp(t, c, "emp2@dayflow.com", "EMP002", "Jane Doe")
	assert.True(t, admin.IsAdmin())

	today, err := c.Attendance(emp).Today(ctx)
	require.NoError(t, err)
	assert.Nil(t, today)

	record, err := c.Attendance(emp).CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Present", record.Status)

	_, err = c.Attendance(emp).CheckIn(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	record, err = c.Attendance(emp).CheckOut(ctx)
	require.NoError(t, err)
	require.NotNil(t, record.CheckOut)

	mine, err := c.Attendance(emp).Mine(ctx, PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, mine.Total)
	assert.Equal(t, 10, mine.Limit)

	all, err := c.Attendance(admin).All(ctx, PageQuery{Limit: 5})
	require.NoError(t, err)
	require.Len(t, all.Data, 1)
	assert.Equal(t, "Jane Doe", all.Data[0].EmployeeName)

	leave, err := c.Leaves(emp).Create(ctx, NewLeave{LeaveType: "Paid", StartDate: "2024-05-01", EndDate: "2024-05-03"})
	require.NoError(t, err)
	assert.Equal(t, "Pending", leave.Status)

	_, err = c.Leaves(emp).Approve(ctx, leave.ID, "")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	decided, err := c.Leaves(admin).Reject(ctx, leave.ID, "blackout week")
	require.NoError(t, err)
	assert.Equal(t, "Rejected", decided.Status)
	require.NotNil(t, decided.ReviewedBy)
	assert.Equal(t, admin.Account().ID, *decided.ReviewedBy)

	pending, err := c.Leaves(admin).All(ctx, PageQuery{Status: "Pending"})
	require.NoError(t, err)
	assert.Zero(t, pending.Total)

	removed, err := c.Attendance(admin).CleanupInvalid(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSalaryAndProfileThroughClient(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()
	admin := signUp(t, c, "admin@dayflow.com", "ADMIN001", "Dayflow Admin")
	emp := signUp(t, c, "emp2@dayflow.com", "EMP002", "Jane Doe")
	empID := emp.Account().ID

	base, allowance := 4200.0, 300.0
	salary, err := c.Salary(admin).Update(ctx, empID, SalaryUpdate{BasicPay: &base, Allowances: &allowance})
	require.NoError(t, err)
	assert.Equal(t, 4500.0, salary.NetSalary)

	mine, err := c.Salary(emp).Mine(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4500.0, mine.NetSalary)

	list, err := c.Salary(admin).All(ctx, PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Total)

	profile, err := c.Profiles(emp).Update(ctx, empID, ProfileUpdate{JobTitle: "Accountant"})
	require.NoError(t, err)
	assert.Equal(t, "Accountant", profile.JobTitle)
	assert.Equal(t, "Jane Doe", profile.FullName)

	dir, err := c.Profiles(admin).Directory(ctx, PageQuery{Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, dir.Total)
	assert.Len(t, dir.Data, 1)
}

func TestDecodePageRejectsOtherShapes(t *testing.T) {
	_, err := decodePage[Leave]([]byte(`[{"id":"1"}]`))
	assert.ErrorIs(t, err, ErrUnexpectedBody)

	_, err = decodePage[Leave]([]byte(`{"leaves":[],"total":0,"page":1,"limit":10}`))
	assert.ErrorIs(t, err, ErrUnexpectedBody)

	_, err = decodePage[Leave]([]byte(`{"data":{},"total":0,"page":1,"limit":10}`))
	assert.ErrorIs(t, err, ErrUnexpectedBody)

	page, err := decodePage[Leave]([]byte(`{"data":[{"id":"1","status":"Pending"}],"total":7,"page":2,"limit":1}`))
	require.NoError(t, err)
	assert.EqualValues(t, 7, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Pending", page.Data[0].Status)
}

func TestViewHelpers(t *testing.T) {
	leaves := []Leave{{ID: "a", Status: "Pending"}, {ID: "b", Status: "Approved"}, {ID: "c", Status: "Pending"}}
	pending := FilterLeaves(leaves, "Pending")
	require.Len(t, pending, 2)
	assert.Equal(t, "c", pending[1].ID)
	assert.Len(t, FilterLeaves(leaves, ""), 3)

	records := []Attendance{{Date: "2024-03-02"}, {Date: "2024-03-05"}, {Date: "2024-03-01"}}
	sorted := SortAttendanceByDay(records)
	assert.Equal(t, []string{"2024-03-05", "2024-03-02", "2024-03-01"}, []string{sorted[0].Date, sorted[1].Date, sorted[2].Date})
	assert.Equal(t, "2024-03-02", records[0].Date)
}
