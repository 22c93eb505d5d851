package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DB1132/Odoo-hackathon/internal/models"
	"github.com/DB1132/Odoo-hackathon/internal/utils"
)

func newAttendance(t *testing.T) (*fixture, *AttendanceService, *time.Time) {
	f := newFixture(t)
	now := at(9, 0)
	svc := NewAttendanceService(f.db)
	svc.Now = fixedClock(&now)
	return f, svc, &now
}

func TestWorkingHours(t *testing.T) {
	assert.Equal(t, 8.5, WorkingHours(at(9, 0), at(17, 30)))
	assert.Equal(t, 0.0, WorkingHours(at(9, 0), at(9, 0)))
	assert.Equal(t, 0.33, WorkingHours(at(9, 0), at(9, 20)))
	assert.Equal(t, 1.01, WorkingHours(at(9, 0), at(10, 0).Add(30*time.Second)))
}

func TestCheckInThenCheckOut(t *testing.T) {
	f, svc, now := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	ctx := context.Background()

	record, err := svc.CheckIn(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePresent, record.Status)
	assert.Equal(t, "2024-03-04", record.Day)
	assert.Nil(t, record.CheckOut)

	*now = at(17, 30)
	record, err = svc.CheckOut(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, record.WorkingHours)
	assert.Equal(t, 8.5, *record.WorkingHours)

	var stored models.Attendance
	require.NoError(t, f.db.First(&stored, "id = ?", record.ID).Error)
	require.NotNil(t, stored.CheckOut)
	require.NotNil(t, stored.WorkingHours)
	assert.True(t, stored.CheckOut.Equal(at(17, 30)))
	assert.Equal(t, 8.5, *stored.WorkingHours)
}

func TestSecondCheckInLeavesRecordUntouched(t *testing.T) {
	f, svc, now := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	ctx := context.Background()

	first, err := svc.CheckIn(ctx, emp.ID)
	require.NoError(t, err)

	*now = at(10, 15)
	_, err = svc.CheckIn(ctx, emp.ID)
	requireKind(t, err, KindConflict)
	assert.Equal(t, "already checked in today", err.Error())

	*now = at(17, 0)
	_, err = svc.CheckOut(ctx, emp.ID)
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, emp.ID)
	requireKind(t, err, KindConflict)

	var records []models.Attendance
	require.NoError(t, f.db.Where("account_id = ?", emp.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, first.ID, records[0].ID)
	assert.True(t, records[0].CheckIn.Equal(at(9, 0)))
}

func TestCheckInNextDayStartsNewRecord(t *testing.T) {
	f, svc, now := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, emp.ID)
	require.NoError(t, err)

	*now = at(9, 0).AddDate(0, 0, 1)
	record, err := svc.CheckIn(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", record.Day)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	f, svc, _ := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")

	_, err := svc.CheckOut(context.Background(), emp.ID)
	requireKind(t, err, KindConflict)
	assert.Equal(t, "no check-in record found for today", err.Error())

	var count int64
	require.NoError(t, f.db.Model(&models.Attendance{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSecondCheckOutKeepsFirstValues(t *testing.T) {
	f, svc, now := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, emp.ID)
	require.NoError(t, err)
	*now = at(17, 30)
	first, err := svc.CheckOut(ctx, emp.ID)
	require.NoError(t, err)

	*now = at(19, 0)
	_, err = svc.CheckOut(ctx, emp.ID)
	requireKind(t, err, KindConflict)
	assert.Equal(t, "already checked out today", err.Error())

	var stored models.Attendance
	require.NoError(t, f.db.First(&stored, "id = ?", first.ID).Error)
	assert.True(t, stored.CheckOut.Equal(at(17, 30)))
	assert.Equal(t, 8.5, *stored.WorkingHours)
}

func TestStoreRejectsSecondRecordForDay(t *testing.T) {
	f, _, _ := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	checkIn := at(9, 0)

	require.NoError(t, f.db.Create(&models.Attendance{AccountID: emp.ID, Day: "2024-03-04", CheckIn: &checkIn}).Error)
	err := f.db.Create(&models.Attendance{AccountID: emp.ID, Day: "2024-03-04", CheckIn: &checkIn}).Error
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err))
}

func TestCheckInRaceLosesToUniqueIndex(t *testing.T) {
	f, svc, _ := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")

	// a rival check-in lands after the existence check but before the insert
	inserted := false
	err := f.db.Callback().Create().Before("gorm:create").Register("test:rival_check_in", func(tx *gorm.DB) {
		if inserted || tx.Statement.Schema == nil || tx.Statement.Schema.Table != "attendances" {
			return
		}
		inserted = true
		rival := tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO attendances (id, account_id, day, check_in, status) VALUES (?, ?, ?, ?, ?)",
			uuid.New(), emp.ID, "2024-03-04", at(8, 59), models.AttendancePresent,
		)
		require.NoError(t, rival.Error)
	})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), emp.ID)
	require.True(t, inserted)
	requireKind(t, err, KindConflict)
	assert.Equal(t, "already checked in today", err.Error())
}

func TestToday(t *testing.T) {
	f, svc, _ := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	ctx := context.Background()

	record, err := svc.Today(ctx, emp.ID)
	require.NoError(t, err)
	assert.Nil(t, record)

	_, err = svc.CheckIn(ctx, emp.ID)
	require.NoError(t, err)
	record, err = svc.Today(ctx, emp.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, emp.ID, record.AccountID)
}

func TestAttendanceListings(t *testing.T) {
	f, svc, now := newAttendance(t)
	jane := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	john := f.employee(t, "emp3@dayflow.com", "EMP003", "John Roe")
	ctx := context.Background()

	for day := 0; day < 3; day++ {
		*now = at(9, 0).AddDate(0, 0, day)
		_, err := svc.CheckIn(ctx, jane.ID)
		require.NoError(t, err)
	}
	_, err := svc.CheckIn(ctx, john.ID)
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, jane.ID, utils.PageParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, mine.Total)
	require.Len(t, mine.Data, 2)
	assert.Equal(t, "2024-03-06", mine.Data[0].Day)
	assert.Equal(t, "2024-03-05", mine.Data[1].Day)

	_, err = svc.ListAll(ctx, jane, utils.PageParams{Page: 1, Limit: 10})
	requireKind(t, err, KindForbidden)

	all, err := svc.ListAll(ctx, f.admin, utils.PageParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 4, all.Total)
	names := map[uuid.UUID]string{}
	for _, row := range all.Data {
		names[row.AccountID] = row.EmployeeName
	}
	assert.Equal(t, "Jane Doe", names[jane.ID])
	assert.Equal(t, "John Roe", names[john.ID])

	forJohn, err := svc.ListForAccount(ctx, f.admin, john.ID, utils.PageParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, forJohn.Total)
	assert.Equal(t, "John Roe", forJohn.Data[0].EmployeeName)

	_, err = svc.ListForAccount(ctx, jane, john.ID, utils.PageParams{Page: 1, Limit: 10})
	requireKind(t, err, KindForbidden)
}

func TestEmployeeNameFallsBack(t *testing.T) {
	f, svc, _ := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	ctx := context.Background()

	require.NoError(t, f.db.Model(&models.Profile{}).Where("account_id = ?", emp.ID).Update("display_name", "").Error)
	orphan := uuid.New()
	checkIn := at(8, 0)
	require.NoError(t, f.db.Create(&models.Attendance{AccountID: orphan, Day: "2024-03-04", CheckIn: &checkIn}).Error)
	_, err := svc.CheckIn(ctx, emp.ID)
	require.NoError(t, err)

	all, err := svc.ListAll(ctx, f.admin, utils.PageParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	names := map[uuid.UUID]string{}
	for _, row := range all.Data {
		names[row.AccountID] = row.EmployeeName
	}
	assert.Equal(t, "EMP002", names[emp.ID])
	assert.Equal(t, "Employee", names[orphan])
}

func TestPurgeInvalid(t *testing.T) {
	f, svc, _ := newAttendance(t)
	emp := f.employee(t, "emp2@dayflow.com", "EMP002", "Jane Doe")
	ctx := context.Background()

	checkIn := at(9, 0)
	valid := models.Attendance{AccountID: emp.ID, Day: "2024-03-01", CheckIn: &checkIn}
	require.NoError(t, f.db.Create(&valid).Error)
	for _, day := range []string{"2024-03-02", "2024-03-03"} {
		require.NoError(t, f.db.Create(&models.Attendance{AccountID: emp.ID, Day: day}).Error)
	}

	_, err := svc.PurgeInvalid(ctx, Actor{ID: emp.ID, Role: models.RoleEmployee})
	requireKind(t, err, KindForbidden)

	removed, err := svc.PurgeInvalid(ctx, f.admin)
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	var remaining []models.Attendance
	require.NoError(t, f.db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, valid.ID, remaining[0].ID)

	removed, err = svc.PurgeInvalid(ctx, f.admin)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
