package services

import (
	"context"
	"testing"
	"time"

	"ems/constants"
	"ems/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReportFixture(t *testing.T) (*ReportService, *EmployeeService, *AttendanceService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewReportService(ReportServiceOptions{DB: db}),
		NewEmployeeService(EmployeeServiceOptions{DB: db}),
		NewAttendanceService(AttendanceServiceOptions{DB: db}),
		db
}

func createEmployeeIn(t *testing.T, s *EmployeeService, email, department string, salary float64) uint {
	t.Helper()
	req := newEmployeeRequest(email)
	req.Department = department
	req.Salary = salary
	employee, err := s.Create(context.Background(), req)
	require.NoError(t, err)
	return employee.ID
}

func TestEmployeeDirectoryProjectsActiveOnly(t *testing.T) {
	reports, employees, _, _ := newReportFixture(t)

	id := createEmployeeIn(t, employees, "ann@x.com", "IT", 1000)
	inactive := createEmployeeIn(t, employees, "bob@x.com", "IT", 1000)
	require.NoError(t, employees.SoftDelete(context.Background(), inactive))

	entries, err := reports.EmployeeDirectory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, id, entries[0].ID)
	assert.Equal(t, "Ann Lee", entries[0].Name)
	assert.Equal(t, "ann@x.com", entries[0].Email)
	assert.Equal(t, "IT", entries[0].Department)
}

func TestDepartmentSummaryAverages(t *testing.T) {
	reports, employees, _, _ := newReportFixture(t)

	createEmployeeIn(t, employees, "a@x.com", "IT", 1000)
	createEmployeeIn(t, employees, "b@x.com", "IT", 2000)
	createEmployeeIn(t, employees, "c@x.com", "HR", 1500)

	summaries, err := reports.DepartmentSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byDepartment := make(map[string]dto.DepartmentSummary)
	for _, summary := range summaries {
		byDepartment[summary.Department] = summary
	}

	assert.Equal(t, 2, byDepartment["IT"].EmployeeCount)
	assert.InDelta(t, 1500, byDepartment["IT"].AverageSalary, 0.001)

	// Phòng ban một người: lương trung bình đúng bằng lương người đó
	assert.Equal(t, 1, byDepartment["HR"].EmployeeCount)
	assert.InDelta(t, 1500, byDepartment["HR"].AverageSalary, 0.001)
}

func TestDepartmentSummaryExcludesInactive(t *testing.T) {
	reports, employees, _, _ := newReportFixture(t)

	createEmployeeIn(t, employees, "a@x.com", "IT", 1000)
	inactive := createEmployeeIn(t, employees, "b@x.com", "Finance", 9000)
	require.NoError(t, employees.SoftDelete(context.Background(), inactive))

	summaries, err := reports.DepartmentSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "IT", summaries[0].Department)
}

func TestAttendanceSummaryTallies(t *testing.T) {
	reports, employees, attendances, _ := newReportFixture(t)

	id := createEmployeeIn(t, employees, "ann@x.com", "IT", 1000)

	statuses := []string{
		constants.AttendanceStatusPresent,
		constants.AttendanceStatusPresent,
		constants.AttendanceStatusLate,
		constants.AttendanceStatusAbsent,
	}
	for i, status := range statuses {
		_, err := attendances.Create(context.Background(), dto.AttendanceRequest{
			EmployeeID:  id,
			Date:        time.Date(2024, 3, i+1, 0, 0, 0, 0, time.UTC),
			CheckInTime: "08:00",
			Status:      status,
		})
		require.NoError(t, err)
	}

	summaries, err := reports.AttendanceSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Equal(t, id, summary.EmployeeID)
	assert.Equal(t, "Ann Lee", summary.EmployeeName)
	assert.Equal(t, 4, summary.TotalDays)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LateDays)
}

func TestAttendanceSummaryUnknownStatusCountsTotalOnly(t *testing.T) {
	reports, employees, attendances, _ := newReportFixture(t)

	id := createEmployeeIn(t, employees, "ann@x.com", "IT", 1000)

	_, err := attendances.Create(context.Background(), dto.AttendanceRequest{
		EmployeeID:  id,
		Date:        time.Now(),
		CheckInTime: "08:00",
		Status:      "Remote",
	})
	require.NoError(t, err)

	summaries, err := reports.AttendanceSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, 1, summaries[0].TotalDays)
	assert.Zero(t, summaries[0].PresentDays)
	assert.Zero(t, summaries[0].AbsentDays)
	assert.Zero(t, summaries[0].LateDays)
}

func TestAttendanceSummaryExcludesInactiveEmployees(t *testing.T) {
	reports, employees, attendances, _ := newReportFixture(t)

	id := createEmployeeIn(t, employees, "ann@x.com", "IT", 1000)
	_, err := attendances.Create(context.Background(), dto.AttendanceRequest{
		EmployeeID:  id,
		Date:        time.Now(),
		CheckInTime: "08:00",
	})
	require.NoError(t, err)

	require.NoError(t, employees.SoftDelete(context.Background(), id))

	summaries, err := reports.AttendanceSummary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestSalaryListingSortsDescending(t *testing.T) {
	reports, employees, _, _ := newReportFixture(t)

	createEmployeeIn(t, employees, "a@x.com", "IT", 1000)
	createEmployeeIn(t, employees, "b@x.com", "HR", 3000)
	createEmployeeIn(t, employees, "c@x.com", "Sales", 2000)

	entries, err := reports.SalaryListing(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.InDelta(t, 3000, entries[0].Salary, 0.001)
	assert.InDelta(t, 2000, entries[1].Salary, 0.001)
	assert.InDelta(t, 1000, entries[2].Salary, 0.001)
}
