package validator

import (
	"testing"

	"ems/errors"
	"ems/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployee() *models.Employee {
	return &models.Employee{
		FirstName:  "Ann",
		LastName:   "Lee",
		Email:      "ann@x.com",
		Phone:      "555",
		Department: "IT",
		Position:   "Eng",
		Salary:     1000,
	}
}

func TestValidateEmployeeOK(t *testing.T) {
	require.NoError(t, ValidateEmployee(validEmployee()))
}

func TestValidateEmployeeBlankFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Employee)
	}{
		{"first name", func(e *models.Employee) { e.FirstName = "" }},
		{"last name", func(e *models.Employee) { e.LastName = " " }},
		{"email", func(e *models.Employee) { e.Email = "" }},
		{"phone", func(e *models.Employee) { e.Phone = "" }},
		{"department", func(e *models.Employee) { e.Department = "" }},
		{"position", func(e *models.Employee) { e.Position = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			employee := validEmployee()
			tc.mutate(employee)

			err := ValidateEmployee(employee)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
		})
	}
}

func TestValidateEmployeeBadEmail(t *testing.T) {
	employee := validEmployee()
	employee.Email = "not-an-email"

	err := ValidateEmployee(employee)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidEmail))
}

func TestValidateEmployeeNegativeSalary(t *testing.T) {
	employee := validEmployee()
	employee.Salary = -1

	err := ValidateEmployee(employee)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidSalary))
}

func TestValidateTimeOfDay(t *testing.T) {
	require.NoError(t, ValidateTimeOfDay("08:30"))
	require.NoError(t, ValidateTimeOfDay("23:59"))

	for _, bad := range []string{"24:00", "8h30", "morning", "12:60"} {
		err := ValidateTimeOfDay(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTime))
	}
}

func TestValidateAttendance(t *testing.T) {
	record := &models.Attendance{EmployeeID: 1, CheckInTime: "08:00"}
	require.NoError(t, ValidateAttendance(record))

	record.CheckOutTime = "17:30"
	require.NoError(t, ValidateAttendance(record))

	record.CheckOutTime = "bad"
	require.Error(t, ValidateAttendance(record))

	missing := &models.Attendance{EmployeeID: 1}
	err := ValidateAttendance(missing)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
}
