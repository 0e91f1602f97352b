package services

import (
	"context"
	"testing"
	"time"

	"ems/dto"
	"ems/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Employee{}, &models.Attendance{}))
	return db
}

func newEmployeeRequest(email string) dto.EmployeeRequest {
	return dto.EmployeeRequest{
		FirstName:  "Ann",
		LastName:   "Lee",
		Email:      email,
		Phone:      "555",
		Department: "IT",
		Position:   "Eng",
		Salary:     1000,
		HireDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func mustCreateEmployee(t *testing.T, s *EmployeeService, email string) *models.Employee {
	t.Helper()

	employee, err := s.Create(context.Background(), newEmployeeRequest(email))
	require.NoError(t, err)
	return employee
}
