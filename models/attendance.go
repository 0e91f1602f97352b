package models

import (
	"time"

	"ems/constants"
)

type Attendance struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeID   uint      `gorm:"index;not null" json:"employeeId"`
	Date         time.Time `gorm:"not null" json:"date"`
	CheckInTime  string    `gorm:"type:varchar(5);not null" json:"checkInTime"`  // HH:MM
	CheckOutTime string    `gorm:"type:varchar(5)" json:"checkOutTime,omitempty"` // HH:MM, có thể trống
	Status       string    `gorm:"default:Present" json:"status"`
	Notes        string    `json:"notes"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;references:ID"`
}

// IsKnownStatus kiểm tra status có nằm trong bộ trạng thái chuẩn không
func (a Attendance) IsKnownStatus() bool {
	switch a.Status {
	case constants.AttendanceStatusPresent, constants.AttendanceStatusAbsent, constants.AttendanceStatusLate:
		return true
	}
	return false
}
