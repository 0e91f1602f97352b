package validator

import (
	"regexp"
	"strings"
	"time"

	"ems/errors"
	"ems/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmployee validate thông tin nhân viên
func ValidateEmployee(employee *models.Employee) error {
	if strings.TrimSpace(employee.FirstName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên không được để trống", nil)
	}

	if strings.TrimSpace(employee.LastName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ không được để trống", nil)
	}

	if strings.TrimSpace(employee.Email) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !emailRegex.MatchString(employee.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if strings.TrimSpace(employee.Phone) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if strings.TrimSpace(employee.Department) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phòng ban không được để trống", nil)
	}

	if strings.TrimSpace(employee.Position) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Chức vụ không được để trống", nil)
	}

	if employee.Salary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidSalary, "Lương không được âm", nil)
	}

	return nil
}

// ValidateAttendance validate bản ghi chấm công
func ValidateAttendance(attendance *models.Attendance) error {
	if attendance.EmployeeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID nhân viên không được để trống", nil)
	}

	if attendance.CheckInTime == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Giờ vào không được để trống", nil)
	}

	if err := ValidateTimeOfDay(attendance.CheckInTime); err != nil {
		return err
	}

	if attendance.CheckOutTime != "" {
		if err := ValidateTimeOfDay(attendance.CheckOutTime); err != nil {
			return err
		}
	}

	return nil
}

// ValidateTimeOfDay kiểm tra chuỗi giờ dạng HH:MM
func ValidateTimeOfDay(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidTime, "Giờ không hợp lệ: "+value, err)
	}
	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}
