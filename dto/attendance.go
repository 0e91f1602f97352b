package dto

import "time"

// AttendanceRequest định nghĩa request tạo bản ghi chấm công.
// CheckInTime/CheckOutTime nhận chuỗi dạng HH:MM từ frontend.
type AttendanceRequest struct {
	EmployeeID   uint      `json:"employeeId"`
	Date         time.Time `json:"date"`
	CheckInTime  string    `json:"checkInTime"`
	CheckOutTime string    `json:"checkOutTime"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
}

// UpdateAttendanceRequest định nghĩa request cập nhật toàn bộ bản ghi chấm công
type UpdateAttendanceRequest struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employeeId"`
	Date         time.Time `json:"date"`
	CheckInTime  string    `json:"checkInTime"`
	CheckOutTime string    `json:"checkOutTime"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
}
