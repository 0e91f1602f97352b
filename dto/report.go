package dto

import "time"

// DirectoryEntry định nghĩa một dòng trong danh bạ nhân viên
type DirectoryEntry struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	HireDate   time.Time `json:"hireDate"`
}

// DepartmentSummary định nghĩa thống kê theo phòng ban
type DepartmentSummary struct {
	Department    string  `json:"department"`
	EmployeeCount int     `json:"employeeCount"`
	AverageSalary float64 `json:"averageSalary"`
}

// AttendanceSummary định nghĩa thống kê chấm công theo nhân viên
type AttendanceSummary struct {
	EmployeeID   uint   `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	TotalDays    int    `json:"totalDays"`
	PresentDays  int    `json:"presentDays"`
	AbsentDays   int    `json:"absentDays"`
	LateDays     int    `json:"lateDays"`
}

// SalaryEntry định nghĩa một dòng trong báo cáo lương
type SalaryEntry struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"`
}
