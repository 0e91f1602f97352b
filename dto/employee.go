package dto

import "time"

// EmployeeRequest định nghĩa request tạo/cập nhật nhân viên.
// Không dùng binding:"required" để tầng service tự kiểm tra và trả
// về thông báo lỗi theo từng trường.
type EmployeeRequest struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Salary     float64   `json:"salary"`
	HireDate   time.Time `json:"hireDate"`
	IsActive   *bool     `json:"isActive,omitempty"`
}

// SearchResult định nghĩa một kết quả tìm kiếm nhân viên
type SearchResult struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Similarity float64 `json:"similarity"`
}
