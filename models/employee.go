package models

import (
	"time"
)

type Employee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"not null" json:"firstName"`
	LastName    string    `gorm:"not null" json:"lastName"`
	Email       string    `gorm:"unique;not null" json:"email"`
	Phone       string    `gorm:"not null" json:"phone"`
	Department  string    `gorm:"not null" json:"department"`
	Position    string    `gorm:"not null" json:"position"`
	Salary      float64   `gorm:"type:numeric(18,2);default:0" json:"salary"`
	HireDate    time.Time `json:"hireDate"`
	Avatar      string    `json:"avatar,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"createdDate"`
}
