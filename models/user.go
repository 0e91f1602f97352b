package models

import "time"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"unique;not null" json:"username"`
	Password    string    `json:"-"` // lưu hash bcrypt, không trả về client
	Role        string    `gorm:"default:User" json:"role"`
	CreatedDate time.Time `gorm:"autoCreateTime" json:"createdDate"`
}
