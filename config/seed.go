package config

import (
	"log"

	"ems/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migrate tạo bảng cho toàn bộ model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Employee{}, &models.Attendance{})
}

// SeedAdminUser tạo tài khoản admin mặc định nếu chưa có tài khoản nào.
// Mật khẩu được băm bcrypt, không lưu dạng plaintext.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := GetEnvDefault("SEED_ADMIN_PASSWORD", "admin123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username: "admin",
		Password: string(hashed),
		Role:     "Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Đã tạo tài khoản admin mặc định")
	return nil
}
