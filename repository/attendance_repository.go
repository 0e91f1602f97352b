package repository

import (
	"context"

	"ems/models"

	"gorm.io/gorm"
)

// AttendanceRepository định nghĩa các thao tác lưu trữ cho chấm công
type AttendanceRepository interface {
	ListAll(ctx context.Context) ([]models.Attendance, error)
	ListByEmployee(ctx context.Context, employeeID uint) ([]models.Attendance, error)
	GetByID(ctx context.Context, id uint) (*models.Attendance, error)
	Create(ctx context.Context, attendance *models.Attendance) error
	Save(ctx context.Context, attendance *models.Attendance) error
	WithTx(tx *gorm.DB) AttendanceRepository
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository tạo repository chấm công trên gorm
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) WithTx(tx *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: tx}
}

// ListAll trả về toàn bộ bản ghi kèm nhân viên, mới nhất trước
func (r *attendanceRepository) ListAll(ctx context.Context) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := r.db.WithContext(ctx).Preload("Employee").Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID uint) ([]models.Attendance, error) {
	var records []models.Attendance
	if err := r.db.WithContext(ctx).Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) Save(ctx context.Context, attendance *models.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}
