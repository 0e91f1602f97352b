package repository

import (
	"context"

	"ems/models"

	"gorm.io/gorm"
)

// EmployeeRepository định nghĩa các thao tác lưu trữ cho nhân viên
type EmployeeRepository interface {
	ListActive(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	GetActiveByID(ctx context.Context, id uint) (*models.Employee, error)
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Save(ctx context.Context, employee *models.Employee) error
	PurgeAllWithAttendance(ctx context.Context) error
	WithTx(tx *gorm.DB) EmployeeRepository
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository tạo repository nhân viên trên gorm
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) WithTx(tx *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: tx}
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetActiveByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail tìm nhân viên theo email, không phân biệt hoa thường,
// tính cả nhân viên đã ngừng hoạt động.
func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepository) Save(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// PurgeAllWithAttendance xóa toàn bộ dữ liệu trong một transaction.
// Bắt buộc xóa bảng chấm công trước để không vi phạm khóa ngoại.
func (r *employeeRepository) PurgeAllWithAttendance(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Employee{}).Error; err != nil {
			return err
		}
		return nil
	})
}
