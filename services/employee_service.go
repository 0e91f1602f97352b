package services

import (
	"context"
	stderrors "errors"
	"time"

	"ems/dto"
	"ems/errors"
	"ems/models"
	"ems/repository"
	"ems/services/logger"
	"ems/validator"

	"gorm.io/gorm"
)

// EmployeeService xử lý nghiệp vụ nhân viên
type EmployeeService struct {
	employees repository.EmployeeRepository
	db        *gorm.DB
	logger    logger.Logger
}

type EmployeeServiceOptions struct {
	DB        *gorm.DB
	Employees repository.EmployeeRepository
	Logger    logger.Logger
}

func NewEmployeeService(opts EmployeeServiceOptions) *EmployeeService {
	employees := opts.Employees
	if employees == nil {
		employees = repository.NewEmployeeRepository(opts.DB)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &EmployeeService{
		employees: employees,
		db:        opts.DB,
		logger:    log,
	}
}

// ListActive trả về toàn bộ nhân viên đang hoạt động
func (s *EmployeeService) ListActive(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn danh sách nhân viên", err)
	}
	return employees, nil
}

// GetByID trả về nhân viên đang hoạt động theo id
func (s *EmployeeService) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.employees.GetActiveByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}
	return employee, nil
}

// Create tạo nhân viên mới với active = true và createdDate = now
func (s *EmployeeService) Create(ctx context.Context, req dto.EmployeeRequest) (*models.Employee, error) {
	employee := &models.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
	}

	if err := validator.ValidateEmployee(employee); err != nil {
		return nil, err
	}

	if err := s.checkEmailConflict(ctx, s.employees, employee.Email, 0); err != nil {
		return nil, err
	}

	employee.IsActive = true
	employee.CreatedDate = time.Now()

	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo nhân viên", err)
	}

	s.logger.Info("Đã tạo nhân viên %d (%s %s)", employee.ID, employee.FirstName, employee.LastName)
	return employee, nil
}

// Update ghi đè toàn bộ trường của nhân viên trong một transaction
func (s *EmployeeService) Update(ctx context.Context, id uint, req dto.EmployeeRequest) (*models.Employee, error) {
	if req.ID != id {
		return nil, errors.NewAppError(errors.ErrCodeIDMismatch, "ID trên đường dẫn và trong payload không khớp", nil)
	}

	var updated *models.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.employees.WithTx(tx)

		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
		}

		candidate := &models.Employee{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Phone:      req.Phone,
			Department: req.Department,
			Position:   req.Position,
			Salary:     req.Salary,
		}
		if err := validator.ValidateEmployee(candidate); err != nil {
			return err
		}

		if err := s.checkEmailConflict(ctx, repo, req.Email, existing.ID); err != nil {
			return err
		}

		existing.FirstName = req.FirstName
		existing.LastName = req.LastName
		existing.Email = req.Email
		existing.Phone = req.Phone
		existing.Department = req.Department
		existing.Position = req.Position
		existing.Salary = req.Salary
		existing.HireDate = req.HireDate
		if req.IsActive != nil {
			existing.IsActive = *req.IsActive
		}

		if err := repo.Save(ctx, existing); err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật nhân viên", err)
		}

		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SoftDelete đánh dấu nhân viên ngừng hoạt động, giữ nguyên dữ liệu chấm công
func (s *EmployeeService) SoftDelete(ctx context.Context, id uint) error {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	employee.IsActive = false
	if err := s.employees.Save(ctx, employee); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật nhân viên", err)
	}

	s.logger.Info("Đã ngừng hoạt động nhân viên %d", id)
	return nil
}

// ClearAll xóa toàn bộ chấm công rồi toàn bộ nhân viên trong một transaction
func (s *EmployeeService) ClearAll(ctx context.Context) error {
	if err := s.employees.PurgeAllWithAttendance(ctx); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi xóa dữ liệu nhân viên", err)
	}
	s.logger.Info("Đã xóa toàn bộ nhân viên và dữ liệu chấm công")
	return nil
}

// SetAvatar lưu URL ảnh đại diện cho nhân viên
func (s *EmployeeService) SetAvatar(ctx context.Context, id uint, url string) (*models.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	employee.Avatar = url
	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật nhân viên", err)
	}
	return employee, nil
}

// checkEmailConflict kiểm tra trùng email không phân biệt hoa thường,
// bỏ qua chính nhân viên đang cập nhật (selfID = 0 khi tạo mới).
func (s *EmployeeService) checkEmailConflict(ctx context.Context, repo repository.EmployeeRepository, email string, selfID uint) error {
	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra email", err)
	}
	if existing.ID != selfID {
		return errors.NewAppError(errors.ErrCodeEmailExists, "Email đã được sử dụng", nil)
	}
	return nil
}
