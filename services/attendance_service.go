package services

import (
	"context"
	stderrors "errors"

	"ems/constants"
	"ems/dto"
	"ems/errors"
	"ems/models"
	"ems/repository"
	"ems/services/logger"
	"ems/services/notification"
	"ems/validator"

	"gorm.io/gorm"
)

// AttendanceService xử lý nghiệp vụ chấm công
type AttendanceService struct {
	attendances repository.AttendanceRepository
	employees   repository.EmployeeRepository
	notifier    notification.Service
	logger      logger.Logger
}

type AttendanceServiceOptions struct {
	DB          *gorm.DB
	Attendances repository.AttendanceRepository
	Employees   repository.EmployeeRepository
	Notifier    notification.Service
	Logger      logger.Logger
}

func NewAttendanceService(opts AttendanceServiceOptions) *AttendanceService {
	attendances := opts.Attendances
	if attendances == nil {
		attendances = repository.NewAttendanceRepository(opts.DB)
	}
	employees := opts.Employees
	if employees == nil {
		employees = repository.NewEmployeeRepository(opts.DB)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AttendanceService{
		attendances: attendances,
		employees:   employees,
		notifier:    opts.Notifier,
		logger:      log,
	}
}

// ListAll trả về toàn bộ bản ghi chấm công kèm nhân viên, mới nhất trước
func (s *AttendanceService) ListAll(ctx context.Context) ([]models.Attendance, error) {
	records, err := s.attendances.ListAll(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn chấm công", err)
	}
	return records, nil
}

// ListForEmployee trả về bản ghi chấm công của một nhân viên
func (s *AttendanceService) ListForEmployee(ctx context.Context, employeeID uint) ([]models.Attendance, error) {
	records, err := s.attendances.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn chấm công", err)
	}
	return records, nil
}

// Create tạo bản ghi chấm công mới, status mặc định là Present
func (s *AttendanceService) Create(ctx context.Context, req dto.AttendanceRequest) (*models.Attendance, error) {
	status := req.Status
	if status == "" {
		status = constants.AttendanceStatusPresent
	}

	record := &models.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         req.Date,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Status:       status,
		Notes:        req.Notes,
	}

	if err := validator.ValidateAttendance(record); err != nil {
		return nil, err
	}

	// Khóa ngoại: bản ghi phải trỏ tới một nhân viên tồn tại
	employee, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeEmployeeNotFound, "Không tìm thấy nhân viên", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn nhân viên", err)
	}

	if err := s.attendances.Create(ctx, record); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo bản ghi chấm công", err)
	}

	s.broadcast(employee, record)
	return record, nil
}

// Update ghi đè toàn bộ bản ghi chấm công sau khi xác nhận bản ghi tồn tại
func (s *AttendanceService) Update(ctx context.Context, id uint, req dto.UpdateAttendanceRequest) error {
	if req.ID != id {
		return errors.NewAppError(errors.ErrCodeIDMismatch, "ID trên đường dẫn và trong payload không khớp", nil)
	}

	existing, err := s.attendances.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewAppError(errors.ErrCodeAttendanceNotFound, "Không tìm thấy bản ghi chấm công", err)
		}
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn bản ghi chấm công", err)
	}

	existing.EmployeeID = req.EmployeeID
	existing.Date = req.Date
	existing.CheckInTime = req.CheckInTime
	existing.CheckOutTime = req.CheckOutTime
	existing.Status = req.Status
	existing.Notes = req.Notes

	if err := validator.ValidateAttendance(existing); err != nil {
		return err
	}

	if err := s.attendances.Save(ctx, existing); err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi cập nhật bản ghi chấm công", err)
	}
	return nil
}

// broadcast gửi thông báo chấm công tới các dashboard đang mở qua websocket
func (s *AttendanceService) broadcast(employee *models.Employee, record *models.Attendance) {
	if s.notifier == nil {
		return
	}
	name := employee.FirstName + " " + employee.LastName
	message := notification.NewMessageBuilder(name, record.Status, record.CheckInTime).Build()
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("Lỗi gửi thông báo chấm công: %v", err)
	}
}
