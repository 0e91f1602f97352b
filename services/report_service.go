package services

import (
	"context"

	"ems/constants"
	"ems/dto"
	"ems/errors"
	"ems/models"
	"ems/services/logger"

	"gorm.io/gorm"
)

// ReportService tính các báo cáo tổng hợp chỉ trên nhân viên đang hoạt động
type ReportService struct {
	db     *gorm.DB
	logger logger.Logger
}

type ReportServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewReportService(opts ReportServiceOptions) *ReportService {
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReportService{
		db:     opts.DB,
		logger: log,
	}
}

// EmployeeDirectory trả về danh bạ nhân viên đang hoạt động
func (s *ReportService) EmployeeDirectory(ctx context.Context) ([]dto.DirectoryEntry, error) {
	var entries []dto.DirectoryEntry
	err := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("is_active = ?", true).
		Select("id, first_name || ' ' || last_name AS name, email, phone, department, position, hire_date").
		Scan(&entries).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo danh bạ nhân viên", err)
	}
	return entries, nil
}

// DepartmentSummary gom nhân viên đang hoạt động theo phòng ban,
// tính số lượng và lương trung bình cho từng nhóm.
func (s *ReportService) DepartmentSummary(ctx context.Context) ([]dto.DepartmentSummary, error) {
	var summaries []dto.DepartmentSummary
	err := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("is_active = ?", true).
		Select("department, COUNT(*) AS employee_count, AVG(salary) AS average_salary").
		Group("department").
		Scan(&summaries).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo báo cáo phòng ban", err)
	}
	return summaries, nil
}

// AttendanceSummary gom chấm công của nhân viên đang hoạt động theo từng người.
// Status ngoài bộ Present/Absent/Late chỉ được tính vào totalDays.
func (s *ReportService) AttendanceSummary(ctx context.Context) ([]dto.AttendanceSummary, error) {
	var summaries []dto.AttendanceSummary
	err := s.db.WithContext(ctx).Model(&models.Attendance{}).
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("employees.is_active = ?", true).
		Select(`attendances.employee_id,
			employees.first_name || ' ' || employees.last_name AS employee_name,
			COUNT(*) AS total_days,
			SUM(CASE WHEN attendances.status = ? THEN 1 ELSE 0 END) AS present_days,
			SUM(CASE WHEN attendances.status = ? THEN 1 ELSE 0 END) AS absent_days,
			SUM(CASE WHEN attendances.status = ? THEN 1 ELSE 0 END) AS late_days`,
			constants.AttendanceStatusPresent,
			constants.AttendanceStatusAbsent,
			constants.AttendanceStatusLate).
		Group("attendances.employee_id, employees.first_name, employees.last_name").
		Scan(&summaries).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo báo cáo chấm công", err)
	}
	return summaries, nil
}

// SalaryListing trả về danh sách lương nhân viên đang hoạt động, lương cao trước
func (s *ReportService) SalaryListing(ctx context.Context) ([]dto.SalaryEntry, error) {
	var entries []dto.SalaryEntry
	err := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("is_active = ?", true).
		Select("id, first_name || ' ' || last_name AS name, department, position, salary").
		Order("salary DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo báo cáo lương", err)
	}
	return entries, nil
}
