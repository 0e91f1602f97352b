package constants

// Attendance status
const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusAbsent  = "Absent"
	AttendanceStatusLate    = "Late"
)

// User role
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Danh sách phòng ban cố định trên UI (không ép buộc ở tầng lưu trữ)
var Departments = []string{
	"IT",
	"HR",
	"Finance",
	"Marketing",
	"Sales",
	"Operations",
}
