package controllers

import (
	"log"
	"strconv"

	"ems/config"
	"ems/dto"
	"ems/models"
	"ems/response"
	"ems/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type EmployeeController struct {
	Service    *services.EmployeeService
	Search     *services.SearchService
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

func NewEmployeeController(service *services.EmployeeService, search *services.SearchService, redisCli *redis.Client, cld *cloudinary.Cloudinary) EmployeeController {
	return EmployeeController{
		Service:    service,
		Search:     search,
		Redis:      redisCli,
		Cloudinary: cld,
	}
}

// GetEmployees trả về danh sách nhân viên đang hoạt động, có cache Redis
func (ec EmployeeController) GetEmployees(c *gin.Context) {
	var employees []models.Employee

	if ec.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, ec.Redis, services.CacheKeyActiveEmployees, &employees); err == nil && len(employees) > 0 {
			response.Success(c, employees)
			return
		}
	}

	employees, err := ec.Service.ListActive(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	if ec.Redis != nil {
		if err := services.SetToRedis(config.Ctx, ec.Redis, services.CacheKeyActiveEmployees, employees, services.EmployeeCacheTTL); err != nil {
			log.Printf("Lỗi khi lưu danh sách nhân viên vào Redis: %v", err)
		}
	}

	response.Success(c, employees)
}

func (ec EmployeeController) GetEmployeeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	employee, err := ec.Service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, employee)
}

func (ec EmployeeController) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	employee, err := ec.Service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	ec.invalidateCache()
	response.Created(c, "Tạo nhân viên thành công", employee)
}

func (ec EmployeeController) UpdateEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	employee, err := ec.Service.Update(c.Request.Context(), uint(id), req)
	if err != nil {
		handleError(c, err)
		return
	}

	ec.invalidateCache()
	response.SuccessWithMessage(c, "Cập nhật nhân viên thành công", employee)
}

// DeleteEmployee đánh dấu nhân viên ngừng hoạt động (soft delete)
func (ec EmployeeController) DeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := ec.Service.SoftDelete(c.Request.Context(), uint(id)); err != nil {
		handleError(c, err)
		return
	}

	ec.invalidateCache()
	response.NoContent(c)
}

// ClearAllEmployees xóa toàn bộ nhân viên và dữ liệu chấm công
func (ec EmployeeController) ClearAllEmployees(c *gin.Context) {
	if err := ec.Service.ClearAll(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}

	ec.invalidateCache()
	response.SuccessWithMessage(c, "Đã xóa toàn bộ nhân viên và dữ liệu chấm công", nil)
}

// SearchEmployees tìm kiếm mờ theo tên nhân viên
func (ec EmployeeController) SearchEmployees(c *gin.Context) {
	query := c.Query("q")

	results, err := ec.Search.Search(c.Request.Context(), query)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, results)
}

// UploadAvatar upload ảnh đại diện nhân viên lên Cloudinary
func (ec EmployeeController) UploadAvatar(c *gin.Context) {
	if ec.Cloudinary == nil {
		response.ServerError(c, "Cloudinary chưa được cấu hình", nil)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	resp, err := ec.Cloudinary.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: "avatars"})
	if err != nil {
		response.ServerError(c, "Upload thất bại", err)
		return
	}

	employee, err := ec.Service.SetAvatar(c.Request.Context(), uint(id), resp.SecureURL)
	if err != nil {
		handleError(c, err)
		return
	}

	ec.invalidateCache()
	response.Success(c, employee)
}

func (ec EmployeeController) invalidateCache() {
	if ec.Redis == nil {
		return
	}
	if err := services.InvalidateEmployeeCaches(config.Ctx, ec.Redis); err != nil {
		log.Printf("Lỗi khi xóa cache nhân viên: %v", err)
	}
}
