package controllers

import (
	"log"
	"strconv"

	"ems/config"
	"ems/dto"
	"ems/response"
	"ems/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type AttendanceController struct {
	Service *services.AttendanceService
	Redis   *redis.Client
}

func NewAttendanceController(service *services.AttendanceService, redisCli *redis.Client) AttendanceController {
	return AttendanceController{
		Service: service,
		Redis:   redisCli,
	}
}

// GetAttendance trả về toàn bộ bản ghi chấm công kèm nhân viên
func (ac AttendanceController) GetAttendance(c *gin.Context) {
	records, err := ac.Service.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, records)
}

// GetEmployeeAttendance trả về bản ghi chấm công của một nhân viên
func (ac AttendanceController) GetEmployeeAttendance(c *gin.Context) {
	employeeID, err := strconv.ParseUint(c.Param("employeeId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID nhân viên không hợp lệ")
		return
	}

	records, err := ac.Service.ListForEmployee(c.Request.Context(), uint(employeeID))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, records)
}

func (ac AttendanceController) CreateAttendance(c *gin.Context) {
	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	record, err := ac.Service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	ac.invalidateCache()
	response.Created(c, "Tạo bản ghi chấm công thành công", record)
}

func (ac AttendanceController) UpdateAttendance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	if err := ac.Service.Update(c.Request.Context(), uint(id), req); err != nil {
		handleError(c, err)
		return
	}

	ac.invalidateCache()
	response.NoContent(c)
}

func (ac AttendanceController) invalidateCache() {
	if ac.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, ac.Redis, services.CacheKeyReportAttendance); err != nil {
		log.Printf("Lỗi khi xóa cache báo cáo chấm công: %v", err)
	}
}
