package controllers

import (
	"ems/dto"
	"ems/response"
	"ems/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) AuthController {
	return AuthController{Service: service}
}

// Login xác thực tài khoản và trả về access token
func (ac AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Tên đăng nhập và mật khẩu là bắt buộc")
		return
	}

	user, accessToken, err := ac.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		ID:          user.ID,
		Username:    user.Username,
		Role:        user.Role,
		AccessToken: accessToken,
	})
}

// GetProfile trả về thông tin tài khoản hiện tại từ token
func (ac AuthController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	user, err := ac.Service.GetProfile(c.Request.Context(), userID.(uint))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, dto.ProfileResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}
