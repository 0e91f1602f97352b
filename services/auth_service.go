package services

import (
	"context"
	stderrors "errors"

	"ems/errors"
	"ems/models"
	"ems/repository"
	"ems/services/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accessTokenExpiryMinutes = 60 * 24 * 3

// AuthService xử lý đăng nhập và tra cứu tài khoản
type AuthService struct {
	users  repository.UserRepository
	logger logger.Logger
}

type AuthServiceOptions struct {
	DB     *gorm.DB
	Users  repository.UserRepository
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	users := opts.Users
	if users == nil {
		users = repository.NewUserRepository(opts.DB)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &AuthService{
		users:  users,
		logger: log,
	}
}

// Login so khớp mật khẩu bcrypt và phát access token
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.NewAppError(errors.ErrCodeInvalidCredentials, "Tên đăng nhập hoặc mật khẩu không hợp lệ", nil)
		}
		return nil, "", errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn tài khoản", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeInvalidCredentials, "Tên đăng nhập hoặc mật khẩu không hợp lệ", nil)
	}

	accessToken, err := GenerateToken(UserInfo{UserID: user.ID, Role: user.Role}, accessTokenExpiryMinutes)
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tạo access token", err)
	}

	s.logger.Info("Tài khoản %s đã đăng nhập", user.Username)
	return user, accessToken, nil
}

// GetProfile trả về tài khoản theo id lấy từ token
func (s *AuthService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy tài khoản", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi truy vấn tài khoản", err)
	}
	return user, nil
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
