package services

import (
	"context"
	"testing"

	"ems/errors"
	"ems/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	db := newTestDB(t)

	hashed, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username: "admin",
		Password: hashed,
		Role:     "Admin",
	}).Error)

	return NewAuthService(AuthServiceOptions{DB: db}), db
}

func TestLoginSuccess(t *testing.T) {
	s, _ := newAuthFixture(t)

	user, token, err := s.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "Admin", user.Role)
	assert.NotEmpty(t, token)

	userID, role, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "Admin", role)
}

func TestLoginWrongPassword(t *testing.T) {
	s, _ := newAuthFixture(t)

	_, _, err := s.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidCredentials))
}

func TestLoginUnknownUser(t *testing.T) {
	s, _ := newAuthFixture(t)

	_, _, err := s.Login(context.Background(), "nobody", "admin123")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidCredentials))
}
