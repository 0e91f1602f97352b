package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ems/models"
	"ems/response"
	"ems/routes"
	"ems/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Employee{}, &models.Attendance{}))

	router := gin.New()
	routes.SetupRoutes(router, db, nil, nil, melody.New())
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, target))
}

func TestCreateThenGetEmployee(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/employees", map[string]interface{}{
		"firstName":  "Ann",
		"lastName":   "Lee",
		"email":      "ann@x.com",
		"phone":      "555",
		"department": "IT",
		"position":   "Eng",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Employee
	decodeData(t, w, &created)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsActive)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/employees/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Employee
	decodeData(t, w, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "ann@x.com", fetched.Email)
}

func TestCreateEmployeeValidationFails(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/employees", map[string]interface{}{
		"firstName": "Ann",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEmployeeNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/employees/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEmployeeIDMismatchReturns400(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/employees", map[string]interface{}{
		"firstName":  "Ann",
		"lastName":   "Lee",
		"email":      "ann@x.com",
		"phone":      "555",
		"department": "IT",
		"position":   "Eng",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Employee
	decodeData(t, w, &created)

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/employees/%d", created.ID), map[string]interface{}{
		"id":         created.ID + 2,
		"firstName":  "Ann",
		"lastName":   "Lee",
		"email":      "ann@x.com",
		"phone":      "555",
		"department": "IT",
		"position":   "Eng",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEmployeeSoftDeletes(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/employees", map[string]interface{}{
		"firstName":  "Ann",
		"lastName":   "Lee",
		"email":      "ann@x.com",
		"phone":      "555",
		"department": "IT",
		"position":   "Eng",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Employee
	decodeData(t, w, &created)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/employees/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Dòng dữ liệu vẫn còn trong DB, chỉ mất khỏi API
	var stored models.Employee
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.False(t, stored.IsActive)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/employees/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearAllEndpoint(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/employees", map[string]interface{}{
		"firstName":  "Ann",
		"lastName":   "Lee",
		"email":      "ann@x.com",
		"phone":      "555",
		"department": "IT",
		"position":   "Eng",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/employees/clear-all", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginEndpoint(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	router, db := newTestRouter(t)

	// Tạo tài khoản seed như lúc khởi động
	hashed, err := services.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{Username: "admin", Password: hashed, Role: "Admin"}).Error)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		ID          uint   `json:"id"`
		Username    string `json:"username"`
		Role        string `json:"role"`
		AccessToken string `json:"accessToken"`
	}
	decodeData(t, w, &login)
	assert.Equal(t, "admin", login.Username)
	assert.Equal(t, "Admin", login.Role)
	assert.NotEmpty(t, login.AccessToken)

	// Token dùng được cho /api/auth/me
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
