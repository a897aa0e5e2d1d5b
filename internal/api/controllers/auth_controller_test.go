package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ascendops/internal/models/request_models"
	"ascendops/internal/models/response_models"
	"ascendops/pkg/utils"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response_models.LoginResponse), args.Error(1)
}

func loginRouter(svc *MockAuthService) *gin.Engine {
	r := gin.New()
	ctrl := NewAuthController(svc)
	r.POST("/api/v1/auth/login", ctrl.Login)
	return r
}

func TestAuthController_Login_Success(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, request_models.LoginRequest{
		Email:    "dana@ascend.test",
		Password: "correct horse",
	}).Return(&response_models.LoginResponse{
		Token: "token-123",
		User:  response_models.AccountResponse{Name: "Dana Reyes", Role: "founder"},
	}, nil)

	body := `{"email":"dana@ascend.test","password":"correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	loginRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.APIResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, "token-123", data["token"])
	}
	svc.AssertExpectations(t)
}

func TestAuthController_Login_MalformedBody(t *testing.T) {
	svc := new(MockAuthService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	loginRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Login")
}

// The binding tags reject a missing password before the service runs.
func TestAuthController_Login_MissingPassword(t *testing.T) {
	svc := new(MockAuthService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"dana@ascend.test"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	loginRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Login")
}

func TestAuthController_Login_InvalidCredentials(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, utils.ErrInvalidCredentials)

	body := `{"email":"dana@ascend.test","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	loginRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp utils.APIResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Invalid credentials", resp.Message)
	svc.AssertExpectations(t)
}
