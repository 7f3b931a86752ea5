package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	custom_error "facility/pkg/errors"
	"facility/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

const testUserID = "9f4b5c3d-1a2e-4f6b-8c7d-0e1f2a3b4c5d"

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestGetUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		userID         string
		setupMock      func(repo *MockUserRepository)
		expectedStatus int
	}{
		{
			name:   "user found",
			userID: testUserID,
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetUser", testUserID).Return(&models.User{ID: testUserID, Name: "Jane Doe", Email: "jane@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "user missing",
			userID: testUserID,
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetUser", testUserID).Return(nil, custom_error.NewNotFoundError("user", testUserID))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			userID:         "jane",
			setupMock:      func(repo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			handler := NewHandler(repo, zap.NewNop())

			c, w := setupTestContext()
			c.Params = gin.Params{{Key: "id", Value: tt.userID}}
			c.Request = httptest.NewRequest("GET", "/users/"+tt.userID, nil)

			handler.GetUser(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			repo.AssertExpectations(t)
		})
	}
}

func TestGetUserList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupMock      func(repo *MockUserRepository)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "users listed",
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetUsers").Return([]models.User{
					{ID: testUserID, Name: "Jane Doe", Email: "jane@example.com"},
					{ID: "b1c2d3e4-0000-4000-8000-000000000001", Name: "John Smith", Email: "john@example.com"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name: "repository error",
			setupMock: func(repo *MockUserRepository) {
				repo.On("GetUsers").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			handler := NewHandler(repo, zap.NewNop())

			c, w := setupTestContext()
			c.Request = httptest.NewRequest("GET", "/users", nil)

			handler.GetUserList(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var users []models.User
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
				assert.Len(t, users, tt.expectedCount)
			}
			repo.AssertExpectations(t)
		})
	}
}
