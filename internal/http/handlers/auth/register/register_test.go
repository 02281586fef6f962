package register

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avdonin/grocery-catalog/internal/http/session"
	"github.com/avdonin/grocery-catalog/internal/models"
	authservice "github.com/avdonin/grocery-catalog/internal/services/auth"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, name, email, password)
	var user *models.User
	if res := args.Get(0); res != nil {
		user = res.(*models.User)
	}
	return user, args.String(1), args.Error(2)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		expectCookie   bool
	}{
		{
			name: "успешная регистрация",
			body: `{"name":"Ivan","email":"ivan@example.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ivan", "ivan@example.com", "secret123").
					Return(&models.User{UID: "uid-1", Name: "Ivan", Email: "ivan@example.com"}, "signed-token", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"OK"`,
			expectCookie:   true,
		},
		{
			name: "email уже занят",
			body: `{"name":"Ivan","email":"ivan@example.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ivan", "ivan@example.com", "secret123").
					Return(nil, "", authservice.ErrUserExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"User already exists"`,
		},
		{
			name:           "битый JSON",
			body:           `{"name":`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"invalid request body"`,
		},
		{
			name:           "некорректный email",
			body:           `{"name":"Ivan","email":"not-an-email","password":"secret123"}`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name:           "слишком короткий пароль",
			body:           `{"name":"Ivan","email":"ivan@example.com","password":"123"}`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `Password`,
		},
		{
			name: "сбой хранилища",
			body: `{"name":"Ivan","email":"ivan@example.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "Ivan", "ivan@example.com", "secret123").
					Return(nil, "", errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"failed to register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			tt.setupMock(service)

			handler := New(logger, service, 168*time.Hour)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			var sessionCookie *http.Cookie
			for _, c := range w.Result().Cookies() {
				if c.Name == session.CookieName {
					sessionCookie = c
				}
			}
			if tt.expectCookie {
				require.NotNil(t, sessionCookie, "session cookie should be set")
				assert.Equal(t, "signed-token", sessionCookie.Value)
				assert.True(t, sessionCookie.HttpOnly)
			} else {
				assert.Nil(t, sessionCookie, "session cookie should not be set")
			}

			service.AssertExpectations(t)
		})
	}
}

// Повторная регистрация того же email: первый запрос 201, второй 400.
func TestRegisterHandler_DuplicateScenario(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := new(MockService)
	service.On("Register", mock.Anything, "Ivan", "ivan@example.com", "secret123").
		Return(&models.User{UID: "uid-1"}, "signed-token", nil).Once()
	service.On("Register", mock.Anything, "Ivan", "ivan@example.com", "secret123").
		Return(nil, "", authservice.ErrUserExists).Once()

	handler := New(logger, service, 168*time.Hour)
	body := `{"name":"Ivan","email":"ivan@example.com","password":"secret123"}`

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "User already exists")

	service.AssertExpectations(t)
}
