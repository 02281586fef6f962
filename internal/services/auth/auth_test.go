package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avdonin/grocery-catalog/internal/lib/jwt"
	"github.com/avdonin/grocery-catalog/internal/lib/password"
	"github.com/avdonin/grocery-catalog/internal/models"
	"github.com/avdonin/grocery-catalog/internal/storage/repository"
)

// MockUserRepository реализует интерфейс auth.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByUID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestMaker() jwt.Maker {
	return jwt.NewMaker("test_secret_key_1234567890", time.Hour)
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	users := new(MockUserRepository)
	var stored models.User
	users.On("CreateUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.User)
		}).
		Return("uid-1", nil)

	maker := newTestMaker()
	service := New(users, maker)

	user, token, err := service.Register(context.Background(), "Ivan", "ivan@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "uid-1", user.UID)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, password.CompareHash(stored.PasswordHash, "secret123"))
	assert.Error(t, password.CompareHash(stored.PasswordHash, "anything-else"))

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserUID)

	users.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("CreateUser", mock.Anything, mock.Anything).
		Return("", repository.ErrEmailTaken)

	service := New(users, newTestMaker())

	user, token, err := service.Register(context.Background(), "Ivan", "ivan@example.com", "secret123")
	require.ErrorIs(t, err, ErrUserExists)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.GetHash("correct_password")
	require.NoError(t, err)

	existing := &models.User{
		UID:          "uid-7",
		Name:         "Ivan",
		Email:        "ivan@example.com",
		PasswordHash: hash,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name:     "успешный вход",
			email:    "ivan@example.com",
			password: "correct_password",
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "ivan@example.com").Return(existing, nil)
			},
		},
		{
			name:     "неверный пароль",
			email:    "ivan@example.com",
			password: "wrong_password",
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "ivan@example.com").Return(existing, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "неизвестный email",
			email:    "ghost@example.com",
			password: "correct_password",
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", mock.Anything, "ghost@example.com").
					Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tt.setupMock(users)

			maker := newTestMaker()
			service := New(users, maker)

			user, token, err := service.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, existing.UID, user.UID)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, existing.UID, claims.UserUID)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetUserByUID", mock.Anything, "uid-7").
		Return(&models.User{UID: "uid-7", Email: "ivan@example.com"}, nil)
	users.On("GetUserByUID", mock.Anything, "uid-gone").
		Return(nil, repository.ErrNotFound)

	service := New(users, newTestMaker())

	user, err := service.Me(context.Background(), "uid-7")
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", user.Email)

	user, err = service.Me(context.Background(), "uid-gone")
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, user)
}

func TestAuthService_Login_StorageFault(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetUserByEmail", mock.Anything, "ivan@example.com").
		Return(nil, errors.New("connection refused"))

	service := New(users, newTestMaker())

	_, _, err := service.Login(context.Background(), "ivan@example.com", "whatever")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
