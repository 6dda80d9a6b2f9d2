package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"adboard/internal/domain"
	"adboard/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, username string, isAdmin bool) (string, error) {
	args := m.Called(userID, username, isAdmin)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := NewService(users, jwt)

	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	jwt.On("GenerateToken", int64(1), "alice", false).Return("token-123", nil)

	res, err := svc.Register(context.Background(), RegisterRequest{
		Username:  "alice",
		Password:  "password123",
		FirstName: "Alice",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-123", res.Token)
	assert.Equal(t, "alice", res.User.Username)
	assert.NotEqual(t, "password123", res.User.PasswordHash)
	users.AssertExpectations(t)
}

func TestService_Register_UsernameTaken(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := NewService(users, jwt)

	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(repository.ErrUsernameTaken)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	jwt.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := NewService(users, jwt)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)
	jwt.On("GenerateToken", int64(1), "alice", false).Return("token-123", nil)

	res, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "password123"})

	assert.NoError(t, err)
	assert.Equal(t, "token-123", res.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := NewService(users, jwt)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           1,
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	svc := NewService(users, jwt)

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})

	// Неизвестный логин и неверный пароль неразличимы для клиента
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
