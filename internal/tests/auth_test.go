package tests

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"amur-backend/internal/domain"
	"amur-backend/internal/mocks"
	"amur-backend/internal/service"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	svc := service.NewAuthService(mockUsers, "test-secret", time.Hour)

	var saved *domain.User
	mockUsers.On("GetUserByNumber", "+998901234567").Return(nil, sql.ErrNoRows).Once()
	mockUsers.On("InsertUser", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(0).(*domain.User) }).
		Return(nil).Once()

	user, err := svc.Register(domain.RegisterRequest{
		Number: "+998901234567", Password: "sekret", FullName: "Alisher", Language: "ru",
	})
	assert.NoError(t, err)
	assert.Equal(t, "user", user.Role)
	assert.Equal(t, "ru", user.Language)
	assert.NotEqual(t, "sekret", user.Password, "password is stored hashed")

	mockUsers.On("GetUserByNumber", "+998901234567").Return(saved, nil)

	resp, err := svc.Login(domain.LoginRequest{Number: "+998901234567", Password: "sekret"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ru", resp.Language)

	claims, err := svc.ParseToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, "+998901234567", claims.Number)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, saved.ID, claims.UserID)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	mockUsers.On("GetUserByNumber", "+998901234567").
		Return(&domain.User{ID: "user_1", Number: "+998901234567"}, nil)
	svc := service.NewAuthService(mockUsers, "test-secret", time.Hour)

	_, err := svc.Register(domain.RegisterRequest{Number: "+998901234567", Password: "sekret"})

	assert.ErrorIs(t, err, service.ErrDuplicateUser)
}

func TestAuthService_RegisterUnknownLanguageDefaults(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	mockUsers.On("GetUserByNumber", "+998901234567").Return(nil, sql.ErrNoRows)
	mockUsers.On("InsertUser", mock.AnythingOfType("*domain.User")).Return(nil)
	svc := service.NewAuthService(mockUsers, "test-secret", time.Hour)

	user, err := svc.Register(domain.RegisterRequest{
		Number: "+998901234567", Password: "sekret", Language: "de",
	})

	assert.NoError(t, err)
	assert.Equal(t, "uz", user.Language)
}

func TestAuthService_LoginFailures(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	svc := service.NewAuthService(mockUsers, "test-secret", time.Hour)

	mockUsers.On("GetUserByNumber", "+998900000001").Return(nil, sql.ErrNoRows)
	_, err := svc.Login(domain.LoginRequest{Number: "+998900000001", Password: "whatever"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	var saved *domain.User
	mockUsers.On("GetUserByNumber", "+998900000002").Return(nil, sql.ErrNoRows).Once()
	mockUsers.On("InsertUser", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(0).(*domain.User) }).
		Return(nil).Once()
	_, err = svc.Register(domain.RegisterRequest{Number: "+998900000002", Password: "right"})
	assert.NoError(t, err)

	mockUsers.On("GetUserByNumber", "+998900000002").Return(saved, nil)
	_, err = svc.Login(domain.LoginRequest{Number: "+998900000002", Password: "wrong"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_ParseTokenRejectsGarbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.UserRepository), "test-secret", time.Hour)

	_, err := svc.ParseToken("definitely.not.ajwt")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	other := service.NewAuthService(new(mocks.UserRepository), "other-secret", time.Hour)
	mockUsers := new(mocks.UserRepository)
	mockUsers.On("GetUserByNumber", "+998901234567").Return(nil, sql.ErrNoRows).Once()
	mockUsers.On("InsertUser", mock.AnythingOfType("*domain.User")).Return(nil).Once()
	// token signed with a different secret must not validate
	legit := service.NewAuthService(mockUsers, "test-secret", time.Hour)
	user, err := legit.Register(domain.RegisterRequest{Number: "+998901234567", Password: "sekret"})
	assert.NoError(t, err)
	mockUsers.On("GetUserByNumber", "+998901234567").Return(user, nil)
	resp, err := legit.Login(domain.LoginRequest{Number: "+998901234567", Password: "sekret"})
	assert.NoError(t, err)

	_, err = other.ParseToken(resp.Token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_SetLanguage(t *testing.T) {
	mockUsers := new(mocks.UserRepository)
	mockUsers.On("UpdateUserLanguage", "user_1", "en").Return(nil)
	svc := service.NewAuthService(mockUsers, "test-secret", time.Hour)

	assert.NoError(t, svc.SetLanguage("user_1", "en"))
	assert.ErrorIs(t, svc.SetLanguage("user_1", "fr"), service.ErrUnsupportedLanguage)
}
