package services_test

import (
	"testing"
	"time"

	"boutique/internal/apperrors"
	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

var testAdmin = services.AdminCredentials{
	Email:    "admin@example.com",
	Password: "admin12345",
}

func newAuthFixture() (*services.AuthService, *repositories.MockUserRepository) {
	userRepo := repositories.NewMockUserRepository()
	return services.NewAuthService(userRepo, testSecret, testAdmin), userRepo
}

func TestAuthService_Register(t *testing.T) {
	authService, userRepo := newAuthFixture()

	token, err := authService.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := userRepo.GetByEmail("jane@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.NotEqual(t, "password123", user.Password)
	assert.NotNil(t, user.CartData)
	assert.Empty(t, user.CartData)

	userID, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	authService, _ := newAuthFixture()

	_, err := authService.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)

	_, err = authService.Register("Other Jane", "jane@example.com", "password456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAuthService_RegisterShortPassword(t *testing.T) {
	authService, _ := newAuthFixture()

	_, err := authService.Register("Jane Doe", "jane@example.com", "short")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestAuthService_Login(t *testing.T) {
	authService, _ := newAuthFixture()

	_, err := authService.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)

	token, cart, err := authService.Login("jane@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotNil(t, cart)

	_, err = authService.ValidateToken(token)
	assert.NoError(t, err)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	authService, _ := newAuthFixture()

	_, err := authService.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)

	_, _, err = authService.Login("jane@example.com", "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// Unknown email produces the same message as a wrong password.
	_, _, err2 := authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err2, apperrors.ErrUnauthorized)
	assert.Equal(t, err.Error(), err2.Error())
}

func TestAuthService_LoginAdmin(t *testing.T) {
	authService, _ := newAuthFixture()

	token, err := authService.LoginAdmin(testAdmin.Email, testAdmin.Password)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, authService.ValidateAdminToken(token))

	_, err = authService.LoginAdmin(testAdmin.Email, "wrongpassword")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = authService.LoginAdmin("nobody@example.com", testAdmin.Password)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_UserTokenIsNotAdmin(t *testing.T) {
	authService, _ := newAuthFixture()

	token, err := authService.Register("Jane Doe", "jane@example.com", "password123")
	assert.NoError(t, err)

	err = authService.ValidateAdminToken(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_AdminTokenIsNotUser(t *testing.T) {
	authService, _ := newAuthFixture()

	token, err := authService.LoginAdmin(testAdmin.Email, testAdmin.Password)
	assert.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_ValidateTokenGarbage(t *testing.T) {
	authService, _ := newAuthFixture()

	_, err := authService.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_ValidateTokenWrongSecret(t *testing.T) {
	authService, _ := newAuthFixture()

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "someone",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("other-secret"))
	assert.NoError(t, err)

	_, err = authService.ValidateToken(signed)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_ValidateTokenExpired(t *testing.T) {
	authService, _ := newAuthFixture()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "someone",
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = authService.ValidateToken(signed)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "expired")
}
