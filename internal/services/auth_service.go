package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"boutique/internal/apperrors"
	"boutique/internal/models"
	"boutique/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials are the configured credentials for the admin panel.
// There is no admin user record; the pair is compared directly.
type AdminCredentials struct {
	Email    string
	Password string
}

// AuthService handles registration, login and token verification for
// both customers and the admin.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	admin      AdminCredentials
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, admin AdminCredentials) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		admin:      admin,
		tokenDurat: 24 * time.Hour,
	}
}

// Register creates a new user with an empty cart and returns a signed
// token for the fresh session.
func (s *AuthService) Register(name, email, password string) (string, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return "", fmt.Errorf("%w: user already exists", apperrors.ErrInvalidInput)
	}
	if len(password) < 8 {
		return "", fmt.Errorf("%w: password must be at least 8 characters", apperrors.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		CartData: models.NewCart(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	return s.createUserToken(user.ID)
}

// Login authenticates a user and returns a token plus the persisted
// cart, which the client uses to seed its local cache.
func (s *AuthService) Login(email, password string) (string, models.Cart, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, err := s.createUserToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	cart := user.CartData
	if cart == nil {
		cart = models.NewCart()
	}
	return token, cart, nil
}

// LoginAdmin authenticates against the configured admin credentials and
// returns a token carrying the admin claim.
func (s *AuthService) LoginAdmin(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.admin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	if !emailOK || !passOK {
		return "", fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"admin": true,
		"exp":   time.Now().Add(s.tokenDurat).Unix(),
		"iat":   time.Now().Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) createUserToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(s.tokenDurat).Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a user token and returns the user ID it carries.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: token carries no user identity", apperrors.ErrUnauthorized)
	}
	return userID, nil
}

// ValidateAdminToken parses a token and verifies the admin claim.
func (s *AuthService) ValidateAdminToken(tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}
	if isAdmin, ok := claims["admin"].(bool); !ok || !isAdmin {
		return fmt.Errorf("%w: admin privileges required", apperrors.ErrUnauthorized)
	}
	return nil
}

func (s *AuthService) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("%w: token expired", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
}
