package service

import (
	"crypto/subtle"
	"errors"
	"os"
	"time"

	"dermclinic/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles clinic dashboard authentication
type AuthService struct {
	username  string
	password  string
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("DASHBOARD_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("DASHBOARD_PASSWORD")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		username:  username,
		password:  password,
		jwtSecret: []byte(secret),
		tokenTTL:  12 * time.Hour,
	}
}

// Login validates credentials and returns a dashboard session token. The
// password check is constant-time; an empty configured password always
// fails so the dashboard cannot be opened by misconfiguration.
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if s.password == "" {
		return nil, ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	dashboardID := "dash_" + uuid.New().String()[:8]

	claims := &model.DashboardClaims{
		DashboardID: dashboardID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:       tokenString,
		DashboardID: dashboardID,
	}, nil
}

// ValidateDashboardToken validates a dashboard JWT and returns claims
func (s *AuthService) ValidateDashboardToken(tokenString string) (*model.DashboardClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.DashboardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.DashboardClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
