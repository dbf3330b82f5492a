package services

import (
	"errors"

	"resto_admin_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// AdminRole is the only role the back office knows about.
const AdminRole = "admin"

// --- Custom Service Errors for Auth ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// --- Auth DTOs ---
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(req LoginRequest) (*LoginResponse, error)
}

// --- authService Implementation ---
// A single administrator account, configured from the environment. The
// password is hashed once at startup so the plaintext is not retained.
type authService struct {
	adminUsername     string
	adminPasswordHash []byte
}

// NewAuthService creates a new instance of AuthService for the configured
// admin account.
func NewAuthService(adminUsername, adminPassword string) AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.LogError(err, "Failed to hash admin password")
	}
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: hash,
	}
}

func (s *authService) Login(req LoginRequest) (*LoginResponse, error) {
	if req.Username != s.adminUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(req.Username, AdminRole)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: token,
		Username:    req.Username,
		Role:        AdminRole,
	}, nil
}
