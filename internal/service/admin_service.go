package service

import (
	"context"
	"errors"
	"time"

	"readydoc-bot/internal/config"
	"readydoc-bot/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// IAdminService backs the ops dashboard API: operator login and the system
// log feed.
type IAdminService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	GetSystemLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error)
}

type adminService struct {
	cfg    *config.Config
	logger logger.ILogger
}

func NewAdminService(cfg *config.Config, log logger.ILogger) IAdminService {
	return &adminService{cfg: cfg, logger: log}
}

// Login checks the single configured operator account and issues a JWT.
func (s *adminService) Login(_ context.Context, email, password string) (string, error) {
	if email != s.cfg.Admin.Email {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":  email,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Admin.JWTSecret))
	if err != nil {
		return "", err
	}

	s.logger.Info("AdminService", "Operator logged in", map[string]interface{}{"email": email})
	return signed, nil
}

func (s *adminService) GetSystemLogs(_ context.Context, page, limit int, level string) ([]logger.LogEntry, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.logger.GetLogs(level, limit, (page-1)*limit)
}
