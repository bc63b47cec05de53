package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminSuspended     = errors.New("admin account is suspended")
)

// AdminAuthService checks admin credentials against the admins table.
type AdminAuthService struct {
	db   *gorm.DB
	jwt  *JWTService
	cost int
}

func NewAdminAuthService(db *gorm.DB, jwt *JWTService) *AdminAuthService {
	return &AdminAuthService{db: db, jwt: jwt, cost: bcrypt.DefaultCost}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ════════════════════════════════════════════════════════════
// Login
// ════════════════════════════════════════════════════════════

// Login verifies the credentials, stamps last_login_at and issues a token.
// Unknown emails and wrong passwords both return ErrInvalidCredentials.
func (s *AdminAuthService) Login(ctx context.Context, email, password string) (*models.AdminLoginResponse, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !VerifyPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if admin.Status == models.AdminStatusSuspended {
		return nil, ErrAdminSuspended
	}

	now := time.Now().UTC()
	if err := s.db.WithContext(ctx).Model(&admin).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	admin.LastLoginAt = &now

	token, err := s.jwt.GenerateAdminJWT(admin.ID, admin.Email, admin.Role)
	if err != nil {
		return nil, err
	}
	return &models.AdminLoginResponse{Token: token, User: admin.ToResponse()}, nil
}

// EnsureAdmin creates the admin when the email is not taken yet and reports
// whether it did. An existing admin is left untouched.
func (s *AdminAuthService) EnsureAdmin(ctx context.Context, email, name, password, role string) (bool, error) {
	email = normalizeEmail(email)
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if len(password) < 8 {
		return false, errors.New("bootstrap password must be at least 8 characters")
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return false, err
	}
	admin := models.Admin{Email: email, Name: name, PasswordHash: hash, Role: role}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
