package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"portfolioCPT/internal/apperrors"
	"portfolioCPT/internal/config"
	"portfolioCPT/internal/models"
	"portfolioCPT/internal/repository"
)

type AuthService interface {
	Authenticate(ctx context.Context, email, password, verificationCode string) (*models.Admin, string, error)
	GenerateToken(admin *models.Admin) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	GetAdminFromToken(tokenString string) (*models.Admin, error)
	GetProfile(ctx context.Context, adminID string) (*models.Admin, error)
	UpdateAdminEmail(ctx context.Context, adminID, email string) (*models.Admin, string, error)
	UpdateAdminPassword(ctx context.Context, adminID, oldPassword, newPassword string) error
}

type authService struct {
	adminRepo repository.AdminRepository
	cfg       *config.Config
}

func NewAuthService(adminRepo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Authenticate проверяет пароль и состояние подтверждения.
// Если передан verificationCode, он должен совпасть с сохраненным и не истечь:
// тогда админ помечается подтвержденным, а код затирается (одноразовый).
// Без кода вход разрешен только уже подтвержденному админу.
func (s *authService) Authenticate(ctx context.Context, email, password, verificationCode string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if verificationCode != "" {
		if admin.VerificationCode == nil ||
			*admin.VerificationCode != verificationCode ||
			admin.VerificationExpiry == nil ||
			admin.VerificationExpiry.Before(time.Now()) {
			return nil, "", apperrors.ErrInvalidOrExpiredCode
		}

		if err := s.adminRepo.MarkVerified(ctx, admin.AdminID); err != nil {
			return nil, "", err
		}

		admin.IsVerified = true
		admin.VerificationCode = nil
		admin.VerificationExpiry = nil
	} else if !admin.IsVerified {
		return nil, "", apperrors.ErrVerificationRequired
	}

	accessToken, err := s.GenerateToken(admin)
	if err != nil {
		return nil, "", err
	}

	return admin, accessToken, nil
}

func (s *authService) GenerateToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"adminId": admin.AdminID,
		"email":   admin.Email,
		"role":    "admin",
		"exp":     time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	return token, nil
}

func (s *authService) GetAdminFromToken(tokenString string) (*models.Admin, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("неверный формат claims")
	}

	adminID, ok1 := claims["adminId"].(string)
	email, ok2 := claims["email"].(string)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("неверные данные в токене")
	}

	return &models.Admin{
		AdminID: adminID,
		Email:   email,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, adminID string) (*models.Admin, error) {
	return s.adminRepo.GetAdminByID(ctx, adminID)
}

// UpdateAdminEmail меняет email и возвращает свежеподписанный токен с новым
// claim, чтобы клиент обновил сессию без повторного входа
func (s *authService) UpdateAdminEmail(ctx context.Context, adminID, email string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.GetAdminByID(ctx, adminID)
	if err != nil {
		return nil, "", err
	}

	if err := s.adminRepo.UpdateEmail(ctx, adminID, email); err != nil {
		return nil, "", err
	}

	admin.Email = email

	accessToken, err := s.GenerateToken(admin)
	if err != nil {
		return nil, "", err
	}

	return admin, accessToken, nil
}

func (s *authService) UpdateAdminPassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	admin, err := s.adminRepo.GetAdminByID(ctx, adminID)
	if err != nil {
		return err
	}

	// текущий пароль обязан совпасть
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(oldPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	// новый пароль должен отличаться от текущего
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(newPassword)); err == nil {
		return fmt.Errorf("новый пароль должен отличаться от текущего")
	}

	return s.adminRepo.UpdatePassword(ctx, adminID, newPassword)
}
