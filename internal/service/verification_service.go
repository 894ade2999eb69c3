package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"portfolioCPT/internal/apperrors"
	"portfolioCPT/internal/config"
	"portfolioCPT/internal/mailer"
	"portfolioCPT/internal/models"
	"portfolioCPT/internal/repository"
)

const verificationCodeTTL = 10 * time.Minute

type VerificationService interface {
	Signup(ctx context.Context, email, password string) error
	SendVerification(ctx context.Context, email, password string) error
	HasAdmin(ctx context.Context) (bool, error)
}

type verificationService struct {
	adminRepo repository.AdminRepository
	mail      mailer.Mailer
	cfg       *config.Config
}

func NewVerificationService(adminRepo repository.AdminRepository, mail mailer.Mailer, cfg *config.Config) VerificationService {
	return &verificationService{
		adminRepo: adminRepo,
		mail:      mail,
		cfg:       cfg,
	}
}

// generateCode возвращает равномерный шестизначный код из диапазона 100000-999999
func generateCode() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

// Signup создает неподтвержденного админа и отправляет код на почту.
// Email обязан совпадать с настроенным ADMIN_EMAIL.
// Код сохраняется до отправки письма: если письмо не ушло, код останется
// в БД и будет перезаписан следующим вызовом.
func (s *verificationService) Signup(ctx context.Context, email, password string) error {
	if email != s.cfg.AdminEmail {
		return apperrors.ErrInvalidCredentials
	}

	code := generateCode()
	expiry := time.Now().Add(verificationCodeTTL)

	admin := &models.Admin{
		Email:              email,
		VerificationCode:   &code,
		VerificationExpiry: &expiry,
		IsVerified:         false,
	}

	if err := s.adminRepo.CreateAdmin(ctx, admin, password); err != nil {
		return err
	}

	if err := s.mail.SendVerificationCode(email, code); err != nil {
		return err
	}

	return nil
}

// SendVerification перевыпускает код для существующего админа.
// Пароль проверяется до любой мутации: при неверном пароле код не трогаем.
func (s *verificationService) SendVerification(ctx context.Context, email, password string) error {
	if email != s.cfg.AdminEmail {
		return apperrors.ErrInvalidCredentials
	}

	admin, err := s.adminRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrInvalidCredentials
		}
		return err
	}

	code := generateCode()
	expiry := time.Now().Add(verificationCodeTTL)

	if err := s.adminRepo.SetVerificationCode(ctx, admin.AdminID, code, expiry); err != nil {
		return err
	}

	if err := s.mail.SendVerificationCode(email, code); err != nil {
		return err
	}

	return nil
}

func (s *verificationService) HasAdmin(ctx context.Context) (bool, error) {
	count, err := s.adminRepo.CountAdmins(ctx)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
