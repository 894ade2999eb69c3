package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"portfolioCPT/internal/apperrors"
	"portfolioCPT/internal/models"
)

var sixDigits = regexp.MustCompile(`^[1-9]\d{5}$`)

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := generateCode()
		assert.True(t, sixDigits.MatchString(code), "код %q должен быть шестизначным", code)
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Чужой email отклоняется", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockMail := new(MockMailer)
		svc := NewVerificationService(mockRepo, mockMail, testConfig())

		err := svc.Signup(ctx, "intruder@example.com", "password123")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		mockRepo.AssertNotCalled(t, "CreateAdmin", mock.Anything, mock.Anything, mock.Anything)
		mockMail.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything)
	})

	t.Run("Успешная регистрация с отправкой кода", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockMail := new(MockMailer)
		svc := NewVerificationService(mockRepo, mockMail, testConfig())

		var created *models.Admin
		mockRepo.On("CreateAdmin", ctx, mock.AnythingOfType("*models.Admin"), "password123").
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*models.Admin)
			}).
			Return(nil)
		mockMail.On("SendVerificationCode", "owner@example.com", mock.AnythingOfType("string")).
			Return(nil)

		err := svc.Signup(ctx, "owner@example.com", "password123")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.False(t, created.IsVerified)
		require.NotNil(t, created.VerificationCode)
		assert.True(t, sixDigits.MatchString(*created.VerificationCode))
		require.NotNil(t, created.VerificationExpiry)
		assert.WithinDuration(t, time.Now().Add(10*time.Minute), *created.VerificationExpiry, time.Minute)

		// в письме тот же код, что сохранен в БД
		mockMail.AssertCalled(t, "SendVerificationCode", "owner@example.com", *created.VerificationCode)
	})

	t.Run("Повторная регистрация", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockMail := new(MockMailer)
		svc := NewVerificationService(mockRepo, mockMail, testConfig())

		mockRepo.On("CreateAdmin", ctx, mock.AnythingOfType("*models.Admin"), "password123").
			Return(apperrors.ErrAdminExists)

		err := svc.Signup(ctx, "owner@example.com", "password123")

		assert.ErrorIs(t, err, apperrors.ErrAdminExists)
		mockMail.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything)
	})

	t.Run("Сбой почты после сохранения кода", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockMail := new(MockMailer)
		svc := NewVerificationService(mockRepo, mockMail, testConfig())

		mockRepo.On("CreateAdmin", ctx, mock.AnythingOfType("*models.Admin"), "password123").
			Return(nil)
		mockMail.On("SendVerificationCode", "owner@example.com", mock.AnythingOfType("string")).
			Return(errors.New("smtp: connection refused"))

		err := svc.Signup(ctx, "owner@example.com", "password123")

		// админ уже создан, ошибка отдается клиенту для повторной отправки
		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestSendVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("Перевыпуск кода", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockMail := new(MockMailer)
		svc := NewVerificationService(mockRepo, mockMail, testConfig())

		admin := verifiedAdmin()
		admin.IsVerified = false

		var issuedCode string
		mockRepo.On("VerifyPassword", ctx, "owner@example.com", "password123").
			Return(admin, nil)
		mockRepo.On("SetVerificationCode", ctx, admin.AdminID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				issuedCode = args.String(2)
			}).
			Return(nil)
		mockMail.On("SendVerificationCode", "owner@example.com", mock.AnythingOfType("string")).
			Return(nil)

		err := svc.SendVerification(ctx, "owner@example.com", "password123")

		require.NoError(t, err)
		assert.True(t, sixDigits.MatchString(issuedCode))
		mockMail.AssertCalled(t, "SendVerificationCode", "owner@example.com", issuedCode)
	})

	t.Run("Неверный пароль не трогает код", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockMail := new(MockMailer)
		svc := NewVerificationService(mockRepo, mockMail, testConfig())

		mockRepo.On("VerifyPassword", ctx, "owner@example.com", "wrong").
			Return(nil, apperrors.ErrInvalidCredentials)

		err := svc.SendVerification(ctx, "owner@example.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		mockRepo.AssertNotCalled(t, "SetVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockMail.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything)
	})
}

func TestHasAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Админ существует", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		svc := NewVerificationService(mockRepo, new(MockMailer), testConfig())

		mockRepo.On("CountAdmins", ctx).Return(1, nil)

		has, err := svc.HasAdmin(ctx)

		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("Админа нет", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		svc := NewVerificationService(mockRepo, new(MockMailer), testConfig())

		mockRepo.On("CountAdmins", ctx).Return(0, nil)

		has, err := svc.HasAdmin(ctx)

		require.NoError(t, err)
		assert.False(t, has)
	})
}
