package apperrors

import "errors"

// Базовые ошибки приложения. Хендлеры превращают их в HTTP статусы
// через errors.Is, сервисы и репозитории оборачивают через %w.
var (
	ErrNotFound             = errors.New("запись не найдена")
	ErrAdminExists          = errors.New("админ уже существует")
	ErrInvalidCredentials   = errors.New("неверный email или пароль")
	ErrVerificationRequired = errors.New("требуется подтверждение email")
	ErrInvalidOrExpiredCode = errors.New("неверный или просроченный код подтверждения")
	ErrInvalidFileType      = errors.New("недопустимый тип файла")
	ErrFileTooLarge         = errors.New("файл слишком большой")
)
