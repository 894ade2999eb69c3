package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"portfolioCPT/internal/apperrors"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteJSON - функция для успешных ответов
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeValidationError отдает 400 с разбивкой по полям
func writeValidationError(w http.ResponseWriter, err error) {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			details[fieldErr.Field()] = fieldErr.Tag()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{Error: "Неверные данные", Details: details})
}

// writeServiceError превращает ошибки сервисов в HTTP статусы
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrAdminExists):
		WriteError(w, "Админ уже существует", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		WriteError(w, "Неверный email или пароль", http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrInvalidOrExpiredCode):
		WriteError(w, "Неверный или просроченный код подтверждения", http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrVerificationRequired):
		WriteError(w, "Требуется подтверждение email", http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInvalidFileType):
		WriteError(w, "Допустимы только изображения JPEG, PNG и WebP", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrFileTooLarge):
		WriteError(w, "Файл больше 5 МБ", http.StatusBadRequest)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
