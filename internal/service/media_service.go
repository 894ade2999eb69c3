package service

import (
	"context"
	"io"
	"log"
	"path"
	"strings"

	"portfolioCPT/internal/apperrors"
	"portfolioCPT/internal/config"
	"portfolioCPT/internal/storage"
)

// допустимые типы изображений, как на стороне загрузки оригинального сайта
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type MediaService interface {
	Upload(ctx context.Context, fileName, contentType string, size int64, file io.Reader) (*UploadResult, error)
	DeleteByURL(ctx context.Context, imageURL string)
	DeleteByPublicID(ctx context.Context, publicID string) error
}

type mediaService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewMediaService(storage storage.Storage, cfg *config.Config) MediaService {
	return &mediaService{
		storage: storage,
		cfg:     cfg,
	}
}

// ExtractPublicID выделяет идентификатор объекта из URL:
// последний сегмент пути без расширения
func ExtractPublicID(imageURL string) string {
	base := path.Base(imageURL)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}

// Upload проверяет тип и размер до какого-либо сетевого вызова
func (s *mediaService) Upload(ctx context.Context, fileName, contentType string, size int64, file io.Reader) (*UploadResult, error) {
	if !allowedImageTypes[contentType] {
		return nil, apperrors.ErrInvalidFileType
	}

	if size > s.cfg.MaxUploadSize {
		return nil, apperrors.ErrFileTooLarge
	}

	objectName, imageURL, err := s.storage.UploadImage(ctx, fileName, contentType, file, size)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:      imageURL,
		PublicID: ExtractPublicID(objectName),
	}, nil
}

// DeleteByURL удаляет внешний объект по ссылке. Лучшая попытка: любые ошибки
// только логируются, чтобы сбой хранилища не блокировал операции с контентом.
func (s *mediaService) DeleteByURL(ctx context.Context, imageURL string) {
	publicID := ExtractPublicID(imageURL)
	if publicID == "" {
		return
	}

	if err := s.DeleteByPublicID(ctx, publicID); err != nil {
		log.Printf("Предупреждение: не удалось удалить изображение %s: %v", imageURL, err)
	}
}

// DeleteByPublicID удаляет объект по его публичному идентификатору.
// Отсутствующий объект считается успешно удаленным.
func (s *mediaService) DeleteByPublicID(ctx context.Context, publicID string) error {
	objectName, err := s.storage.FindObjectByPublicID(ctx, publicID)
	if err != nil {
		return err
	}

	if objectName == "" {
		return nil
	}

	return s.storage.DeleteImage(ctx, objectName)
}
