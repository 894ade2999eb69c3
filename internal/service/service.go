package service

import (
	"portfolioCPT/internal/config"
	"portfolioCPT/internal/mailer"
	"portfolioCPT/internal/repository"
	"portfolioCPT/internal/storage"
)

type Service struct {
	Auth         AuthService
	Verification VerificationService
	Blog         BlogService
	Product      ProductService
	Media        MediaService
	Contact      ContactService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, mail mailer.Mailer) *Service {
	media := NewMediaService(storage, cfg)

	return &Service{
		Auth:         NewAuthService(rep.Admin, cfg),
		Verification: NewVerificationService(rep.Admin, mail, cfg),
		Blog:         NewBlogService(rep.Blog, media),
		Product:      NewProductService(rep.Product, media),
		Media:        media,
		Contact:      NewContactService(mail),
	}
}
