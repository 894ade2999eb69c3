package handlers

import (
	"github.com/go-playground/validator/v10"
	"portfolioCPT/internal/config"
	"portfolioCPT/internal/database"
	"portfolioCPT/internal/service"
)

type Handlers struct {
	AuthService         service.AuthService
	VerificationService service.VerificationService
	BlogService         service.BlogService
	ProductService      service.ProductService
	MediaService        service.MediaService
	ContactService      service.ContactService
	DB                  *database.DB
	Cfg                 *config.Config
	Validate            *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:         services.Auth,
		VerificationService: services.Verification,
		BlogService:         services.Blog,
		ProductService:      services.Product,
		MediaService:        services.Media,
		ContactService:      services.Contact,
		DB:                  db,
		Cfg:                 config,
		Validate:            validator.New(),
	}
}
