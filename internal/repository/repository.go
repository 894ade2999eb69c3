package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"portfolioCPT/internal/models"
)

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *models.Admin, password string) error
	GetAdminByID(ctx context.Context, adminID string) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	CountAdmins(ctx context.Context) (int, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.Admin, error)
	SetVerificationCode(ctx context.Context, adminID, code string, expiry time.Time) error
	MarkVerified(ctx context.Context, adminID string) error
	UpdateEmail(ctx context.Context, adminID, email string) error
	UpdatePassword(ctx context.Context, adminID, password string) error
}

// BlogListParams - параметры выборки постов (страница, поиск, фильтр, сортировка)
type BlogListParams struct {
	Page      int
	Limit     int
	Search    string
	Tag       string
	Published *bool
	Sort      string
}

type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, postID string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.BlogPost, error)
	List(ctx context.Context, params BlogListParams) ([]models.BlogPost, int, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, postID string) error
	IncrementViews(ctx context.Context, postID string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	List(ctx context.Context, page, limit int, search string) ([]models.Product, int, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, productID string) error
}

type Repository struct {
	Admin   AdminRepository
	Blog    BlogRepository
	Product ProductRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Admin:   NewAdminRepository(db),
		Blog:    NewBlogRepository(db),
		Product: NewProductRepository(db),
	}
}
