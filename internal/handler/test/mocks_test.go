package test

import (
	"context"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"portfolioCPT/internal/config"
	handlers "portfolioCPT/internal/handler"
	"portfolioCPT/internal/models"
	"portfolioCPT/internal/repository"
	"portfolioCPT/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password, verificationCode string) (*models.Admin, string, error) {
	args := m.Called(ctx, email, password, verificationCode)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.Admin), args.String(1), args.Error(2)
}

func (m *MockAuthService) GenerateToken(admin *models.Admin) (string, error) {
	args := m.Called(admin)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

func (m *MockAuthService) GetAdminFromToken(tokenString string) (*models.Admin, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAuthService) GetProfile(ctx context.Context, adminID string) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *MockAuthService) UpdateAdminEmail(ctx context.Context, adminID, email string) (*models.Admin, string, error) {
	args := m.Called(ctx, adminID, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.Admin), args.String(1), args.Error(2)
}

func (m *MockAuthService) UpdateAdminPassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	args := m.Called(ctx, adminID, oldPassword, newPassword)
	return args.Error(0)
}

type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Signup(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockVerificationService) SendVerification(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockVerificationService) HasAdmin(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) CreateBlog(ctx context.Context, req service.CreateBlogRequest) (*models.BlogPost, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogService) UpdateBlog(ctx context.Context, postID string, req service.UpdateBlogRequest) (*models.BlogPost, error) {
	args := m.Called(ctx, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogService) DeleteBlog(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBlogService) GetBlog(ctx context.Context, postID string) (*models.BlogPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogService) ListBlogs(ctx context.Context, params repository.BlogListParams) ([]models.BlogPost, int, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.BlogPost), args.Int(1), args.Error(2)
}

func (m *MockBlogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, req service.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, productID string, req service.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, productID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, page, limit int, search string) ([]models.Product, int, error) {
	args := m.Called(ctx, page, limit, search)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, fileName, contentType string, size int64, file io.Reader) (*service.UploadResult, error) {
	args := m.Called(ctx, fileName, contentType, size, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockMediaService) DeleteByURL(ctx context.Context, imageURL string) {
	m.Called(ctx, imageURL)
}

func (m *MockMediaService) DeleteByPublicID(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SendMessage(name, email, message string) error {
	args := m.Called(name, email, message)
	return args.Error(0)
}

// newTestHandlers собирает Handlers на моках вместо живых сервисов
func newTestHandlers() (*handlers.Handlers, *MockAuthService, *MockVerificationService, *MockBlogService, *MockProductService, *MockMediaService, *MockContactService) {
	auth := new(MockAuthService)
	verification := new(MockVerificationService)
	blog := new(MockBlogService)
	product := new(MockProductService)
	media := new(MockMediaService)
	contact := new(MockContactService)

	h := &handlers.Handlers{
		AuthService:         auth,
		VerificationService: verification,
		BlogService:         blog,
		ProductService:      product,
		MediaService:        media,
		ContactService:      contact,
		Cfg: &config.Config{
			JWTSecretKey:  "test-secret-key",
			MaxUploadSize: 5 * 1024 * 1024,
		},
		Validate: validator.New(),
	}

	return h, auth, verification, blog, product, media, contact
}
