package service

import (
	"context"

	"portfolioCPT/internal/models"
	"portfolioCPT/internal/repository"
)

type CreateProductRequest struct {
	Title string
	Link  string
	Image string
}

// UpdateProductRequest - частичное обновление: nil-поля не трогаются
type UpdateProductRequest struct {
	Title *string
	Link  *string
	Image *string
}

type ProductService interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	ListProducts(ctx context.Context, page, limit int, search string) ([]models.Product, int, error)
}

type productService struct {
	productRepo repository.ProductRepository
	media       MediaService
}

func NewProductService(productRepo repository.ProductRepository, media MediaService) ProductService {
	return &productService{
		productRepo: productRepo,
		media:       media,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Title: req.Title,
		Link:  req.Link,
		Image: req.Image,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct при замене картинки удаляет старую из хранилища (лучшая попытка)
func (s *productService) UpdateProduct(ctx context.Context, productID string, req UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		product.Title = *req.Title
	}

	if req.Link != nil {
		product.Link = *req.Link
	}

	if req.Image != nil && *req.Image != product.Image {
		s.media.DeleteByURL(ctx, product.Image)
		product.Image = *req.Image
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct сначала пытается удалить картинку, затем удаляет строку.
// Сбой или отсутствие внешнего объекта удаление продукта не блокирует.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if product.Image != "" {
		s.media.DeleteByURL(ctx, product.Image)
	}

	return s.productRepo.Delete(ctx, productID)
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

func (s *productService) ListProducts(ctx context.Context, page, limit int, search string) ([]models.Product, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	return s.productRepo.List(ctx, page, limit, search)
}
