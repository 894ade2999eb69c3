package service

import (
	"context"
	"log"
	"time"

	"github.com/lib/pq"
	"portfolioCPT/internal/models"
	"portfolioCPT/internal/repository"
)

type CreateBlogRequest struct {
	Title            string
	Slug             string
	ShortDescription string
	Body             string
	FeaturedImage    *string
	IsPublished      bool
	Tags             []string
	MetaTitle        *string
	MetaDescription  *string
}

// UpdateBlogRequest - частичное обновление: nil-поля не трогаются
type UpdateBlogRequest struct {
	Title            *string
	ShortDescription *string
	Body             *string
	FeaturedImage    *string
	IsPublished      *bool
	Tags             []string
	MetaTitle        *string
	MetaDescription  *string
}

type BlogService interface {
	CreateBlog(ctx context.Context, req CreateBlogRequest) (*models.BlogPost, error)
	UpdateBlog(ctx context.Context, postID string, req UpdateBlogRequest) (*models.BlogPost, error)
	DeleteBlog(ctx context.Context, postID string) error
	GetBlog(ctx context.Context, postID string) (*models.BlogPost, error)
	ListBlogs(ctx context.Context, params repository.BlogListParams) ([]models.BlogPost, int, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
	media    MediaService
}

func NewBlogService(blogRepo repository.BlogRepository, media MediaService) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		media:    media,
	}
}

// CreateBlog выводит слаг из заголовка (если не задан), считает время чтения
// и проставляет publishedAt для сразу публикуемых постов
func (s *blogService) CreateBlog(ctx context.Context, req CreateBlogRequest) (*models.BlogPost, error) {
	slug := req.Slug
	if slug == "" {
		slug = GenerateSlug(req.Title)
	}

	post := &models.BlogPost{
		Title:            req.Title,
		Slug:             slug,
		ShortDescription: req.ShortDescription,
		Body:             req.Body,
		FeaturedImage:    req.FeaturedImage,
		IsPublished:      req.IsPublished,
		Tags:             pq.StringArray(req.Tags),
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		ReadTime:         CalculateReadTime(req.Body),
	}

	if req.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdateBlog применяет частичное обновление. Слаг пересчитывается только при
// смене заголовка и принимается только если не занят другим постом,
// иначе молча остается старый. Переходы публикации:
// false->true ставит publishedAt, true->false сбрасывает, повтор не трогает.
func (s *blogService) UpdateBlog(ctx context.Context, postID string, req UpdateBlogRequest) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != post.Title {
		newSlug := GenerateSlug(*req.Title)

		taken, err := s.blogRepo.SlugExists(ctx, newSlug, postID)
		if err != nil {
			return nil, err
		}

		if !taken {
			post.Slug = newSlug
		}

		post.Title = *req.Title
	}

	if req.ShortDescription != nil {
		post.ShortDescription = *req.ShortDescription
	}

	if req.Body != nil {
		post.Body = *req.Body
		post.ReadTime = CalculateReadTime(*req.Body)
	}

	if req.FeaturedImage != nil {
		if post.FeaturedImage != nil && *post.FeaturedImage != *req.FeaturedImage {
			s.media.DeleteByURL(ctx, *post.FeaturedImage)
		}
		post.FeaturedImage = req.FeaturedImage
	}

	if req.IsPublished != nil {
		if *req.IsPublished && !post.IsPublished {
			now := time.Now()
			post.PublishedAt = &now
		} else if !*req.IsPublished {
			post.PublishedAt = nil
		}
		post.IsPublished = *req.IsPublished
	}

	if req.Tags != nil {
		post.Tags = pq.StringArray(req.Tags)
	}

	if req.MetaTitle != nil {
		post.MetaTitle = req.MetaTitle
	}

	if req.MetaDescription != nil {
		post.MetaDescription = req.MetaDescription
	}

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeleteBlog сначала пытается удалить обложку из хранилища (лучшая попытка),
// затем удаляет строку: сбой хранилища удаление поста не блокирует
func (s *blogService) DeleteBlog(ctx context.Context, postID string) error {
	post, err := s.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.FeaturedImage != nil && *post.FeaturedImage != "" {
		s.media.DeleteByURL(ctx, *post.FeaturedImage)
	}

	return s.blogRepo.Delete(ctx, postID)
}

func (s *blogService) GetBlog(ctx context.Context, postID string) (*models.BlogPost, error) {
	return s.blogRepo.GetByID(ctx, postID)
}

func (s *blogService) ListBlogs(ctx context.Context, params repository.BlogListParams) ([]models.BlogPost, int, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}

	return s.blogRepo.List(ctx, params)
}

// GetPublishedBySlug отдает опубликованный пост для публичной страницы
// и увеличивает счетчик просмотров
func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}

	if err := s.blogRepo.IncrementViews(ctx, post.PostID); err != nil {
		log.Printf("Предупреждение: не удалось обновить просмотры поста %s: %v", post.PostID, err)
	} else {
		post.Views++
	}

	return post, nil
}
