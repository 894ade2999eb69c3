package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"portfolioCPT/internal/apperrors"
	"portfolioCPT/internal/models"
)

type blogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) BlogRepository {
	return &blogRepository{db: db}
}

// isUniqueViolation проверяет, что ошибка - нарушение уникального
// ограничения Postgres (код 23505) по указанной колонке
func isUniqueViolation(err error, constraintPart string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, constraintPart)
	}
	return false
}

// Create вставляет пост. Уникальность слага обеспечивает индекс в БД:
// при нарушении 23505 слаг получает суффикс-таймстемп и вставка повторяется один раз.
func (r *blogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	if post.Tags == nil {
		post.Tags = pq.StringArray{}
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO blog_posts
		(post_id, title, slug, short_description, body, featured_image, is_published,
		 published_at, tags, meta_title, meta_description, read_time, views, created_at, updated_at)
		VALUES
		(:post_id, :title, :slug, :short_description, :body, :featured_image, :is_published,
		 :published_at, :tags, :meta_title, :meta_description, :read_time, :views, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isUniqueViolation(err, "slug") {
			post.Slug = fmt.Sprintf("%s-%d", post.Slug, time.Now().UnixMilli())
			if _, retryErr := r.db.NamedExecContext(ctx, query, post); retryErr != nil {
				return fmt.Errorf("ошибка при повторной вставке поста: %w", retryErr)
			}
			return nil
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, postID string) (*models.BlogPost, error) {
	var post models.BlogPost

	query := `SELECT * FROM blog_posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.BlogPost, error) {
	var post models.BlogPost

	query := `SELECT * FROM blog_posts WHERE slug = $1`
	if publishedOnly {
		query += ` AND is_published = TRUE`
	}

	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост со слагом %s: %w", slug, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста по слагу: %w", err)
	}

	return &post, nil
}

func orderClause(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "title-asc":
		return "title ASC"
	case "title-desc":
		return "title DESC"
	case "most-viewed":
		return "views DESC"
	case "recently-updated":
		return "updated_at DESC"
	default: // newest и все нераспознанные значения
		return "created_at DESC"
	}
}

// List возвращает страницу постов и общее количество под фильтром.
// Поиск - регистронезависимое совпадение по заголовку, описанию или тегу (OR).
func (r *blogRepository) List(ctx context.Context, params BlogListParams) ([]models.BlogPost, int, error) {
	var conditions []string
	var args []interface{}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		pattern := len(args)
		args = append(args, params.Search)
		exact := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR short_description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE lower(tag) = lower($%d)))",
			pattern, pattern, exact))
	}

	if params.Tag != "" {
		args = append(args, params.Tag)
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE lower(tag) = lower($%d))", len(args)))
	}

	if params.Published != nil {
		args = append(args, *params.Published)
		conditions = append(conditions, fmt.Sprintf("is_published = $%d", len(args)))
	}

	whereSQL := ""
	if len(conditions) > 0 {
		whereSQL = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM blog_posts" + whereSQL
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("ошибка при подсчете постов: %w", err)
	}

	offset := (params.Page - 1) * params.Limit
	args = append(args, params.Limit, offset)
	query := fmt.Sprintf("SELECT * FROM blog_posts%s ORDER BY %s LIMIT $%d OFFSET $%d",
		whereSQL, orderClause(params.Sort), len(args)-1, len(args))

	var posts []models.BlogPost
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, total, nil
}

func (r *blogRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM blog_posts WHERE slug = $1 AND post_id <> $2`

	err := r.db.GetContext(ctx, &count, query, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке слага: %w", err)
	}

	return count > 0, nil
}

func (r *blogRepository) Update(ctx context.Context, post *models.BlogPost) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE blog_posts SET
			title = :title,
			slug = :slug,
			short_description = :short_description,
			body = :body,
			featured_image = :featured_image,
			is_published = :is_published,
			published_at = :published_at,
			tags = :tags,
			meta_title = :meta_title,
			meta_description = :meta_description,
			read_time = :read_time,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", post.PostID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM blog_posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *blogRepository) IncrementViews(ctx context.Context, postID string) error {
	query := `UPDATE blog_posts SET views = views + 1 WHERE post_id = $1`

	_, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении счетчика просмотров: %w", err)
	}

	return nil
}
