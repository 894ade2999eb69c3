package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"portfolioCPT/internal/apperrors"
	"portfolioCPT/internal/models"
)

type productRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ProductID == "" {
		product.ProductID = uuid.New().String()
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `
		INSERT INTO products (product_id, title, link, image, created_at, updated_at)
		VALUES (:product_id, :title, :link, :image, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("ошибка при создании продукта: %w", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product

	query := `SELECT * FROM products WHERE product_id = $1`

	err := r.db.GetContext(ctx, &product, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("продукт с ID %s: %w", productID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении продукта: %w", err)
	}

	return &product, nil
}

// List возвращает страницу продуктов, поиск - по заголовку без учета регистра
func (r *productRepository) List(ctx context.Context, page, limit int, search string) ([]models.Product, int, error) {
	whereSQL := ""
	var args []interface{}

	if search != "" {
		whereSQL = " WHERE title ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM products" + whereSQL
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("ошибка при подсчете продуктов: %w", err)
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		whereSQL, len(args)-1, len(args))

	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, fmt.Errorf("ошибка при получении продуктов: %w", err)
	}

	return products, total, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now()

	query := `
		UPDATE products SET
			title = :title,
			link = :link,
			image = :image,
			updated_at = :updated_at
		WHERE product_id = :product_id
	`

	result, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении продукта: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("продукт с ID %s: %w", product.ProductID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1`

	result, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении продукта: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("продукт с ID %s: %w", productID, apperrors.ErrNotFound)
	}

	return nil
}
