package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	"portfolioCPT/internal/apperrors"
	"portfolioCPT/internal/models"
)

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

// CreateAdmin создает единственного админа. Вставка защищена условием
// WHERE NOT EXISTS: если строка в admins уже есть, возвращается ErrAdminExists.
func (r *adminRepository) CreateAdmin(ctx context.Context, admin *models.Admin, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	admin.AdminID = uuid.New().String()
	admin.PasswordHash = string(hashedPassword)

	query := `
		INSERT INTO admins (admin_id, email, password_hash, verification_code, verification_expiry, is_verified)
		SELECT :admin_id, :email, :password_hash, :verification_code, :verification_expiry, :is_verified
		WHERE NOT EXISTS (SELECT 1 FROM admins)
	`

	result, err := r.db.NamedExecContext(ctx, query, admin)
	if err != nil {
		return fmt.Errorf("ошибка при создании админа: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке вставленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAdminExists
	}

	return nil
}

func (r *adminRepository) GetAdminByID(ctx context.Context, adminID string) (*models.Admin, error) {
	var admin models.Admin

	query := `SELECT * FROM admins WHERE admin_id = $1`

	err := r.db.GetContext(ctx, &admin, query, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("админ с ID %s: %w", adminID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении админа: %w", err)
	}

	return &admin, nil
}

func (r *adminRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin

	query := `SELECT * FROM admins WHERE email = $1`

	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("админ с email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении админа по email: %w", err)
	}

	return &admin, nil
}

func (r *adminRepository) CountAdmins(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете админов: %w", err)
	}

	return count, nil
}

func (r *adminRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := r.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return admin, nil
}

func (r *adminRepository) SetVerificationCode(ctx context.Context, adminID, code string, expiry time.Time) error {
	query := `
		UPDATE admins
		SET verification_code = $1, verification_expiry = $2, updated_at = CURRENT_TIMESTAMP
		WHERE admin_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, code, expiry, adminID)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении кода подтверждения: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("админ с ID %s: %w", adminID, apperrors.ErrNotFound)
	}

	return nil
}

// MarkVerified помечает админа подтвержденным и затирает одноразовый код
func (r *adminRepository) MarkVerified(ctx context.Context, adminID string) error {
	query := `
		UPDATE admins
		SET is_verified = TRUE, verification_code = NULL, verification_expiry = NULL, updated_at = CURRENT_TIMESTAMP
		WHERE admin_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, adminID)
	if err != nil {
		return fmt.Errorf("ошибка при подтверждении админа: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("админ с ID %s: %w", adminID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *adminRepository) UpdateEmail(ctx context.Context, adminID, email string) error {
	query := `
		UPDATE admins
		SET email = $1, updated_at = CURRENT_TIMESTAMP
		WHERE admin_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, email, adminID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении email: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("админ с ID %s: %w", adminID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, adminID, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	query := `
		UPDATE admins
		SET password_hash = $1, updated_at = CURRENT_TIMESTAMP
		WHERE admin_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, string(hashedPassword), adminID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении пароля: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("админ с ID %s: %w", adminID, apperrors.ErrNotFound)
	}

	return nil
}
