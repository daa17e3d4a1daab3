package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/dberrors"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	DB *pgxpool.Pool
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) selectUserQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "email", "password", "first_name", "last_name", "role",
		"is_active", "last_login_at", "created_at", "updated_at").
		From("users").
		PlaceholderFormat(squirrel.Dollar)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Role,
		&u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns its id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := squirrel.Insert("users").
		Columns("email", "password", "first_name", "last_name", "role", "is_active").
		Values(user.Email, user.Password, user.FirstName, user.LastName, user.Role, true).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, err
	}
	return id, nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sqlStr, args, err := r.selectUserQuery().Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRow(ctx, sqlStr, args...))
}

// TouchLastLogin stamps the user's last login time.
func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.DB.Exec(ctx, "UPDATE users SET last_login_at = now() WHERE id = $1", id)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating last login time")
	}
	return err
}
