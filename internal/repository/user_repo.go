package repository

import (
	"context"
	"fmt"

	"english_coaching/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

const userColumns = `id, username, email, display_name, password_hash, role, status, created, updated`

// UserRepository defines operations for user data.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type userRepository struct {
	db PgxIface
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db PgxIface) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. Uniqueness of email and username is enforced
// by the database; violations surface as ErrDuplicate.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (` + userColumns + `)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, sql,
		user.ID, user.Username, user.Email, user.DisplayName,
		user.PasswordHash, user.Role, user.Status, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email. Returns (nil, nil) when absent;
// the service layer decides how absence is reported.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByUsername retrieves a user by username (case-sensitive).
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// FindByID retrieves a user by id.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindAll lists all users ordered by creation time, newest first.
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	sql := `SELECT ` + userColumns + ` FROM users ORDER BY created DESC`
	if err := pgxscan.Select(ctx, r.db, &users, sql); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateStatus sets a user's account status and bumps the updated
// timestamp. Returns ErrNotFound when no such user exists.
func (r *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE users SET status = $2, updated = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, sql string, arg any) (*model.User, error) {
	user := &model.User{}
	if err := pgxscan.Get(ctx, r.db, user, sql, arg); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
