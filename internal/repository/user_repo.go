package repository

import (
	"database/sql"
	stderrors "errors"
	"fmt"

	"hostelia/internal/db"
)

type UserRepository interface {
	// Lookups return (nil, nil) when no user matches.
	GetByEmail(email string) (*db.User, error)
	GetByGoogleID(googleID string) (*db.User, error)
	GetByAppleID(appleID string) (*db.User, error)
	GetByID(id int) (*db.User, error)
	Create(user *db.User) error
	// MarkReturning clears the is_new_user flag after the first login.
	MarkReturning(userID int) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(database *sql.DB) UserRepository {
	return &userRepository{db: database}
}

const userColumns = `id, name, email, password_hash, google_id, apple_id, role,
	is_new_user, created_at, updated_at`

func (r *userRepository) getBy(clause string, arg interface{}) (*db.User, error) {
	var u db.User
	err := r.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE `+clause, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.GoogleID, &u.AppleID,
		&u.Role, &u.IsNewUser, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(email string) (*db.User, error) {
	return r.getBy("email = $1", email)
}

func (r *userRepository) GetByGoogleID(googleID string) (*db.User, error) {
	return r.getBy("google_id = $1", googleID)
}

func (r *userRepository) GetByAppleID(appleID string) (*db.User, error) {
	return r.getBy("apple_id = $1", appleID)
}

func (r *userRepository) GetByID(id int) (*db.User, error) {
	return r.getBy("id = $1", id)
}

func (r *userRepository) Create(user *db.User) error {
	err := r.db.QueryRow(`
		INSERT INTO users (name, email, password_hash, google_id, apple_id, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_new_user, created_at, updated_at`,
		user.Name, user.Email, user.PasswordHash, user.GoogleID, user.AppleID, user.Role,
	).Scan(&user.ID, &user.IsNewUser, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

func (r *userRepository) MarkReturning(userID int) error {
	_, err := r.db.Exec(`
		UPDATE users SET is_new_user = FALSE, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error marking user returning: %w", err)
	}
	return nil
}
