package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser creates the user record if it doesn't exist.
// Re-registration is a no-op.
func (r *UserRepo) EnsureUser(userID int64, username string) error {
	query := `
		INSERT INTO users (user_id, username)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, username)
	return err
}
