package postgres

import (
	"database/sql"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/repository"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SaveWord saves a word-translation pair and returns the assigned id
func (r *WordRepo) SaveWord(userID int64, word, translation string) (int, error) {
	query := `
		INSERT INTO words (user_id, word, translation)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(query, userID, word, translation).Scan(&id)
	return id, err
}

// GetWords returns the user's words in insertion order
func (r *WordRepo) GetWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT id, user_id, word, translation, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.UserID, &w.Word, &w.Translation, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// GetRandomWord returns a uniformly random word for the user.
// Returns nil without error when the vocabulary is empty.
func (r *WordRepo) GetRandomWord(userID int64) (*domain.Word, error) {
	var w domain.Word
	query := `
		SELECT id, user_id, word, translation, created_at
		FROM words
		WHERE user_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(&w.ID, &w.UserID, &w.Word, &w.Translation, &w.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// DeleteWord removes a word owned by the user
func (r *WordRepo) DeleteWord(userID int64, wordID int) error {
	query := `
		DELETE FROM words
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.Exec(query, wordID, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrWordNotFound
	}

	return nil
}

// CountWords returns how many words the user has
func (r *WordRepo) CountWords(userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM words WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}
