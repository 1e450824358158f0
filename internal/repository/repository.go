package repository

import (
	"errors"

	"vocabtrainer/internal/domain"
)

// ErrWordNotFound is returned when a word does not exist or belongs to another user
var ErrWordNotFound = errors.New("word not found")

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUser(userID int64, username string) error
}

// WordRepository defines word data operations
type WordRepository interface {
	SaveWord(userID int64, word, translation string) (int, error)
	GetWords(userID int64) ([]domain.Word, error)
	GetRandomWord(userID int64) (*domain.Word, error)
	DeleteWord(userID int64, wordID int) error
	CountWords(userID int64) (int, error)
}

// StatsRepository defines quiz statistics operations.
// RecordOutcome must be a single atomic insert-or-increment.
type StatsRepository interface {
	RecordOutcome(userID int64, day string, correct bool) error
	GetDailyStat(userID int64, day string) (*domain.DailyStat, error)
	GetAllTimeStat(userID int64) (*domain.DailyStat, error)
}
