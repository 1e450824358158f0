package testutil

import (
	"time"

	"vocabtrainer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int, userID int64, word, translation string) *domain.Word {
	return &domain.Word{
		ID:          id,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}
