package domain

import "time"

// Word represents a word-translation pair owned by a single user
type Word struct {
	ID          int
	UserID      int64
	Word        string
	Translation string
	CreatedAt   time.Time
}
