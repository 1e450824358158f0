package domain

import "time"

// User represents a registered bot user
type User struct {
	UserID    int64
	Username  string
	CreatedAt time.Time
}
