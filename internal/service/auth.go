package service

import (
	"vocabtrainer/internal/repository"
)

// AuthService handles user registration
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates the user record on first contact.
// Re-registration is a no-op, never an error.
func (s *AuthService) Register(userID int64, username string) error {
	return s.userRepo.EnsureUser(userID, username)
}
