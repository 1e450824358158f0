package service

import (
	"errors"
	"fmt"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/repository"
)

// ErrEmptyVocabulary is reported when an operation needs at least one saved word
var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// SaveWordPair saves a word-translation pair and returns the assigned id
func (s *WordService) SaveWordPair(userID int64, word, translation string) (int, error) {
	if word == "" || translation == "" {
		return 0, fmt.Errorf("word and translation cannot be empty")
	}
	return s.wordRepo.SaveWord(userID, word, translation)
}

// GetWords returns the user's words in insertion order
func (s *WordService) GetWords(userID int64) ([]domain.Word, error) {
	return s.wordRepo.GetWords(userID)
}

// RandomWord returns a random word from the user's vocabulary
func (s *WordService) RandomWord(userID int64) (*domain.Word, error) {
	word, err := s.wordRepo.GetRandomWord(userID)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, ErrEmptyVocabulary
	}
	return word, nil
}

// DeleteWord removes a word owned by the user
func (s *WordService) DeleteWord(userID int64, wordID int) error {
	return s.wordRepo.DeleteWord(userID, wordID)
}

// CountWords returns how many words the user has
func (s *WordService) CountWords(userID int64) (int, error) {
	return s.wordRepo.CountWords(userID)
}
