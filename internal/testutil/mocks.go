package testutil

import (
	"vocabtrainer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SaveWord(userID int64, word, translation string) (int, error) {
	args := m.Called(userID, word, translation)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) GetWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetRandomWord(userID int64) (*domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) DeleteWord(userID int64, wordID int) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) CountWords(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

// MockStatsRepository is a mock for StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordOutcome(userID int64, day string, correct bool) error {
	args := m.Called(userID, day, correct)
	return args.Error(0)
}

func (m *MockStatsRepository) GetDailyStat(userID int64, day string) (*domain.DailyStat, error) {
	args := m.Called(userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStat), args.Error(1)
}

func (m *MockStatsRepository) GetAllTimeStat(userID int64) (*domain.DailyStat, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyStat), args.Error(1)
}
