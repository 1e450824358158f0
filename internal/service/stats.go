package service

import (
	"time"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/repository"
)

// StatsService aggregates quiz statistics for reporting
type StatsService struct {
	wordRepo  repository.WordRepository
	statsRepo repository.StatsRepository
	now       func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(wordRepo repository.WordRepository, statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{
		wordRepo:  wordRepo,
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

// Summary collects the word count plus today's and all-time correctness counters.
// Days without quiz activity read as zeros.
func (s *StatsService) Summary(userID int64) (*domain.StatsSummary, error) {
	totalWords, err := s.wordRepo.CountWords(userID)
	if err != nil {
		return nil, err
	}

	today, err := s.statsRepo.GetDailyStat(userID, domain.DayKey(s.now()))
	if err != nil {
		return nil, err
	}

	allTime, err := s.statsRepo.GetAllTimeStat(userID)
	if err != nil {
		return nil, err
	}

	return &domain.StatsSummary{
		TotalWords: totalWords,
		Today:      *today,
		AllTime:    *allTime,
	}, nil
}
