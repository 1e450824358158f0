package postgres

import (
	"database/sql"

	"vocabtrainer/internal/domain"
)

// StatsRepo implements repository.StatsRepository
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo creates a new stats repository
func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// RecordOutcome bumps the user's counters for the day in one atomic upsert.
// Two outcomes landing on the same (user, day) row never lose an update.
func (r *StatsRepo) RecordOutcome(userID int64, day string, correct bool) error {
	delta := 0
	if correct {
		delta = 1
	}

	query := `
		INSERT INTO stats (user_id, date, correct, total)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, date)
		DO UPDATE SET
			correct = stats.correct + $3,
			total = stats.total + 1
	`
	_, err := r.db.Exec(query, userID, day, delta)
	return err
}

// GetDailyStat returns the user's counters for one day, zeros when absent
func (r *StatsRepo) GetDailyStat(userID int64, day string) (*domain.DailyStat, error) {
	var s domain.DailyStat
	query := `SELECT correct, total FROM stats WHERE user_id = $1 AND date = $2`
	err := r.db.QueryRow(query, userID, day).Scan(&s.Correct, &s.Total)

	if err == sql.ErrNoRows {
		return &domain.DailyStat{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// GetAllTimeStat returns the user's counters summed over all days
func (r *StatsRepo) GetAllTimeStat(userID int64) (*domain.DailyStat, error) {
	var s domain.DailyStat
	query := `
		SELECT COALESCE(SUM(correct), 0), COALESCE(SUM(total), 0)
		FROM stats
		WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(&s.Correct, &s.Total)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
