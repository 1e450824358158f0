package postgres

import (
	"database/sql"
	"testing"
	"time"

	"vocabtrainer/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestWordRepo_SaveWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(123)
	word := "perro"
	translation := "dog"

	mock.ExpectQuery("INSERT INTO words").
		WithArgs(userID, word, translation).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	id, err := repo.SaveWord(userID, word, translation)

	assert.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_GetWords(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		expectedLen   int
		expectedError bool
	}{
		{
			name:   "words in insertion order",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"id", "user_id", "word", "translation", "created_at"}).
				AddRow(1, 123, "gato", "cat", time.Now()).
				AddRow(2, 123, "perro", "dog", time.Now()),
			expectedLen:   2,
			expectedError: false,
		},
		{
			name:          "empty vocabulary",
			userID:        456,
			mockRows:      sqlmock.NewRows([]string{"id", "user_id", "word", "translation", "created_at"}),
			expectedLen:   0,
			expectedError: false,
		},
		{
			name:   "scan error",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"id", "user_id", "word", "translation", "created_at"}).
				AddRow("invalid", 123, "gato", "cat", time.Now()),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			mock.ExpectQuery("SELECT id, user_id, word, translation, created_at FROM words").
				WithArgs(tt.userID).
				WillReturnRows(tt.mockRows)

			words, err := repo.GetWords(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, words, tt.expectedLen)
				if tt.expectedLen > 1 {
					assert.Less(t, words[0].ID, words[1].ID)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_GetRandomWord(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name:   "word found",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"id", "user_id", "word", "translation", "created_at"}).
				AddRow(1, 123, "gato", "cat", time.Now()),
			expectedNil:   false,
			expectedError: false,
		},
		{
			name:          "no words",
			userID:        456,
			mockError:     sql.ErrNoRows,
			expectedNil:   true,
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			query := "SELECT id, user_id, word, translation, created_at FROM words WHERE user_id = \\$1 ORDER BY RANDOM\\(\\) LIMIT 1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			word, err := repo.GetRandomWord(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.expectedNil {
					assert.Nil(t, word)
				} else {
					assert.NotNil(t, word)
					assert.Equal(t, tt.userID, word.UserID)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_DeleteWord(t *testing.T) {
	tests := []struct {
		name         string
		userID       int64
		wordID       int
		rowsAffected int64
		expectedErr  error
	}{
		{
			name:         "owned word deleted",
			userID:       123,
			wordID:       1,
			rowsAffected: 1,
			expectedErr:  nil,
		},
		{
			name:         "word not owned",
			userID:       456,
			wordID:       1,
			rowsAffected: 0,
			expectedErr:  repository.ErrWordNotFound,
		},
		{
			name:         "word does not exist",
			userID:       123,
			wordID:       99,
			rowsAffected: 0,
			expectedErr:  repository.ErrWordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			mock.ExpectExec("DELETE FROM words").
				WithArgs(tt.wordID, tt.userID).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.DeleteWord(tt.userID, tt.wordID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_CountWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM words").
		WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountWords(123)

	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
