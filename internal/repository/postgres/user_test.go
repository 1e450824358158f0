package postgres

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_EnsureUser(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		username      string
		rowsAffected  int64
		mockError     error
		expectedError bool
	}{
		{
			name:          "new user created",
			userID:        123,
			username:      "alice",
			rowsAffected:  1,
			expectedError: false,
		},
		{
			name:          "existing user is a no-op",
			userID:        123,
			username:      "alice",
			rowsAffected:  0,
			expectedError: false,
		},
		{
			name:          "database error",
			userID:        456,
			username:      "bob",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			exec := mock.ExpectExec("INSERT INTO users").
				WithArgs(tt.userID, tt.username)
			if tt.mockError != nil {
				exec.WillReturnError(tt.mockError)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			}

			err = repo.EnsureUser(tt.userID, tt.username)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
