package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestWordRepo_SaveWord(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	topicID := int64(5)
	origin := "Dog"
	target := "Der Hund"

	mock.ExpectExec("INSERT INTO words").
		WithArgs(topicID, origin, target).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveWord(topicID, origin, target)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_GetTopicWords(t *testing.T) {
	tests := []struct {
		name          string
		topicID       int64
		limit         int
		mockRows      *sqlmock.Rows
		mockError     error
		expectedCount int
		expectedError bool
	}{
		{
			name:    "words found",
			topicID: 5,
			limit:   16,
			mockRows: sqlmock.NewRows([]string{"id", "topic_id", "origin", "target", "created_at"}).
				AddRow(1, 5, "Dog", "Der Hund", time.Now()).
				AddRow(2, 5, "Cat", "Die Katze", time.Now()),
			expectedCount: 2,
			expectedError: false,
		},
		{
			name:          "empty topic",
			topicID:       6,
			limit:         16,
			mockRows:      sqlmock.NewRows([]string{"id", "topic_id", "origin", "target", "created_at"}),
			expectedCount: 0,
			expectedError: false,
		},
		{
			name:          "database error",
			topicID:       7,
			limit:         16,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
		{
			name:    "scan error",
			topicID: 5,
			limit:   16,
			mockRows: sqlmock.NewRows([]string{"id", "topic_id", "origin", "target", "created_at"}).
				AddRow("invalid", 5, "Dog", "Der Hund", time.Now()),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewWordRepo(db)

			query := "SELECT id, topic_id, origin, target, created_at FROM words"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.topicID, tt.limit).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.topicID, tt.limit).WillReturnRows(tt.mockRows)
			}

			words, err := repo.GetTopicWords(tt.topicID, tt.limit)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, words, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWordRepo_GetWordsDueReview(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	userID := int64(123)
	topicID := int64(5)
	today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "topic_id", "origin", "target", "created_at"}).
		AddRow(1, 5, "Dog", "Der Hund", time.Now()).
		AddRow(3, 5, "Mouse", "Die Maus", time.Now())

	mock.ExpectQuery("SELECT w.id, w.topic_id, w.origin, w.target, w.created_at FROM words w").
		WithArgs(userID, topicID, today, 20).
		WillReturnRows(rows)

	words, err := repo.GetWordsDueReview(userID, topicID, today, 20)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, "Dog", words[0].Origin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWordRepo_CountTopicWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewWordRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM words").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountTopicWords(5)

	assert.NoError(t, err)
	assert.Equal(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
