package postgres

import (
	"database/sql"

	"vokabel/internal/domain"
)

// ResultRepo implements repository.ResultRepository
type ResultRepo struct {
	db *sql.DB
}

// NewResultRepo creates a new quiz result repository
func NewResultRepo(db *sql.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// SaveResult stores the outcome of a completed quiz
func (r *ResultRepo) SaveResult(result *domain.QuizResult) error {
	query := `
		INSERT INTO quiz_results (user_id, topic_id, correct_answers, incorrect_answers, points)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.db.QueryRow(query,
		result.UserID, result.TopicID,
		result.CorrectAnswers, result.IncorrectAnswers, result.Points,
	).Scan(&result.ID)
}
