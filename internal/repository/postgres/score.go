package postgres

import (
	"database/sql"

	"vokabel/internal/domain"

	"github.com/lib/pq"
)

// ScoreRepo implements repository.ScoreRepository
type ScoreRepo struct {
	db *sql.DB
}

// NewScoreRepo creates a new score repository
func NewScoreRepo(db *sql.DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// GetScores returns the user's scores for the given words, keyed by
// word ID. Words without a score row are simply absent from the map.
func (r *ScoreRepo) GetScores(userID int64, wordIDs []int64) (map[int64]*domain.WordScore, error) {
	query := `
		SELECT word_id, user_id, consecutive_correct, times_seen, times_correct, next_review
		FROM word_scores
		WHERE user_id = $1 AND word_id = ANY($2)
	`
	rows, err := r.db.Query(query, userID, pq.Array(wordIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make(map[int64]*domain.WordScore)
	for rows.Next() {
		var ws domain.WordScore
		if err := rows.Scan(&ws.WordID, &ws.UserID, &ws.ConsecutiveCorrect,
			&ws.TimesSeen, &ws.TimesCorrect, &ws.NextReview); err != nil {
			return nil, err
		}
		scores[ws.WordID] = &ws
	}
	return scores, rows.Err()
}

// UpsertScore inserts or replaces the score row for a word/user pair
func (r *ScoreRepo) UpsertScore(score *domain.WordScore) error {
	query := `
		INSERT INTO word_scores (word_id, user_id, consecutive_correct, times_seen, times_correct, next_review)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (word_id, user_id)
		DO UPDATE SET
			consecutive_correct = EXCLUDED.consecutive_correct,
			times_seen = EXCLUDED.times_seen,
			times_correct = EXCLUDED.times_correct,
			next_review = EXCLUDED.next_review
	`
	_, err := r.db.Exec(query,
		score.WordID, score.UserID, score.ConsecutiveCorrect,
		score.TimesSeen, score.TimesCorrect, score.NextReview,
	)
	return err
}
