package postgres

import (
	"database/sql"
	"time"

	"vokabel/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SaveWord saves an origin-target pair under a topic
func (r *WordRepo) SaveWord(topicID int64, origin, target string) error {
	query := `
		INSERT INTO words (topic_id, origin, target)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, topicID, origin, target)
	return err
}

// GetTopicWords returns up to limit words of a topic in random order.
// The random order matters: this pool is also the distractor source
// for quiz options.
func (r *WordRepo) GetTopicWords(topicID int64, limit int) ([]domain.Word, error) {
	query := `
		SELECT id, topic_id, origin, target, created_at
		FROM words
		WHERE topic_id = $1
		ORDER BY RANDOM()
		LIMIT $2
	`
	rows, err := r.db.Query(query, topicID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWords(rows)
}

// GetWordsDueReview returns words of a topic whose next review date
// has been reached for the given user. Words the user has never seen
// have no score row and count as due.
func (r *WordRepo) GetWordsDueReview(userID, topicID int64, today time.Time, limit int) ([]domain.Word, error) {
	query := `
		SELECT w.id, w.topic_id, w.origin, w.target, w.created_at
		FROM words w
		LEFT JOIN word_scores ws ON ws.word_id = w.id AND ws.user_id = $1
		WHERE w.topic_id = $2
			AND (ws.next_review IS NULL OR ws.next_review <= $3)
		ORDER BY RANDOM()
		LIMIT $4
	`
	rows, err := r.db.Query(query, userID, topicID, today, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWords(rows)
}

// CountTopicWords returns the number of words in a topic
func (r *WordRepo) CountTopicWords(topicID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM words WHERE topic_id = $1`
	err := r.db.QueryRow(query, topicID).Scan(&count)
	return count, err
}

func scanWords(rows *sql.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.TopicID, &w.Origin, &w.Target, &w.CreatedAt); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
