package postgres

import (
	"database/sql"

	"vokabel/internal/domain"
)

// TopicRepo implements repository.TopicRepository
type TopicRepo struct {
	db *sql.DB
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *sql.DB) *TopicRepo {
	return &TopicRepo{db: db}
}

// ListVisible returns all topics that are not hidden, oldest first
func (r *TopicRepo) ListVisible() ([]domain.Topic, error) {
	query := `
		SELECT id, name, short_desc, long_desc, is_hidden, created_at
		FROM topics
		WHERE is_hidden = FALSE
		ORDER BY created_at
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.ShortDesc, &t.LongDesc, &t.IsHidden, &t.CreatedAt); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// GetByID returns a topic by its ID, nil if not found
func (r *TopicRepo) GetByID(topicID int64) (*domain.Topic, error) {
	var t domain.Topic
	query := `
		SELECT id, name, short_desc, long_desc, is_hidden, created_at
		FROM topics
		WHERE id = $1
	`
	err := r.db.QueryRow(query, topicID).Scan(
		&t.ID, &t.Name, &t.ShortDesc, &t.LongDesc, &t.IsHidden, &t.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}
