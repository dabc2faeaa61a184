package repository

import (
	"time"

	"vokabel/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// EnsureUser creates the user if missing and reports authorization
	EnsureUser(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
}

// TopicRepository defines topic data operations
type TopicRepository interface {
	ListVisible() ([]domain.Topic, error)
	GetByID(topicID int64) (*domain.Topic, error)
}

// WordRepository defines word data operations
type WordRepository interface {
	SaveWord(topicID int64, origin, target string) error
	GetTopicWords(topicID int64, limit int) ([]domain.Word, error)
	GetWordsDueReview(userID, topicID int64, today time.Time, limit int) ([]domain.Word, error)
	CountTopicWords(topicID int64) (int, error)
}

// ScoreRepository defines spaced-repetition score operations
type ScoreRepository interface {
	GetScores(userID int64, wordIDs []int64) (map[int64]*domain.WordScore, error)
	UpsertScore(score *domain.WordScore) error
}

// ResultRepository defines quiz result operations
type ResultRepository interface {
	SaveResult(result *domain.QuizResult) error
}
