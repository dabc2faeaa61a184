package testutil

import (
	"time"

	"vokabel/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestTopic creates a test topic
func NewTestTopic(id int64, name string) *domain.Topic {
	return &domain.Topic{
		ID:        id,
		Name:      name,
		ShortDesc: "❓🧠❓",
		CreatedAt: time.Now(),
	}
}

// NewTestWord creates a test word
func NewTestWord(id, topicID int64, origin, target string) domain.Word {
	return domain.Word{
		ID:        id,
		TopicID:   topicID,
		Origin:    origin,
		Target:    target,
		CreatedAt: time.Now(),
	}
}

// NewTestWords creates n distinct test words for a topic
func NewTestWords(topicID int64, n int) []domain.Word {
	words := make([]domain.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, domain.Word{
			ID:      int64(i + 1),
			TopicID: topicID,
			Origin:  string(rune('A' + i)),
			Target:  string(rune('a' + i)),
		})
	}
	return words
}
