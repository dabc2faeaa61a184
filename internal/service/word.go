package service

import (
	"fmt"
	"strings"

	"vokabel/internal/domain"
	"vokabel/internal/repository"
)

// WordService handles word and topic business logic
type WordService struct {
	wordRepo  repository.WordRepository
	topicRepo repository.TopicRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, topicRepo repository.TopicRepository) *WordService {
	return &WordService{wordRepo: wordRepo, topicRepo: topicRepo}
}

// SaveWordPair saves an origin-target pair under a topic
func (s *WordService) SaveWordPair(topicID int64, origin, target string) error {
	origin = strings.TrimSpace(origin)
	target = strings.TrimSpace(target)

	if origin == "" || target == "" {
		return fmt.Errorf("word and translation cannot be empty")
	}

	return s.wordRepo.SaveWord(topicID, origin, target)
}

// ListTopics returns all topics visible to students
func (s *WordService) ListTopics() ([]domain.Topic, error) {
	return s.topicRepo.ListVisible()
}

// GetTopic returns a topic visible to students, nil if missing or hidden
func (s *WordService) GetTopic(topicID int64) (*domain.Topic, error) {
	topic, err := s.topicRepo.GetByID(topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil || topic.IsHidden {
		return nil, nil
	}
	return topic, nil
}
