package testutil

import (
	"time"

	"vokabel/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockTopicRepository is a mock for TopicRepository
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) ListVisible() ([]domain.Topic, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Topic), args.Error(1)
}

func (m *MockTopicRepository) GetByID(topicID int64) (*domain.Topic, error) {
	args := m.Called(topicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topic), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) SaveWord(topicID int64, origin, target string) error {
	args := m.Called(topicID, origin, target)
	return args.Error(0)
}

func (m *MockWordRepository) GetTopicWords(topicID int64, limit int) ([]domain.Word, error) {
	args := m.Called(topicID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWordsDueReview(userID, topicID int64, today time.Time, limit int) ([]domain.Word, error) {
	args := m.Called(userID, topicID, today, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CountTopicWords(topicID int64) (int, error) {
	args := m.Called(topicID)
	return args.Int(0), args.Error(1)
}

// MockScoreRepository is a mock for ScoreRepository
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) GetScores(userID int64, wordIDs []int64) (map[int64]*domain.WordScore, error) {
	args := m.Called(userID, wordIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*domain.WordScore), args.Error(1)
}

func (m *MockScoreRepository) UpsertScore(score *domain.WordScore) error {
	args := m.Called(score)
	return args.Error(0)
}

// MockResultRepository is a mock for ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) SaveResult(result *domain.QuizResult) error {
	args := m.Called(result)
	return args.Error(0)
}
