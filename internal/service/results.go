package service

import (
	"fmt"
	"time"

	"vokabel/internal/domain"
	"vokabel/internal/quiz"
	"vokabel/internal/repository"

	"go.uber.org/zap"
)

// ResultsService turns a finished quiz into spaced-repetition
// schedule updates and a stored result row
type ResultsService struct {
	scoreRepo  repository.ScoreRepository
	resultRepo repository.ResultRepository
	logger     *zap.Logger
}

// NewResultsService creates a new results service
func NewResultsService(
	scoreRepo repository.ScoreRepository,
	resultRepo repository.ResultRepository,
	logger *zap.Logger,
) *ResultsService {
	return &ResultsService{
		scoreRepo:  scoreRepo,
		resultRepo: resultRepo,
		logger:     logger,
	}
}

// ProcessResults updates each word's review schedule from the quiz
// summary and records the overall result
func (s *ResultsService) ProcessResults(userID, topicID int64, summary quiz.Summary, today time.Time) (*domain.QuizResult, error) {
	wordIDs := make([]int64, 0, len(summary.Results))
	for wordID := range summary.Results {
		wordIDs = append(wordIDs, wordID)
	}

	scores, err := s.scoreRepo.GetScores(userID, wordIDs)
	if err != nil {
		return nil, fmt.Errorf("get word scores: %w", err)
	}

	correct, incorrect := 0, 0
	for wordID, isCorrect := range summary.Results {
		if isCorrect {
			correct++
		} else {
			incorrect++
		}

		ws := scores[wordID]
		if ws == nil {
			ws = s.newScore(userID, wordID, isCorrect, today)
		} else if !s.updateScore(ws, isCorrect, today) {
			// answered correctly before it was due: schedule unchanged
			continue
		}

		if err := s.scoreRepo.UpsertScore(ws); err != nil {
			return nil, fmt.Errorf("upsert score for word %d: %w", wordID, err)
		}
	}

	result := &domain.QuizResult{
		UserID:           userID,
		TopicID:          topicID,
		CorrectAnswers:   correct,
		IncorrectAnswers: incorrect,
		Points:           summary.Score,
	}
	if err := s.resultRepo.SaveResult(result); err != nil {
		return nil, fmt.Errorf("save quiz result: %w", err)
	}

	s.logger.Info("Quiz results processed",
		zap.Int64("user_id", userID),
		zap.Int64("topic_id", topicID),
		zap.Int("correct", correct),
		zap.Int("incorrect", incorrect),
		zap.Int("points", summary.Score),
	)

	return result, nil
}

// newScore creates the first score row for a word
func (s *ResultsService) newScore(userID, wordID int64, isCorrect bool, today time.Time) *domain.WordScore {
	ws := &domain.WordScore{
		WordID:     wordID,
		UserID:     userID,
		TimesSeen:  1,
		NextReview: today,
	}
	if isCorrect {
		ws.SetNextReview(today)
		ws.ConsecutiveCorrect = 1
		ws.TimesCorrect = 1
	}
	return ws
}

// updateScore advances or resets an existing schedule. It reports
// false when the word was not yet due and the answer was correct, in
// which case nothing changes.
func (s *ResultsService) updateScore(ws *domain.WordScore, isCorrect bool, today time.Time) bool {
	if ws.NextReview.After(today) && isCorrect {
		return false
	}

	ws.TimesSeen++
	if isCorrect {
		// interval is based on the streak before this answer
		ws.SetNextReview(today)
		ws.ConsecutiveCorrect++
		ws.TimesCorrect++
	} else {
		ws.NextReview = today
		ws.ConsecutiveCorrect = 0
	}
	return true
}
