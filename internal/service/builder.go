package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"vokabel/internal/domain"
	"vokabel/internal/quiz"
	"vokabel/internal/repository"

	"go.uber.org/zap"
)

// optionsPerQuestion is the fixed number of answer choices
const optionsPerQuestion = 4

var (
	ErrTopicNotFound  = errors.New("topic not found")
	ErrNotEnoughWords = errors.New("topic has too few words for a quiz")
)

// QuizBuilder assembles the question set for one quiz attempt
type QuizBuilder struct {
	topicRepo repository.TopicRepository
	wordRepo  repository.WordRepository
	maxLength int
	logger    *zap.Logger
}

// NewQuizBuilder creates a new quiz builder
func NewQuizBuilder(
	topicRepo repository.TopicRepository,
	wordRepo repository.WordRepository,
	maxLength int,
	logger *zap.Logger,
) *QuizBuilder {
	return &QuizBuilder{
		topicRepo: topicRepo,
		wordRepo:  wordRepo,
		maxLength: maxLength,
		logger:    logger,
	}
}

// BuildQuiz creates the questions for a quiz on the given topic.
// Words due for spaced-repetition review come first; if nothing is
// due, the quiz falls back to a random selection from the topic.
func (b *QuizBuilder) BuildQuiz(userID, topicID int64, today time.Time) ([]quiz.Question, error) {
	topic, err := b.topicRepo.GetByID(topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if topic == nil || topic.IsHidden {
		return nil, ErrTopicNotFound
	}

	// the pool doubles as the distractor source, so fetch more than
	// the quiz needs
	pool, err := b.wordRepo.GetTopicWords(topicID, b.maxLength*optionsPerQuestion)
	if err != nil {
		return nil, fmt.Errorf("get topic words: %w", err)
	}
	if len(pool) < optionsPerQuestion {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughWords, len(pool), optionsPerQuestion)
	}

	words, err := b.wordRepo.GetWordsDueReview(userID, topicID, today, b.maxLength)
	if err != nil {
		return nil, fmt.Errorf("get words due review: %w", err)
	}

	if len(words) == 0 {
		n := b.maxLength
		if n > len(pool) {
			n = len(pool)
		}
		words = pool[:n]
		b.logger.Debug("No words due for review, quizzing from topic pool",
			zap.Int64("user_id", userID),
			zap.Int64("topic_id", topicID),
		)
	}

	questions := make([]quiz.Question, 0, len(words))
	for _, w := range words {
		questions = append(questions, buildQuestion(w, pool))
	}

	b.logger.Info("Quiz built",
		zap.Int64("user_id", userID),
		zap.Int64("topic_id", topicID),
		zap.Int("questions", len(questions)),
	)

	return questions, nil
}

// buildQuestion turns a word into a multiple-choice question with a
// random direction and the correct answer at a random position
func buildQuestion(w domain.Word, pool []domain.Word) quiz.Question {
	originToTarget := rand.Intn(2) == 1

	var prompt, answer string
	if originToTarget {
		prompt, answer = w.Origin, w.Target
	} else {
		prompt, answer = w.Target, w.Origin
	}

	options := pickDistractors(pool, w.ID, originToTarget, optionsPerQuestion-1)
	correct := rand.Intn(optionsPerQuestion)
	options = append(options[:correct], append([]string{answer}, options[correct:]...)...)

	return quiz.Question{
		WordID:         w.ID,
		Word:           prompt,
		OriginToTarget: originToTarget,
		Options:        options,
		CorrectAnswer:  correct,
	}
}

// pickDistractors draws count wrong answers from the pool, in the
// answer language, never including the quizzed word itself
func pickDistractors(pool []domain.Word, wordID int64, originToTarget bool, count int) []string {
	candidates := make([]domain.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID != wordID {
			candidates = append(candidates, w)
		}
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if count > len(candidates) {
		count = len(candidates)
	}

	distractors := make([]string, 0, count)
	for _, w := range candidates[:count] {
		if originToTarget {
			distractors = append(distractors, w.Target)
		} else {
			distractors = append(distractors, w.Origin)
		}
	}
	return distractors
}
