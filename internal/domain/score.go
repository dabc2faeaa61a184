package domain

import "time"

// quizIntervals is the spaced-repetition schedule: the number of days
// until the next review, indexed by the consecutive-correct streak.
// The last interval also caps the word score.
var quizIntervals = [...]int{1, 2, 4, 7, 14, 30, 60, 90}

// MaxWordScore is the highest score a word can reach
const MaxWordScore = len(quizIntervals) - 1

// WordScore tracks one student's progress on one word
type WordScore struct {
	WordID             int64
	UserID             int64
	ConsecutiveCorrect int
	TimesSeen          int
	TimesCorrect       int
	NextReview         time.Time
}

// Score returns the word's mastery level, capped at MaxWordScore
func (ws *WordScore) Score() int {
	if ws.ConsecutiveCorrect > MaxWordScore {
		return MaxWordScore
	}
	return ws.ConsecutiveCorrect
}

// SetNextReview schedules the next review according to the current streak
func (ws *WordScore) SetNextReview(today time.Time) {
	interval := quizIntervals[ws.Score()]
	ws.NextReview = today.AddDate(0, 0, interval)
}

// QuizResult is the stored outcome of one completed quiz
type QuizResult struct {
	ID               int64
	UserID           int64
	TopicID          int64
	CorrectAnswers   int
	IncorrectAnswers int
	Points           int
	CreatedAt        time.Time
}
