package quiz

import (
	"errors"
	"fmt"
	"math/rand"
)

// Question is a single multiple-choice question, immutable once built
type Question struct {
	WordID         int64
	Word           string
	OriginToTarget bool
	Options        []string
	CorrectAnswer  int
}

// Config holds scoring and display settings for a session
type Config struct {
	CorrectPoints   int
	IncorrectPoints int // non-positive; 0 disables the penalty
	OriginGlyph     string
	TargetGlyph     string
}

// State of a quiz session
type State int

const (
	StateNotStarted State = iota
	StateAwaitingAnswer
	StateAnswerRevealed
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateAnswerRevealed:
		return "answer_revealed"
	case StateFinished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrNoQuestions       = errors.New("question set is empty")
	ErrAlreadyStarted    = errors.New("session already started")
	ErrNotAwaitingAnswer = errors.New("no answer expected in current state")
	ErrNotRevealed       = errors.New("cannot advance before an answer is revealed")
	ErrIndexOutOfRange   = errors.New("selected option index out of range")
)

// Prompt is what the UI needs to render the current question
type Prompt struct {
	DirectionLabel string
	Word           string
	Options        []string
}

// Outcome tells the UI how an answer went.
// CorrectAnswer is always set so the UI can highlight the right
// option when the user picked wrong.
type Outcome struct {
	IsCorrect     bool
	CorrectAnswer int
}

// Summary is the final export handed to the results collaborator
type Summary struct {
	Results map[int64]bool
	Score   int
}

// Step is the result of Advance: either the next Prompt, or Done with the Summary
type Step struct {
	Done    bool
	Prompt  Prompt
	Summary Summary
}

// Session runs one quiz attempt from start to finish. It is not
// safe for concurrent use; the hosting handler delivers events to
// it one at a time.
type Session struct {
	cfg      Config
	pending  []Question
	current  Question
	score    int
	answered int
	results  map[int64]bool
	awaiting bool
	state    State
}

// NewSession validates the question set and prepares a session.
// The input slice is copied; the caller may reuse it.
func NewSession(cfg Config, questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	seen := make(map[int64]bool, len(questions))
	for i, q := range questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question %d (word %d): correct answer index %d out of range", i, q.WordID, q.CorrectAnswer)
		}
		if seen[q.WordID] {
			return nil, fmt.Errorf("question %d: duplicate word id %d", i, q.WordID)
		}
		seen[q.WordID] = true
	}

	pending := make([]Question, len(questions))
	copy(pending, questions)

	return &Session{
		cfg:     cfg,
		pending: pending,
		results: make(map[int64]bool, len(questions)),
		state:   StateNotStarted,
	}, nil
}

// Start draws the first question and begins accepting answers
func (s *Session) Start() (Prompt, error) {
	if s.state != StateNotStarted {
		return Prompt{}, fmt.Errorf("%w: state is %s", ErrAlreadyStarted, s.state)
	}
	return s.drawNext(), nil
}

// SubmitAnswer evaluates the selected option for the current question.
// A second submission for the same question is rejected, which guards
// against double-clicks reaching the session.
func (s *Session) SubmitAnswer(selected int) (Outcome, error) {
	if s.state != StateAwaitingAnswer || !s.awaiting {
		return Outcome{}, fmt.Errorf("%w: state is %s", ErrNotAwaitingAnswer, s.state)
	}
	if selected < 0 || selected >= len(s.current.Options) {
		return Outcome{}, fmt.Errorf("%w: %d of %d options", ErrIndexOutOfRange, selected, len(s.current.Options))
	}

	isCorrect := selected == s.current.CorrectAnswer
	s.results[s.current.WordID] = isCorrect

	if isCorrect {
		s.score += s.cfg.CorrectPoints
	} else {
		s.score += s.cfg.IncorrectPoints
		if s.score < 0 {
			s.score = 0
		}
	}

	s.awaiting = false
	s.state = StateAnswerRevealed

	return Outcome{IsCorrect: isCorrect, CorrectAnswer: s.current.CorrectAnswer}, nil
}

// Advance moves to the next question, or finishes the session when
// the pool is exhausted. Once finished the session accepts no
// further calls.
func (s *Session) Advance() (Step, error) {
	if s.state != StateAnswerRevealed {
		return Step{}, fmt.Errorf("%w: state is %s", ErrNotRevealed, s.state)
	}

	if len(s.pending) == 0 {
		s.state = StateFinished
		return Step{
			Done:    true,
			Summary: Summary{Results: s.results, Score: s.score},
		}, nil
	}

	return Step{Prompt: s.drawNext()}, nil
}

// drawNext removes a uniformly random question from the pending pool
// and makes it current. Remove-and-swap keeps the draw O(1) and the
// overall order a uniform permutation of the input.
func (s *Session) drawNext() Prompt {
	i := rand.Intn(len(s.pending))
	s.current = s.pending[i]
	s.pending[i] = s.pending[len(s.pending)-1]
	s.pending = s.pending[:len(s.pending)-1]

	s.answered++
	s.awaiting = true
	s.state = StateAwaitingAnswer

	return Prompt{
		DirectionLabel: DirectionLabel(s.current.OriginToTarget, s.cfg.OriginGlyph, s.cfg.TargetGlyph),
		Word:           s.current.Word,
		Options:        s.current.Options,
	}
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Score returns the accumulated points
func (s *Session) Score() int {
	return s.score
}

// Answered returns how many questions have been presented so far
func (s *Session) Answered() int {
	return s.answered
}

// Remaining returns how many questions are left in the pool
func (s *Session) Remaining() int {
	return len(s.pending)
}

// Total returns the size of the original question set
func (s *Session) Total() int {
	return len(s.pending) + s.answered
}

// DirectionLabel renders the translation direction of a question,
// e.g. "🇬🇧 → 🇩🇪" when originToTarget is true
func DirectionLabel(originToTarget bool, originGlyph, targetGlyph string) string {
	if originToTarget {
		return fmt.Sprintf("%s → %s", originGlyph, targetGlyph)
	}
	return fmt.Sprintf("%s → %s", targetGlyph, originGlyph)
}
