package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		CorrectPoints: 10,
		OriginGlyph:   "🇬🇧",
		TargetGlyph:   "🇩🇪",
	}
}

func testQuestions() []Question {
	return []Question{
		{WordID: 3, Word: "Mouse", OriginToTarget: true, CorrectAnswer: 0,
			Options: []string{"Die Maus", "Der Bär", "Der Hund", "Die Katze"}},
		{WordID: 2, Word: "Dog", OriginToTarget: true, CorrectAnswer: 1,
			Options: []string{"Die Maus", "Der Hund", "Die Katze", "Der Bär"}},
		{WordID: 1, Word: "Die Katze", OriginToTarget: false, CorrectAnswer: 1,
			Options: []string{"Dog", "Cat", "Bear", "Mouse"}},
		{WordID: 7, Word: "Der Fisch", OriginToTarget: false, CorrectAnswer: 3,
			Options: []string{"Cat", "Mouse", "Bear", "Fish"}},
	}
}

// questionByWord finds the source question matching a prompt
func questionByWord(t *testing.T, qs []Question, word string) Question {
	t.Helper()
	for _, q := range qs {
		if q.Word == word {
			return q
		}
	}
	t.Fatalf("prompt word %q not in question set", word)
	return Question{}
}

func TestNewSession_Validation(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		wantErr   error
	}{
		{
			name:      "empty question set",
			questions: nil,
			wantErr:   ErrNoQuestions,
		},
		{
			name: "correct answer index out of range",
			questions: []Question{
				{WordID: 1, Word: "Dog", Options: []string{"a", "b"}, CorrectAnswer: 2},
			},
		},
		{
			name: "negative correct answer index",
			questions: []Question{
				{WordID: 1, Word: "Dog", Options: []string{"a", "b"}, CorrectAnswer: -1},
			},
		},
		{
			name: "duplicate word ids",
			questions: []Question{
				{WordID: 1, Word: "Dog", Options: []string{"a", "b"}, CorrectAnswer: 0},
				{WordID: 1, Word: "Cat", Options: []string{"a", "b"}, CorrectAnswer: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(testConfig(), tt.questions)
			assert.Error(t, err)
			assert.Nil(t, s)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSession_Start(t *testing.T) {
	questions := testQuestions()
	s, err := NewSession(testConfig(), questions)
	require.NoError(t, err)
	assert.Equal(t, StateNotStarted, s.State())

	prompt, err := s.Start()
	require.NoError(t, err)

	assert.Equal(t, StateAwaitingAnswer, s.State())
	assert.Equal(t, len(questions)-1, s.Remaining())
	assert.Equal(t, 1, s.Answered())

	// the drawn question must come from the input set
	q := questionByWord(t, questions, prompt.Word)
	assert.Equal(t, q.Options, prompt.Options)
	assert.Equal(t, DirectionLabel(q.OriginToTarget, "🇬🇧", "🇩🇪"), prompt.DirectionLabel)

	// a second Start is a protocol violation
	_, err = s.Start()
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestSession_SubmitAnswer_Scoring(t *testing.T) {
	questions := testQuestions()

	t.Run("correct answer adds points", func(t *testing.T) {
		s, err := NewSession(testConfig(), questions)
		require.NoError(t, err)
		prompt, err := s.Start()
		require.NoError(t, err)

		q := questionByWord(t, questions, prompt.Word)
		outcome, err := s.SubmitAnswer(q.CorrectAnswer)
		require.NoError(t, err)

		assert.True(t, outcome.IsCorrect)
		assert.Equal(t, q.CorrectAnswer, outcome.CorrectAnswer)
		assert.Equal(t, 10, s.Score())
		assert.Equal(t, StateAnswerRevealed, s.State())
	})

	t.Run("wrong answer leaves score unchanged", func(t *testing.T) {
		s, err := NewSession(testConfig(), questions)
		require.NoError(t, err)
		prompt, err := s.Start()
		require.NoError(t, err)

		q := questionByWord(t, questions, prompt.Word)
		wrong := (q.CorrectAnswer + 1) % len(q.Options)
		outcome, err := s.SubmitAnswer(wrong)
		require.NoError(t, err)

		assert.False(t, outcome.IsCorrect)
		assert.Equal(t, q.CorrectAnswer, outcome.CorrectAnswer)
		assert.Equal(t, 0, s.Score())
	})

	t.Run("penalty config never drives score negative", func(t *testing.T) {
		cfg := testConfig()
		cfg.IncorrectPoints = -2
		s, err := NewSession(cfg, questions)
		require.NoError(t, err)
		prompt, err := s.Start()
		require.NoError(t, err)

		q := questionByWord(t, questions, prompt.Word)
		_, err = s.SubmitAnswer((q.CorrectAnswer + 1) % len(q.Options))
		require.NoError(t, err)
		assert.Equal(t, 0, s.Score())
	})
}

func TestSession_SubmitAnswer_Rejections(t *testing.T) {
	questions := testQuestions()
	s, err := NewSession(testConfig(), questions)
	require.NoError(t, err)

	// before Start
	_, err = s.SubmitAnswer(0)
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer)

	prompt, err := s.Start()
	require.NoError(t, err)

	// out-of-range index: rejected, nothing recorded
	_, err = s.SubmitAnswer(99)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, StateAwaitingAnswer, s.State())
	assert.Equal(t, 0, s.Score())

	_, err = s.SubmitAnswer(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	q := questionByWord(t, questions, prompt.Word)
	_, err = s.SubmitAnswer(q.CorrectAnswer)
	require.NoError(t, err)

	// double submission without an intervening Advance
	_, err = s.SubmitAnswer(q.CorrectAnswer)
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer)
	assert.Equal(t, 10, s.Score())

	// Advance is fine, but a second Advance without an answer is not
	_, err = s.Advance()
	require.NoError(t, err)
	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrNotRevealed)
}

func TestSession_DrawsArePermutationOfInput(t *testing.T) {
	questions := testQuestions()
	s, err := NewSession(testConfig(), questions)
	require.NoError(t, err)

	prompt, err := s.Start()
	require.NoError(t, err)

	seen := map[int64]int{}
	for {
		q := questionByWord(t, questions, prompt.Word)
		seen[q.WordID]++

		_, err := s.SubmitAnswer(q.CorrectAnswer)
		require.NoError(t, err)

		step, err := s.Advance()
		require.NoError(t, err)
		if step.Done {
			break
		}
		prompt = step.Prompt
	}

	// every question presented exactly once, none missing
	assert.Len(t, seen, len(questions))
	for _, q := range questions {
		assert.Equal(t, 1, seen[q.WordID], "word %d", q.WordID)
	}
	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, StateFinished, s.State())
}

func TestSession_EndToEnd(t *testing.T) {
	questions := testQuestions()
	s, err := NewSession(testConfig(), questions)
	require.NoError(t, err)

	prompt, err := s.Start()
	require.NoError(t, err)

	// answer the first question wrong, the remaining three right
	var summary Summary
	var wrongWordID int64
	answeredWrong := false
	for {
		q := questionByWord(t, questions, prompt.Word)

		selected := q.CorrectAnswer
		if !answeredWrong {
			selected = (q.CorrectAnswer + 1) % len(q.Options)
			wrongWordID = q.WordID
			answeredWrong = true
		}

		outcome, err := s.SubmitAnswer(selected)
		require.NoError(t, err)
		assert.Equal(t, selected == q.CorrectAnswer, outcome.IsCorrect)

		step, err := s.Advance()
		require.NoError(t, err)
		if step.Done {
			summary = step.Summary
			break
		}
		prompt = step.Prompt
	}

	assert.Equal(t, 30, summary.Score)
	require.Len(t, summary.Results, 4)

	falseCount := 0
	for wordID, correct := range summary.Results {
		if !correct {
			falseCount++
			assert.Equal(t, wrongWordID, wordID)
		}
	}
	assert.Equal(t, 1, falseCount)

	assert.Equal(t, StateFinished, s.State())
	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, 4, s.Answered())

	// terminal state rejects everything
	_, err = s.SubmitAnswer(0)
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer)
	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrNotRevealed)
	_, err = s.Start()
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestDirectionLabel(t *testing.T) {
	assert.Equal(t, "🇬🇧 → 🇩🇪", DirectionLabel(true, "🇬🇧", "🇩🇪"))
	assert.Equal(t, "🇩🇪 → 🇬🇧", DirectionLabel(false, "🇬🇧", "🇩🇪"))
}
