package handler

import (
	"testing"

	"vokabel/internal/domain"
	"vokabel/internal/quiz"
	"vokabel/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "quiz_5",
			expected: "quiz_5",
		},
		{
			name:     "string with whitespace",
			input:    "  quiz_5  ",
			expected: "quiz_5",
		},
		{
			name:     "string with newline",
			input:    "opt\n_2",
			expected: "opt_2",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "opt\x00_2\x01",
			expected: "opt_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestHandler_RunLifecycle(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, quiz.Config{}, testutil.NewTestLogger())

	userID := int64(123)
	assert.Nil(t, h.getRun(userID))

	questions := []quiz.Question{
		{WordID: 1, Word: "Dog", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		{WordID: 2, Word: "Cat", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
	}
	session, err := quiz.NewSession(quiz.Config{CorrectPoints: 10}, questions)
	require.NoError(t, err)

	run := &quizRun{session: session, topicID: 5}
	h.setRun(userID, run)
	assert.Same(t, run, h.getRun(userID))

	// another user's run is independent
	assert.Nil(t, h.getRun(456))

	h.clearRun(userID)
	assert.Nil(t, h.getRun(userID))
}

func TestHandler_StateLifecycle(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil, nil, quiz.Config{}, testutil.NewTestLogger())

	userID := int64(123)

	// unknown users are idle
	state := h.GetState(userID)
	assert.Equal(t, domain.StateIdle, state.State)

	h.SetState(userID, &domain.StateData{State: domain.StateWaitingWord, TopicID: 5})
	state = h.GetState(userID)
	assert.Equal(t, domain.StateWaitingWord, state.State)
	assert.Equal(t, int64(5), state.TopicID)

	h.ResetState(userID)
	state = h.GetState(userID)
	assert.Equal(t, domain.StateIdle, state.State)
}
