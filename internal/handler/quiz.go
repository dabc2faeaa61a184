package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"vokabel/internal/quiz"
	"vokabel/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleTopicQuiz builds a fresh quiz for the chosen topic and shows
// the first question
func (h *Handler) handleTopicQuiz(c tele.Context, data string) error {
	userID := c.Sender().ID

	topicID, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid topic"})
	}

	questions, err := h.quizBuilder.BuildQuiz(userID, topicID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTopicNotFound):
			return c.Respond(&tele.CallbackResponse{Text: "Topic not found", ShowAlert: true})
		case errors.Is(err, service.ErrNotEnoughWords):
			return c.Respond(&tele.CallbackResponse{
				Text:      "This topic needs more words before it can be quizzed",
				ShowAlert: true,
			})
		}
		h.logger.Error("Failed to build quiz", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to build quiz"})
	}

	session, err := quiz.NewSession(h.quizCfg, questions)
	if err != nil {
		// the builder produced a broken question set, a bug worth surfacing
		h.logger.Error("Failed to create quiz session",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("topic_id", topicID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to start quiz"})
	}

	prompt, err := session.Start()
	if err != nil {
		h.logger.Error("Failed to start quiz session", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to start quiz"})
	}

	run := &quizRun{session: session, topicID: topicID, lastPrompt: prompt}
	h.setRun(userID, run)
	h.ResetState(userID)

	h.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.Int64("topic_id", topicID),
		zap.Int("questions", session.Total()),
	)

	return h.renderPrompt(c, run, prompt)
}

// renderPrompt shows a question with one button per answer option
func (h *Handler) renderPrompt(c tele.Context, run *quizRun, prompt quiz.Prompt) error {
	userID := c.Sender().ID
	s := run.session

	text := fmt.Sprintf("❓ Question %d of %d · %d pts\n\n%s\n\n📝 %s",
		s.Answered(), s.Total(), s.Score(), prompt.DirectionLabel, prompt.Word)

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(prompt.Options)+1)
	for i, option := range prompt.Options {
		rows = append(rows, markup.Row(markup.Data(option, fmt.Sprintf("opt_%d", i))))
	}
	rows = append(rows, markup.Row(btnQuitQuiz))
	markup.Inline(rows...)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleOption submits the selected answer to the session and reveals
// the outcome
func (h *Handler) handleOption(c tele.Context, data string) error {
	userID := c.Sender().ID

	run := h.getRun(userID)
	if run == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No quiz in progress"})
	}

	run.mu.Lock()
	defer run.mu.Unlock()

	selected, err := strconv.Atoi(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid option"})
	}

	outcome, err := run.session.SubmitAnswer(selected)
	if err != nil {
		if errors.Is(err, quiz.ErrNotAwaitingAnswer) {
			// double-click on an option that was already answered
			return c.Respond()
		}
		h.logger.Error("Failed to submit answer",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int("selected", selected),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	correctText := run.lastPrompt.Options[outcome.CorrectAnswer]

	var text string
	if outcome.IsCorrect {
		text = fmt.Sprintf("✅ Correct! +%d pts\n\n📝 %s — %s",
			h.quizCfg.CorrectPoints, run.lastPrompt.Word, correctText)
	} else {
		text = fmt.Sprintf("❌ Not quite.\n\n📝 %s — %s\n(you picked: %s)",
			run.lastPrompt.Word, correctText, run.lastPrompt.Options[selected])
	}
	text += fmt.Sprintf("\n\n🏅 Score: %d pts", run.session.Score())

	continueBtn := btnContinue
	if run.session.Remaining() == 0 {
		continueBtn.Text = "Submit your results"
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(continueBtn))

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleContinue advances the quiz to the next question or finishes it
func (h *Handler) handleContinue(c tele.Context) error {
	userID := c.Sender().ID

	run := h.getRun(userID)
	if run == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No quiz in progress"})
	}

	run.mu.Lock()
	defer run.mu.Unlock()

	step, err := run.session.Advance()
	if err != nil {
		if errors.Is(err, quiz.ErrNotRevealed) {
			// double-click on Continue
			return c.Respond()
		}
		h.logger.Error("Failed to advance quiz", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	if !step.Done {
		run.lastPrompt = step.Prompt
		return h.renderPrompt(c, run, step.Prompt)
	}

	h.clearRun(userID)
	h.submitResults(userID, run.topicID, step.Summary)

	correct := 0
	for _, ok := range step.Summary.Results {
		if ok {
			correct++
		}
	}

	text := fmt.Sprintf("🎉 Quiz complete!\n\n✅ %d of %d correct\n🏅 %d pts",
		correct, len(step.Summary.Results), step.Summary.Score)

	if err := c.Edit(text, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, mainMenuMarkup())
	}
	return c.Respond()
}

// handleQuitQuiz abandons the quiz; nothing is recorded
func (h *Handler) handleQuitQuiz(c tele.Context) error {
	userID := c.Sender().ID

	h.clearRun(userID)
	h.logger.Info("Quiz abandoned", zap.Int64("user_id", userID))

	text := "🏠 Main menu\n\nPick a topic to quiz yourself. Use ➕ to add new words to a topic."
	if err := c.Edit(text, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, mainMenuMarkup())
	}
	return c.Respond()
}

// submitResults hands the final summary to the results service in the
// background; the quiz flow does not wait for or depend on it
func (h *Handler) submitResults(userID, topicID int64, summary quiz.Summary) {
	go func() {
		if _, err := h.resultsService.ProcessResults(userID, topicID, summary, time.Now()); err != nil {
			h.logger.Error("Failed to process quiz results",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int64("topic_id", topicID),
			)
		}
	}()
}
