package handler

import (
	"strings"

	"vokabel/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on conversation state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	authorized, err := h.authService.EnsureUser(userID)
	if err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if !authorized {
		ok, err := h.authService.TryPassword(userID, text)
		if err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send("Something went wrong. Please try again later.")
		}
		if !ok {
			return c.Send("That's not it. Try again:")
		}

		h.ResetState(userID)
		return c.Send(
			"✅ You're in!\n\n🏠 Main menu\n\nPick a topic to quiz yourself. Use ➕ to add new words to a topic.",
			mainMenuMarkup(),
		)
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingWord:
		// Got the word, now wait for its translation
		cancelMarkup := &tele.ReplyMarkup{}
		cancelMarkup.Inline(cancelMarkup.Row(btnCancel))

		h.SetState(userID, &domain.StateData{
			State:       domain.StateWaitingTranslation,
			CurrentWord: text,
			TopicID:     state.TopicID,
		})

		return c.Send("Now the translation:", cancelMarkup)

	case domain.StateWaitingTranslation:
		if err := h.wordService.SaveWordPair(state.TopicID, state.CurrentWord, text); err != nil {
			h.logger.Error("Failed to save word pair",
				zap.Error(err),
				zap.Int64("user_id", userID),
				zap.Int64("topic_id", state.TopicID),
			)
			return c.Send("Couldn't save that word. Please try again.")
		}

		h.logger.Info("Word pair saved",
			zap.Int64("user_id", userID),
			zap.Int64("topic_id", state.TopicID),
			zap.String("word", state.CurrentWord),
		)

		// Stay in the flow so more words can be added in a row
		h.SetState(userID, &domain.StateData{
			State:   domain.StateWaitingWord,
			TopicID: state.TopicID,
		})

		return c.Send("✅ Saved!\n\nSend the next word, or go back with /start")

	default:
		// Not in a conversation; point at the menu
		return c.Send("Use the menu to get around:", mainMenuMarkup())
	}
}
