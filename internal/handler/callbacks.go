package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"vokabel/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback dispatches dynamic callback data (topic selection,
// add-word buttons, quiz option buttons)
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)

	switch {
	case strings.HasPrefix(data, "quiz_"):
		return h.handleTopicQuiz(c, strings.TrimPrefix(data, "quiz_"))
	case strings.HasPrefix(data, "add_"):
		return h.handleAddWord(c, strings.TrimPrefix(data, "add_"))
	case strings.HasPrefix(data, "opt_"):
		return h.handleOption(c, strings.TrimPrefix(data, "opt_"))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleTopics shows the list of quizzable topics
func (h *Handler) handleTopics(c tele.Context) error {
	userID := c.Sender().ID

	topics, err := h.wordService.ListTopics()
	if err != nil {
		h.logger.Error("Failed to list topics", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load topics"})
	}

	if len(topics) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "No topics yet",
			ShowAlert: true,
		})
	}

	text := "📚 Pick a topic:\n\n"
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, topic := range topics {
		label := fmt.Sprintf("%s %s", topic.ShortDesc, topic.Name)
		quizBtn := markup.Data(label, fmt.Sprintf("quiz_%d", topic.ID))
		addBtn := markup.Data("➕", fmt.Sprintf("add_%d", topic.ID))
		rows = append(rows, markup.Row(quizBtn, addBtn))
	}
	rows = append(rows, markup.Row(btnMainMenu))

	markup.Inline(rows...)

	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// handleAddWord starts the add-word conversation for a topic
func (h *Handler) handleAddWord(c tele.Context, data string) error {
	userID := c.Sender().ID

	topicID, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid topic"})
	}

	topic, err := h.wordService.GetTopic(topicID)
	if err != nil {
		h.logger.Error("Failed to get topic", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load topic"})
	}
	if topic == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Topic not found"})
	}

	h.SetState(userID, &domain.StateData{
		State:   domain.StateWaitingWord,
		TopicID: topicID,
	})

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))

	text := fmt.Sprintf("➕ Adding to %s.\n\nSend me the word:", topic.Name)
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCancel cancels current operation and returns to the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	text := "🏠 Main menu\n\nPick a topic to quiz yourself. Use ➕ to add new words to a topic."
	if err := c.Edit(text, mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, mainMenuMarkup())
	}
	return c.Respond()
}
