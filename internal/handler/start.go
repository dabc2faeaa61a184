package handler

import (
	"vokabel/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	authorized, err := h.authService.EnsureUser(userID)
	if err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	// An open quiz makes no sense after a restart of the flow
	h.clearRun(userID)

	if !authorized {
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingPassword})
		return c.Send("Hi! This bot is password-protected. Send me the password to get going:")
	}

	h.ResetState(userID)

	text := "🏠 Main menu\n\nPick a topic to quiz yourself. Use ➕ to add new words to a topic."
	if c.Callback() != nil {
		if err := c.Edit(text, mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(text, mainMenuMarkup())
}
