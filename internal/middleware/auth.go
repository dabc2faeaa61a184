package middleware

import (
	"vokabel/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware blocks everything except /start and password entry
// for users that have not authorized yet
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := authService.EnsureUser(userID)
			if err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			// Unauthorized users may only use /start or send the
			// password, both of which are plain messages
			if !authorized && c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: "Send the password first"})
			}

			return next(c)
		}
	}
}
