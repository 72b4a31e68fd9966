package middleware

import (
	"toeickilla/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const passwordPrompt = "Hi! Enter the password to edit the dictionary:"

// AuthMiddleware lets only authorized operators reach button handlers
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return deny(c, "Something went wrong. Try again later.")
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return deny(c, "Something went wrong. Try again later.")
			}

			if !authorized {
				logger.Info("Rejected unauthorized operator", zap.Int64("user_id", userID))
				return deny(c, passwordPrompt)
			}

			return next(c)
		}
	}
}

// deny acknowledges a pending callback and answers with text
func deny(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
