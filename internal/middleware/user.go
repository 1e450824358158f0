package middleware

import (
	"vocabtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// EnsureUser registers the sender before any handler runs.
// Registration is an idempotent upsert, so repeat visits are no-ops.
func EnsureUser(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			if err := authService.Register(sender.ID, sender.Username); err != nil {
				logger.Error("Failed to register user in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			return next(c)
		}
	}
}
