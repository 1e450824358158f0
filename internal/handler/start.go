package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart registers the user and shows the command list
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.authService.Register(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send(msgGenericError)
	}

	h.sessions.Reset(userID)
	return c.Send(msgWelcome)
}

// handleHelp shows the command list
func (h *Handler) handleHelp(c tele.Context) error {
	h.sessions.ClearDialog(c.Sender().ID)
	return c.Send(msgHelp)
}

// handleStats reports the word count with today's and all-time results
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID
	h.sessions.ClearDialog(userID)

	summary, err := h.statsService.Summary(userID)
	if err != nil {
		h.logger.Error("Failed to build stats summary",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgGenericError)
	}

	return c.Send(fmt.Sprintf(msgStats,
		summary.TotalWords,
		summary.Today.Correct, summary.Today.Total,
		summary.AllTime.Correct, summary.AllTime.Total,
	))
}
