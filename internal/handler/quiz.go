package handler

import (
	"errors"
	"fmt"

	"vocabtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleTest starts a quiz on a random word.
// A quiz already in flight is replaced by the new one.
func (h *Handler) handleTest(c tele.Context) error {
	userID := c.Sender().ID
	h.sessions.ClearDialog(userID)

	word, err := h.quizService.Start(userID)
	if err != nil {
		if errors.Is(err, service.ErrEmptyVocabulary) {
			return c.Send(msgQuizEmpty)
		}
		h.logger.Error("Failed to start quiz",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgGenericError)
	}

	h.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.Int("word_id", word.ID),
	)

	return c.Send(fmt.Sprintf(msgQuizPrompt, word.Word))
}

// handleAnswer scores one quiz answer
func (h *Handler) handleAnswer(c tele.Context, userID int64, text string) error {
	result, err := h.quizService.Answer(userID, text)
	if err != nil {
		h.logger.Error("Failed to score quiz answer",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgGenericError)
	}

	switch result.Outcome {
	case service.OutcomeCorrect:
		return c.Send(msgQuizCorrect)
	case service.OutcomeWrong:
		return c.Send(fmt.Sprintf(msgQuizWrong, result.AttemptsLeft))
	default:
		return c.Send(fmt.Sprintf(msgQuizFailed, result.CorrectAnswer))
	}
}
