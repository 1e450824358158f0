package handler

import (
	"fmt"
	"strconv"
	"strings"

	"vocabtrainer/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdd begins the two-step add-word dialog.
// Starting it mid-dialog silently restarts from the first step.
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	h.sessions.SetDialog(userID, &session.Dialog{State: session.StateAwaitingWord})
	return c.Send(msgAskWord)
}

// handleDelete begins the delete-word dialog with a numbered menu.
// The listed words are snapshotted so the choice resolves against
// exactly what the user saw.
func (h *Handler) handleDelete(c tele.Context) error {
	userID := c.Sender().ID

	words, err := h.wordService.GetWords(userID)
	if err != nil {
		h.logger.Error("Failed to list words",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgGenericError)
	}

	if len(words) == 0 {
		h.sessions.ClearDialog(userID)
		return c.Send(msgVocabularyEmpty)
	}

	var b strings.Builder
	b.WriteString("Ваши слова:\n")
	for i, w := range words {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, w.Word, w.Translation)
	}
	b.WriteString(msgDeletePrompt)

	h.sessions.SetDialog(userID, &session.Dialog{
		State:    session.StateAwaitingDeleteChoice,
		Snapshot: words,
	})

	return c.Send(b.String())
}

// handleText routes free text by session state: an active quiz claims it
// as an answer, otherwise an in-progress dialog claims it as its next step.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Unregistered commands are ignored rather than fed into a dialog
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if h.quizService.Active(userID) {
		return h.handleAnswer(c, userID, text)
	}

	dialog := h.sessions.Dialog(userID)
	if dialog == nil {
		return nil
	}

	switch dialog.State {
	case session.StateAwaitingWord:
		h.sessions.SetDialog(userID, &session.Dialog{
			State:       session.StateAwaitingTranslation,
			PendingWord: text,
		})
		return c.Send(msgAskTranslation)

	case session.StateAwaitingTranslation:
		return h.finishAddWord(c, userID, dialog.PendingWord, text)

	case session.StateAwaitingDeleteChoice:
		return h.finishDeleteWord(c, userID, dialog, text)
	}

	return nil
}

// finishAddWord saves the collected pair and closes the dialog
func (h *Handler) finishAddWord(c tele.Context, userID int64, word, translation string) error {
	wordID, err := h.wordService.SaveWordPair(userID, word, translation)
	if err != nil {
		h.logger.Error("Failed to save word pair",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgGenericError)
	}

	h.logger.Info("Word pair saved",
		zap.Int64("user_id", userID),
		zap.Int("word_id", wordID),
		zap.String("word", word),
		zap.String("translation", translation),
	)

	h.sessions.ClearDialog(userID)
	return c.Send(msgWordAdded)
}

// finishDeleteWord resolves the numeric choice against the snapshot.
// An invalid choice re-prompts and keeps the dialog open.
func (h *Handler) finishDeleteWord(c tele.Context, userID int64, dialog *session.Dialog, text string) error {
	choice, ok := parseChoice(text, len(dialog.Snapshot))
	if !ok {
		return c.Send(msgInvalidChoice)
	}

	wordID := dialog.Snapshot[choice-1].ID
	if err := h.wordService.DeleteWord(userID, wordID); err != nil {
		h.logger.Error("Failed to delete word",
			zap.Int64("user_id", userID),
			zap.Int("word_id", wordID),
			zap.Error(err),
		)
		return c.Send(msgGenericError)
	}

	h.logger.Info("Word deleted",
		zap.Int64("user_id", userID),
		zap.Int("word_id", wordID),
	)

	h.sessions.ClearDialog(userID)
	return c.Send(msgWordDeleted)
}

// parseChoice parses a 1-based menu choice within [1, max]
func parseChoice(text string, max int) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || choice < 1 || choice > max {
		return 0, false
	}
	return choice, true
}
