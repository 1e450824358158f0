package session

import (
	"sync"

	"vocabtrainer/internal/domain"
)

// DialogState identifies the step of a multi-message dialog
type DialogState string

const (
	StateAwaitingWord         DialogState = "awaiting_word"
	StateAwaitingTranslation  DialogState = "awaiting_translation"
	StateAwaitingDeleteChoice DialogState = "awaiting_delete_choice"
)

// Dialog holds the partial data collected by an in-progress dialog
type Dialog struct {
	State       DialogState
	PendingWord string
	// Snapshot freezes the numbered delete menu so the user's choice
	// resolves against the list they were shown
	Snapshot []domain.Word
}

// Quiz is one in-flight test of a single word
type Quiz struct {
	WordID       int
	Word         string
	Translation  string
	AttemptsLeft int
}

// Manager keeps per-user dialog and quiz state in memory.
// A user is mid-dialog, mid-quiz or idle, never two at once:
// setting one kind of state clears the other. State is process-lifetime
// only; a restart drops in-flight dialogs and quizzes.
type Manager struct {
	mu      sync.RWMutex
	dialogs map[int64]*Dialog
	quizzes map[int64]*Quiz
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		dialogs: make(map[int64]*Dialog),
		quizzes: make(map[int64]*Quiz),
	}
}

// Dialog returns a copy of the user's in-progress dialog, nil when idle
func (m *Manager) Dialog(userID int64) *Dialog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.dialogs[userID]
	if !ok {
		return nil
	}
	cp := *d
	return &cp
}

// SetDialog stores the user's dialog state, abandoning any active quiz
func (m *Manager) SetDialog(userID int64, d *Dialog) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dialogs[userID] = d
	delete(m.quizzes, userID)
}

// ClearDialog resets the user's dialog to idle
func (m *Manager) ClearDialog(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.dialogs, userID)
}

// Quiz returns a copy of the user's active quiz, nil when none
func (m *Manager) Quiz(userID int64) *Quiz {
	m.mu.RLock()
	defer m.mu.RUnlock()

	q, ok := m.quizzes[userID]
	if !ok {
		return nil
	}
	cp := *q
	return &cp
}

// SetQuiz stores the user's quiz state, abandoning any in-progress dialog
func (m *Manager) SetQuiz(userID int64, q *Quiz) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.quizzes[userID] = q
	delete(m.dialogs, userID)
}

// ClearQuiz removes the user's active quiz
func (m *Manager) ClearQuiz(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.quizzes, userID)
}

// Reset returns the user to idle, clearing both dialog and quiz state
func (m *Manager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.dialogs, userID)
	delete(m.quizzes, userID)
}
