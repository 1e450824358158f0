package session

import (
	"sync"
	"testing"

	"vocabtrainer/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestManager_DialogLifecycle(t *testing.T) {
	m := NewManager()

	assert.Nil(t, m.Dialog(123))

	m.SetDialog(123, &Dialog{State: StateAwaitingWord})

	dialog := m.Dialog(123)
	assert.NotNil(t, dialog)
	assert.Equal(t, StateAwaitingWord, dialog.State)

	// Other users stay idle
	assert.Nil(t, m.Dialog(456))

	m.ClearDialog(123)
	assert.Nil(t, m.Dialog(123))
}

func TestManager_QuizLifecycle(t *testing.T) {
	m := NewManager()

	assert.Nil(t, m.Quiz(123))

	m.SetQuiz(123, &Quiz{WordID: 1, Word: "perro", Translation: "dog", AttemptsLeft: 3})

	quiz := m.Quiz(123)
	assert.NotNil(t, quiz)
	assert.Equal(t, 3, quiz.AttemptsLeft)

	m.ClearQuiz(123)
	assert.Nil(t, m.Quiz(123))
}

func TestManager_DialogAndQuizAreMutuallyExclusive(t *testing.T) {
	m := NewManager()

	m.SetDialog(123, &Dialog{State: StateAwaitingWord})
	m.SetQuiz(123, &Quiz{WordID: 1, AttemptsLeft: 3})

	// Starting a quiz abandons the dialog
	assert.Nil(t, m.Dialog(123))
	assert.NotNil(t, m.Quiz(123))

	m.SetDialog(123, &Dialog{State: StateAwaitingDeleteChoice})

	// And starting a dialog abandons the quiz
	assert.Nil(t, m.Quiz(123))
	assert.NotNil(t, m.Dialog(123))
}

func TestManager_Reset(t *testing.T) {
	m := NewManager()

	m.SetDialog(123, &Dialog{State: StateAwaitingTranslation, PendingWord: "perro"})
	m.Reset(123)

	assert.Nil(t, m.Dialog(123))
	assert.Nil(t, m.Quiz(123))
}

func TestManager_DialogReturnsCopy(t *testing.T) {
	m := NewManager()

	m.SetDialog(123, &Dialog{State: StateAwaitingWord})

	d := m.Dialog(123)
	d.PendingWord = "mutated"

	assert.Empty(t, m.Dialog(123).PendingWord)
}

func TestManager_SnapshotSurvivesLookup(t *testing.T) {
	m := NewManager()

	words := []domain.Word{
		{ID: 10, UserID: 123, Word: "gato", Translation: "cat"},
		{ID: 11, UserID: 123, Word: "perro", Translation: "dog"},
	}
	m.SetDialog(123, &Dialog{State: StateAwaitingDeleteChoice, Snapshot: words})

	dialog := m.Dialog(123)
	assert.Len(t, dialog.Snapshot, 2)
	assert.Equal(t, 10, dialog.Snapshot[0].ID)
}

func TestManager_ConcurrentUsers(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			m.SetQuiz(userID, &Quiz{WordID: int(userID), AttemptsLeft: 3})
			m.Quiz(userID)
			m.ClearQuiz(userID)
			m.SetDialog(userID, &Dialog{State: StateAwaitingWord})
		}(int64(i))
	}
	wg.Wait()

	for i := int64(0); i < 50; i++ {
		assert.NotNil(t, m.Dialog(i))
		assert.Nil(t, m.Quiz(i))
	}
}
