package service

import (
	"fmt"
	"strings"
	"time"

	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/repository"
	"vocabtrainer/internal/session"

	"go.uber.org/zap"
)

// maxAttempts is how many tries a user gets per quiz
const maxAttempts = 3

// AnswerOutcome classifies the result of one answer submission
type AnswerOutcome int

const (
	// OutcomeCorrect ends the quiz with a recorded success
	OutcomeCorrect AnswerOutcome = iota
	// OutcomeWrong keeps the quiz open with fewer attempts left
	OutcomeWrong
	// OutcomeFailed ends the quiz with a recorded failure
	OutcomeFailed
)

// AnswerResult reports what happened to a submitted answer
type AnswerResult struct {
	Outcome       AnswerOutcome
	AttemptsLeft  int
	CorrectAnswer string
}

// QuizService runs the quiz lifecycle: pick a word, score answers,
// record exactly one outcome per quiz.
type QuizService struct {
	wordService *WordService
	statsRepo   repository.StatsRepository
	sessions    *session.Manager
	logger      *zap.Logger
	now         func() time.Time
}

// NewQuizService creates a new quiz service
func NewQuizService(
	wordService *WordService,
	statsRepo repository.StatsRepository,
	sessions *session.Manager,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		wordService: wordService,
		statsRepo:   statsRepo,
		sessions:    sessions,
		logger:      logger,
		now:         time.Now,
	}
}

// Start begins a quiz on a random word and returns it for display.
// A quiz already in flight is replaced. Returns ErrEmptyVocabulary
// when the user has no words; no quiz starts in that case.
func (s *QuizService) Start(userID int64) (*domain.Word, error) {
	word, err := s.wordService.RandomWord(userID)
	if err != nil {
		return nil, err
	}

	s.sessions.SetQuiz(userID, &session.Quiz{
		WordID:       word.ID,
		Word:         word.Word,
		Translation:  word.Translation,
		AttemptsLeft: maxAttempts,
	})

	return word, nil
}

// Active reports whether the user has a quiz in flight
func (s *QuizService) Active(userID int64) bool {
	return s.sessions.Quiz(userID) != nil
}

// Answer scores one submitted answer against the active quiz.
// Answers match on a case-insensitive, whitespace-trimmed exact comparison.
// Every submission consumes an attempt; the quiz ends on the first correct
// answer or once all attempts are spent, and the single outcome is recorded.
func (s *QuizService) Answer(userID int64, text string) (*AnswerResult, error) {
	quiz := s.sessions.Quiz(userID)
	if quiz == nil {
		return nil, fmt.Errorf("no active quiz for user %d", userID)
	}

	quiz.AttemptsLeft--

	if normalizeAnswer(text) == normalizeAnswer(quiz.Translation) {
		if err := s.recordOutcome(userID, true); err != nil {
			return nil, err
		}
		s.sessions.ClearQuiz(userID)
		return &AnswerResult{Outcome: OutcomeCorrect}, nil
	}

	if quiz.AttemptsLeft > 0 {
		s.sessions.SetQuiz(userID, quiz)
		return &AnswerResult{Outcome: OutcomeWrong, AttemptsLeft: quiz.AttemptsLeft}, nil
	}

	if err := s.recordOutcome(userID, false); err != nil {
		return nil, err
	}
	s.sessions.ClearQuiz(userID)
	return &AnswerResult{Outcome: OutcomeFailed, CorrectAnswer: quiz.Translation}, nil
}

func (s *QuizService) recordOutcome(userID int64, correct bool) error {
	day := domain.DayKey(s.now())

	if err := s.statsRepo.RecordOutcome(userID, day, correct); err != nil {
		s.logger.Error("Failed to record quiz outcome",
			zap.Int64("user_id", userID),
			zap.String("day", day),
			zap.Bool("correct", correct),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
