package handler

import (
	"vocabtrainer/internal/service"
	"vocabtrainer/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	wordService  *service.WordService
	quizService  *service.QuizService
	statsService *service.StatsService
	sessions     *session.Manager
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	wordService *service.WordService,
	quizService *service.QuizService,
	statsService *service.StatsService,
	sessions *session.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		wordService:  wordService,
		quizService:  quizService,
		statsService: statsService,
		sessions:     sessions,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/test", h.handleTest)
	h.bot.Handle("/delete", h.handleDelete)
	h.bot.Handle("/stats", h.handleStats)

	// Free text: quiz answers and dialog steps
	h.bot.Handle(tele.OnText, h.handleText)
}

// User-facing reply texts
const (
	msgHelp = "Список команд:\n" +
		"/add - добавить новое слово\n" +
		"/test - начать тест\n" +
		"/stats - показать статистику\n" +
		"/delete - удалить слово\n" +
		"/help - список команд"
	msgWelcome = "Добро пожаловать в бот для изучения языков!\n" + msgHelp

	msgAskWord        = "Введите слово на изучаемом языке:"
	msgAskTranslation = "Теперь введите перевод этого слова:"
	msgWordAdded      = "Слово успешно добавлено!"

	msgDeletePrompt    = "Введите номер слова для удаления:"
	msgInvalidChoice   = "Пожалуйста, введите корректный номер из списка."
	msgWordDeleted     = "Слово успешно удалено!"
	msgVocabularyEmpty = "Ваш словарь пуст."

	msgQuizEmpty   = "Ваш словарь пуст. Добавьте слова через /add."
	msgQuizPrompt  = "Переведите слово: %s"
	msgQuizCorrect = "Правильно! 🎉"
	msgQuizWrong   = "Неверно. Осталось попыток: %d"
	msgQuizFailed  = "Попытки закончились. Правильный ответ: %s"

	msgStats = "📊 Статистика:\n" +
		"Всего слов: %d\n\n" +
		"Сегодня:\n" +
		"Правильно: %d\n" +
		"Всего попыток: %d\n\n" +
		"За всё время:\n" +
		"Правильно: %d\n" +
		"Всего попыток: %d"

	msgGenericError = "Произошла ошибка. Попробуйте позже."
)
