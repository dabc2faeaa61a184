package handler

import (
	"sync"

	"vokabel/internal/domain"
	"vokabel/internal/quiz"
	"vokabel/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	authService    *service.AuthService
	wordService    *service.WordService
	quizBuilder    *service.QuizBuilder
	resultsService *service.ResultsService
	quizCfg        quiz.Config
	logger         *zap.Logger

	// Conversation states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Active quiz sessions, one per user
	runs   map[int64]*quizRun
	runMux sync.Mutex
}

// quizRun binds a quiz session to the topic it was built from.
// Its mutex serializes callbacks for one user; inside the session
// the awaiting flag rejects whatever still slips through twice.
type quizRun struct {
	session    *quiz.Session
	topicID    int64
	lastPrompt quiz.Prompt
	mu         sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	wordService *service.WordService,
	quizBuilder *service.QuizBuilder,
	resultsService *service.ResultsService,
	quizCfg quiz.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		authService:    authService,
		wordService:    wordService,
		quizBuilder:    quizBuilder,
		resultsService: resultsService,
		quizCfg:        quizCfg,
		logger:         logger,
		states:         make(map[int64]*domain.StateData),
		runs:           make(map[int64]*quizRun),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnTopics, h.handleTopics)
	h.bot.Handle(&btnCancel, h.handleCancel)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnContinue, h.handleContinue)
	h.bot.Handle(&btnQuitQuiz, h.handleQuitQuiz)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current conversation state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's conversation state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// getRun returns the user's active quiz run, nil if none
func (h *Handler) getRun(userID int64) *quizRun {
	h.runMux.Lock()
	defer h.runMux.Unlock()
	return h.runs[userID]
}

// setRun replaces the user's active quiz run
func (h *Handler) setRun(userID int64, run *quizRun) {
	h.runMux.Lock()
	defer h.runMux.Unlock()
	h.runs[userID] = run
}

// clearRun discards the user's active quiz run
func (h *Handler) clearRun(userID int64) {
	h.runMux.Lock()
	defer h.runMux.Unlock()
	delete(h.runs, userID)
}

// Inline keyboard buttons
var (
	btnTopics = tele.Btn{
		Unique: "topics",
		Text:   "📚 Topics",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
	btnContinue = tele.Btn{
		Unique: "continue",
		Text:   "Continue...",
	}
	btnQuitQuiz = tele.Btn{
		Unique: "quit_quiz",
		Text:   "🚪 Quit quiz",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnTopics),
	)
	return menu
}
