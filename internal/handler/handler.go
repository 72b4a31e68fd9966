package handler

import (
	"sync"

	"toeickilla/internal/domain"
	"toeickilla/internal/middleware"
	"toeickilla/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	dictService *service.DictionaryService
	dictPath    string
	logger      *zap.Logger

	// Operator states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	dictService *service.DictionaryService,
	dictPath string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		dictService: dictService,
		dictPath:    dictPath,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Menu buttons
	h.bot.Handle(&btnTranslate, h.handleTranslatePrompt, auth)
	h.bot.Handle(&btnAddModify, h.handleAddPrompt, auth)
	h.bot.Handle(&btnDelete, h.handleDeletePrompt, auth)
	h.bot.Handle(&btnSave, h.handleSave, auth)
	h.bot.Handle(&btnLoad, h.handleLoad, auth)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Generic callback handler for buttons whose Unique got lost
	h.bot.Handle(tele.OnCallback, h.handleCallback, auth)
}

// GetState returns operator's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets operator's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets operator to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnTranslate = tele.Btn{
		Unique: "translate",
		Text:   "🔎 Translate word",
	}
	btnAddModify = tele.Btn{
		Unique: "add_modify",
		Text:   "✏️ Add / modify entry",
	}
	btnDelete = tele.Btn{
		Unique: "delete",
		Text:   "🗑 Delete entry",
	}
	btnSave = tele.Btn{
		Unique: "save",
		Text:   "💾 Save dictionary",
	}
	btnLoad = tele.Btn{
		Unique: "load",
		Text:   "📂 Load dictionary",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnTranslate),
		menu.Row(btnAddModify, btnDelete),
		menu.Row(btnLoad, btnSave),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
