package handler

import (
	"strings"
	"unicode"

	"toeickilla/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit(). If the message is not modified
// the callback is only acknowledged and nil is returned, otherwise the error
// is returned so the caller can send a new message.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Another callback already put the same content in place
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the callback message, or sends a new one for commands
// and failed edits
func (h *Handler) editOrSend(c tele.Context, userID int64, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleCallback routes callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	key := callback.Unique
	if key == "" {
		key = data
	}

	switch key {
	case btnTranslate.Unique:
		return h.handleTranslatePrompt(c)
	case btnAddModify.Unique:
		return h.handleAddPrompt(c)
	case btnDelete.Unique:
		return h.handleDeletePrompt(c)
	case btnSave.Unique:
		return h.handleSave(c)
	case btnLoad.Unique:
		return h.handleLoad(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// prompt switches operator into state and asks for input
func (h *Handler) prompt(c tele.Context, state domain.UserState, text string) error {
	userID := c.Sender().ID
	h.SetState(userID, &domain.StateData{State: state})
	return h.editOrSend(c, userID, text, cancelMarkup())
}

// handleTranslatePrompt asks for a word in either language
func (h *Handler) handleTranslatePrompt(c tele.Context) error {
	return h.prompt(c, domain.StateWaitingLookup, msgAskLookup)
}

// handleAddPrompt starts the add/modify flow
func (h *Handler) handleAddPrompt(c tele.Context) error {
	return h.prompt(c, domain.StateWaitingPrimary, msgAskPrimary)
}

// handleDeletePrompt asks for the primary word to delete
func (h *Handler) handleDeletePrompt(c tele.Context) error {
	return h.prompt(c, domain.StateWaitingDelete, msgAskDelete)
}

// handleSave writes the dictionary file
func (h *Handler) handleSave(c tele.Context) error {
	if err := h.dictService.SaveDictionary(h.dictPath); err != nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Failed to save dictionary",
			ShowAlert: true,
		})
	}
	return c.Respond(&tele.CallbackResponse{Text: "Dictionary saved successfully!"})
}

// handleLoad replaces the dictionary with the contents of the dictionary file
func (h *Handler) handleLoad(c tele.Context) error {
	userID := c.Sender().ID

	if err := h.dictService.ReloadDictionary(h.dictPath); err != nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Failed to load dictionary",
			ShowAlert: true,
		})
	}

	if err := c.Respond(&tele.CallbackResponse{Text: "Dictionary loaded successfully!"}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	if err := c.Edit(mainMenuText(h.dictService.Len()), mainMenuMarkup()); err != nil {
		h.logger.Debug("Menu not refreshed after load", zap.Int64("user_id", userID), zap.Error(err))
	}
	return nil
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)
	return h.editOrSend(c, userID, mainMenuText(h.dictService.Len()), mainMenuMarkup())
}
