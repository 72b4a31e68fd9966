package handler

import (
	"strings"

	"toeickilla/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(msgInternalError)
	}

	if !authorized {
		return h.handlePassword(c, userID, text)
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingPrimary:
		if text == "" {
			return c.Send(msgAskPrimary, cancelMarkup())
		}
		h.SetState(userID, &domain.StateData{
			State:          domain.StateWaitingSecondary,
			PendingPrimary: text,
		})
		return c.Send(msgAskSecondary, cancelMarkup())

	case domain.StateWaitingSecondary:
		primary := state.PendingPrimary
		modified, err := h.dictService.AddOrModify(primary, text)
		if err != nil {
			h.logger.Warn("Failed to store entry",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
		} else {
			h.logger.Info("Entry stored by operator",
				zap.Int64("user_id", userID),
				zap.String("primary", primary),
				zap.Bool("modified", modified),
			)
		}
		h.ResetState(userID)
		return c.Send(storeReply(primary, text, modified, err), mainMenuMarkup())

	case domain.StateWaitingDelete:
		if text == "" {
			return c.Send(msgAskDelete, cancelMarkup())
		}
		err := h.dictService.DeleteEntry(text)
		if err == nil {
			h.logger.Info("Entry deleted by operator",
				zap.Int64("user_id", userID),
				zap.String("primary", text),
			)
		}
		h.ResetState(userID)
		return c.Send(deleteReply(text, err), mainMenuMarkup())

	default:
		// Idle or waiting for lookup: any text is a word to translate
		if text == "" {
			h.SetState(userID, &domain.StateData{State: domain.StateWaitingLookup})
			return c.Send(msgAskLookup, cancelMarkup())
		}
		translation, err := h.dictService.Translate(text)
		h.ResetState(userID)
		return c.Send(translationReply(translation, err), mainMenuMarkup())
	}
}

// handlePassword authorizes operator when the password matches
func (h *Handler) handlePassword(c tele.Context, userID int64, text string) error {
	if !h.authService.CheckPassword(text) {
		return c.Send(msgWrongPassword)
	}

	if err := h.authService.AuthorizeUser(userID); err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(msgInternalError)
	}

	h.logger.Info("Operator authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("✅ Access granted!\n\n"+mainMenuText(h.dictService.Len()), mainMenuMarkup())
}
