package handler

import (
	"errors"
	"fmt"

	"toeickilla/internal/service"
)

const (
	msgMainMenu      = "🏠 Main menu\n\nDictionary entries: %d\nChoose an action:"
	msgAskPassword   = "Hi! Enter the password to edit the dictionary:"
	msgWrongPassword = "Wrong password"
	msgInternalError = "Something went wrong. Try again later."
	msgAskLookup     = "Enter a word to translate:"
	msgAskPrimary    = "Enter a word:"
	msgAskSecondary  = "Enter its translation:"
	msgAskDelete     = "Enter a word to delete:"
)

// mainMenuText renders the menu header with the entry count
func mainMenuText(entries int) string {
	return fmt.Sprintf(msgMainMenu, entries)
}

// translationReply renders a Translate result
func translationReply(translation string, err error) string {
	switch {
	case err == nil:
		return "Translation: " + translation
	case errors.Is(err, service.ErrNotFound):
		return "Word is not in dictionary!"
	default:
		return msgInternalError
	}
}

// storeReply renders an AddOrModify result
func storeReply(primary, secondary string, modified bool, err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyWord):
		return "Word and translation cannot be empty."
	case err != nil:
		return msgInternalError
	case modified:
		return fmt.Sprintf("✅ Entry updated: %s → %s", primary, secondary)
	default:
		return fmt.Sprintf("✅ Entry added: %s → %s", primary, secondary)
	}
}

// deleteReply renders a DeleteEntry result
func deleteReply(primary string, err error) string {
	switch {
	case err == nil:
		return fmt.Sprintf("✅ Entry deleted: %s", primary)
	case errors.Is(err, service.ErrNotFound):
		return "Word not found in dictionary!"
	default:
		return msgInternalError
	}
}
