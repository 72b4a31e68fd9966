package domain

// UserState represents operator's current dialog step
type UserState string

const (
	StateIdle             UserState = "idle"
	StateWaitingPassword  UserState = "waiting_password"
	StateWaitingLookup    UserState = "waiting_lookup"
	StateWaitingPrimary   UserState = "waiting_primary"
	StateWaitingSecondary UserState = "waiting_secondary"
	StateWaitingDelete    UserState = "waiting_delete"
)

// StateData holds temporary data for operator's current state
type StateData struct {
	State UserState
	// Primary word typed before the translation in the add/modify flow
	PendingPrimary string
}
