package apperror

import "errors"

// Kind is the stable category of an application error.
type Kind string

const (
	KindBadRequest        Kind = "bad_request"
	KindNotFound          Kind = "not_found"
	KindUnauthorized      Kind = "unauthorized"
	KindConflict          Kind = "conflict"
	KindInvalidState      Kind = "invalid_state"
	KindRotationExhausted Kind = "rotation_exhausted"
	KindInternal          Kind = "internal"
)

// Error is a typed error carrying a kind and a user-facing message.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (that *Error) Error() string {
	if that.Message == "" {
		return string(that.Kind)
	}

	return that.Message
}

// Is matches kind sentinels (errors without a message) by kind.
func (that *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Message == "" && t.Kind == that.Kind
}

// kind sentinels, usable with errors.Is.
var (
	ErrBadRequest        = &Error{Kind: KindBadRequest}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrUnauthorized      = &Error{Kind: KindUnauthorized}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrInvalidState      = &Error{Kind: KindInvalidState}
	ErrRotationExhausted = &Error{Kind: KindRotationExhausted}
)

var (
	ErrConnectionIDRequired  = New(KindBadRequest, "Connection ID is required")
	ErrNameRequired          = New(KindBadRequest, "Player name is required")
	ErrCharacterNameRequired = New(KindBadRequest, "No character name provided")
	ErrNotEnoughPlayers      = New(KindBadRequest, "You need at least 3 players")
	ErrActionRequired        = New(KindBadRequest, "No action provided")
	ErrNegativePoints        = New(KindBadRequest, "Points must not be negative")
	ErrUnknownState          = New(KindBadRequest, "Unknown game state")
	ErrInvalidPayload        = New(KindBadRequest, "Invalid payload")
	ErrUnknownAction         = New(KindBadRequest, "Unknown action")

	ErrPlayerNotFound    = New(KindNotFound, "Player not found")
	ErrCharacterNotFound = New(KindNotFound, "Character not found")

	ErrNotHost           = New(KindUnauthorized, "You are not the host")
	ErrCharactersMissing = New(KindUnauthorized, "All players must choose a character")
	ErrCharacterInUse    = New(KindUnauthorized, "Character already in use")
	ErrNotYourTurn       = New(KindUnauthorized, "It's not your turn")

	ErrPlayerAlreadyExists = New(KindConflict, "Player already exists")
	ErrGameFull            = New(KindConflict, "Game is full")

	ErrGameAlreadyStarted = New(KindInvalidState, "Game already started")
	ErrGameIsNotStarted   = New(KindInvalidState, "Game is not started")
	ErrGameIsNotPaused    = New(KindInvalidState, "Game is not paused")
	ErrGameFinished       = New(KindInvalidState, "Game is already finished")
	ErrNoOpenRound        = New(KindInvalidState, "No round in progress")

	ErrAllKillers = New(KindRotationExhausted, "Every player has already been the killer")
)

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindInternal
}

// From returns the *Error in err's chain, or an internal error with a generic message.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	return New(KindInternal, "Internal server error")
}
