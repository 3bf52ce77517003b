package domain

import "errors"

// Error kinds. Every user-facing failure unwraps to one of these.
var (
	ErrInvalidCommand    = errors.New("invalid command")
	ErrEmptyArgument     = errors.New("empty argument")
	ErrInvalidDateTime   = errors.New("invalid date time")
	ErrInvalidIndexInput = errors.New("invalid index input")
	ErrEmptyList         = errors.New("empty list")
	ErrInvalidTaskType   = errors.New("invalid task type")
)

// Configuration errors.
var (
	ErrConfigExists       = errors.New("config file already exists")
	ErrUnknownBackend     = errors.New("unknown storage backend")
	ErrUnknownFormat      = errors.New("unknown export format")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrStoreNotConfigured = errors.New("storage path not configured")
)

// UserError is a recoverable failure whose message is shown to the user as-is.
type UserError struct {
	Kind    error
	Message string
}

// NewUserError creates a UserError of the given kind.
func NewUserError(kind error, message string) *UserError {
	return &UserError{Kind: kind, Message: message}
}

func (e *UserError) Error() string {
	return e.Message
}

// Unwrap returns the error kind so errors.Is works against the sentinels.
func (e *UserError) Unwrap() error {
	return e.Kind
}
