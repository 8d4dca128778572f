package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessages = errors.New("messages array is empty")
	ErrNoReply       = errors.New("model returned no text reply")
)
