package chat

import (
	"context"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// ProcessTurn runs one conversation turn: classifies the latest user
	// message, applies the resulting state transition, and generates the
	// assistant reply with the LLM.
	ProcessTurn(ctx context.Context, input ProcessTurnInput) (ProcessTurnOutput, error)
}
