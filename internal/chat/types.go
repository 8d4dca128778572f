package chat

import (
	"encoding/json"

	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/model"
)

// ProcessTurnInput is one chat request from the frontend.
// State is the round-tripped conversation state from the previous turn;
// when absent or unparseable the state is re-inferred from the transcript.
type ProcessTurnInput struct {
	Messages []model.ChatMessage
	State    json.RawMessage
}

// FunctionCallTrace records one tool invocation made during the turn.
type FunctionCallTrace struct {
	Name   string      `json:"name"`
	Result interface{} `json:"result"`
}

// ProcessTurnOutput is the assistant reply plus the updated state the
// frontend must round-trip on the next request.
type ProcessTurnOutput struct {
	Reply         string                `json:"reply"`
	State         conversation.Snapshot `json:"state"`
	Intent        conversation.Intent   `json:"intent"`
	FunctionCalls []FunctionCallTrace   `json:"functionCalls,omitempty"`
}
