package http

import (
	"encoding/json"
	"errors"

	"insurance-renewal-assistant/internal/chat"
	"insurance-renewal-assistant/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Messages []chatMessage   `json:"messages" binding:"required"`
	State    json.RawMessage `json:"state"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (r chatReq) validate() error {
	if len(r.Messages) == 0 {
		return errors.New("missing messages array")
	}
	return nil
}

func (r chatReq) toInput() chat.ProcessTurnInput {
	messages := make([]model.ChatMessage, len(r.Messages))
	for i, m := range r.Messages {
		role := model.RoleUser
		if m.Role == model.RoleAssistant {
			role = model.RoleAssistant
		}
		messages[i] = model.ChatMessage{Role: role, Content: m.Content}
	}
	return chat.ProcessTurnInput{
		Messages: messages,
		State:    r.State,
	}
}

// --- SSE events ---

type chunkEvent struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type doneEvent struct {
	Type  string      `json:"type"`
	Reply string      `json:"reply"`
	State interface{} `json:"state"`
}

type errorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
