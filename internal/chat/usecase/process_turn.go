package usecase

import (
	"context"
	"fmt"

	"insurance-renewal-assistant/internal/catalog"
	"insurance-renewal-assistant/internal/chat"
	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/pkg/llmprovider"
)

// ProcessTurn runs one conversation turn end to end.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input chat.ProcessTurnInput) (chat.ProcessTurnOutput, error) {
	if len(input.Messages) == 0 {
		return chat.ProcessTurnOutput{}, chat.ErrEmptyMessages
	}

	// Prefer the round-tripped state; fall back to transcript inference.
	state := conversation.FromJSON(input.State)
	if state == nil {
		state = conversation.FromMessages(input.Messages)
	}

	latestMessage := input.Messages[len(input.Messages)-1].Content
	intent := conversation.Classify(latestMessage, state)

	uc.l.Infof(ctx, "ProcessTurn: step=%s intent=%s confidence=%.2f pending=%v",
		state.Step, intent.Intent, intent.Confidence, state.PendingAction != nil)

	// The round-tripped state predates the latest user action; apply it now.
	roadTaxDeliveryBlocked, blockedRoadTaxOption := applyIntent(state, intent, latestMessage)

	var profile *model.VehicleProfile
	if state.HasCompleteVehicleIdentification() {
		p := catalog.VehicleProfile(state.PlateNumber, state.OwnerID)
		profile = &p
		state.VehicleInfo = &p
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  model.RoleSystem,
			Parts: []llmprovider.Part{{Text: buildSystemPrompt(state, profile)}},
		},
		Tools:       uc.registry.ToFunctionDefinitions(),
		Temperature: uc.temperature,
		MaxTokens:   uc.maxTokens,
	}

	for _, msg := range input.Messages {
		role := model.RoleUser
		if msg.Role == model.RoleAssistant {
			role = model.RoleAssistant
		}
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  role,
			Parts: []llmprovider.Part{{Text: msg.Content}},
		})
	}

	for _, hint := range buildFlowHints(state, intent, input.Messages, profile, roadTaxDeliveryBlocked, blockedRoadTaxOption) {
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  model.RoleSystem,
			Parts: []llmprovider.Part{{Text: hint}},
		})
	}

	reply, traces, err := uc.generateReply(ctx, req)
	if err != nil {
		return chat.ProcessTurnOutput{}, err
	}

	// Step indicator is enforced in code; the model omits it too often.
	reply = ensureStepLine(reply, expectedStepLine(intent, state, input.Messages))

	return chat.ProcessTurnOutput{
		Reply:         reply,
		State:         state.Snapshot(),
		Intent:        intent.Intent,
		FunctionCalls: traces,
	}, nil
}

// generateReply drives the function calling loop until the model produces
// a text reply or the iteration budget runs out.
func (uc *implUseCase) generateReply(ctx context.Context, req *llmprovider.Request) (string, []chat.FunctionCallTrace, error) {
	var traces []chat.FunctionCallTrace

	for i := 0; i < uc.maxIterations; i++ {
		resp, err := uc.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", nil, fmt.Errorf("llm generate: %w", err)
		}

		req.Messages = append(req.Messages, resp.Content)

		var calledFunction bool
		for _, part := range resp.Content.Parts {
			if part.FunctionCall == nil {
				continue
			}
			calledFunction = true

			result := uc.executeTool(ctx, part.FunctionCall.Name, part.FunctionCall.Args)
			traces = append(traces, chat.FunctionCallTrace{Name: part.FunctionCall.Name, Result: result})
			req.Messages = append(req.Messages, llmprovider.Message{
				Role: "tool",
				Parts: []llmprovider.Part{{
					FunctionResponse: &llmprovider.FunctionResponse{
						Name:     part.FunctionCall.Name,
						Response: result,
					},
				}},
			})
		}
		if calledFunction {
			continue
		}

		for _, part := range resp.Content.Parts {
			if part.Text != "" {
				return part.Text, traces, nil
			}
		}
	}

	return "", traces, chat.ErrNoReply
}

// executeTool runs one registered tool; failures are surfaced to the model
// as an error payload rather than aborting the turn.
func (uc *implUseCase) executeTool(ctx context.Context, name string, args map[string]interface{}) interface{} {
	tool, ok := uc.registry.Get(name)
	if !ok {
		uc.l.Warnf(ctx, "executeTool: unknown function %s", name)
		return map[string]interface{}{"error": fmt.Sprintf("Unknown function: %s", name)}
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		uc.l.Errorf(ctx, "executeTool: %s failed: %v", name, err)
		return map[string]interface{}{"error": err.Error()}
	}
	return result
}
