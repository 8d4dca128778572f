package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"insurance-renewal-assistant/internal/agent/tools"
	"insurance-renewal-assistant/internal/chat"
	"insurance-renewal-assistant/internal/conversation"
	"insurance-renewal-assistant/internal/model"
	"insurance-renewal-assistant/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockGenerator replays scripted responses and records each request.
type mockGenerator struct {
	responses []*llmprovider.Response
	requests  []*llmprovider.Request
	calls     int
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	snapshot := *req
	snapshot.Messages = append([]llmprovider.Message(nil), req.Messages...)
	m.requests = append(m.requests, &snapshot)

	resp := m.responses[m.calls]
	if m.calls < len(m.responses)-1 {
		m.calls++
	}
	return resp, nil
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  model.RoleAssistant,
			Parts: []llmprovider.Part{{Text: text}},
		},
	}
}

func newTestUseCase(gen *mockGenerator) *implUseCase {
	registry := tools.NewRegistry()
	return New(&mockLogger{}, gen, registry, 0.7, 1024, 5)
}

func quotesStateJSON(t *testing.T) json.RawMessage {
	t.Helper()
	state := conversation.New()
	state.PlateNumber = "WXY1234"
	state.OwnerID = "951018145405"
	state.OwnerIDType = "nric"
	state.Step = conversation.StepQuotes
	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal state: %v", err)
	}
	return raw
}

func TestProcessTurnEmptyMessages(t *testing.T) {
	uc := newTestUseCase(&mockGenerator{responses: []*llmprovider.Response{textResponse("hi")}})
	_, err := uc.ProcessTurn(context.Background(), chat.ProcessTurnInput{})
	if err != chat.ErrEmptyMessages {
		t.Errorf("Expected ErrEmptyMessages, got %v", err)
	}
}

func TestProcessTurnQuoteSelection(t *testing.T) {
	gen := &mockGenerator{responses: []*llmprovider.Response{textResponse("Great choice! Want add-ons?")}}
	uc := newTestUseCase(gen)

	out, err := uc.ProcessTurn(context.Background(), chat.ProcessTurnInput{
		Messages: []model.ChatMessage{
			{Role: model.RoleUser, Content: "WXY1234 and 951018145405"},
			{Role: model.RoleAssistant, Content: "Found your vehicle! Is this correct?"},
			{Role: model.RoleUser, Content: "i'll go with takaful"},
		},
		State: quotesStateJSON(t),
	})
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	if out.Intent != conversation.IntentSelectQuote {
		t.Errorf("Expected select_quote intent, got %s", out.Intent)
	}
	if out.State.SelectedQuote == nil || out.State.SelectedQuote.Insurer != "Takaful Ikhlas" {
		t.Fatalf("Expected Takaful Ikhlas selected, got %+v", out.State.SelectedQuote)
	}
	if out.State.SelectedQuote.PriceAfter != 796 {
		t.Errorf("Expected locked price 796, got %v", out.State.SelectedQuote.PriceAfter)
	}
	if out.State.Step != conversation.StepAddOns {
		t.Errorf("Expected addons step, got %s", out.State.Step)
	}
	if !strings.HasPrefix(out.Reply, "*Step 3 of 5 — Add-ons*") {
		t.Errorf("Expected enforced step line, got: %s", out.Reply)
	}

	// The turn must pin the summary box for the model.
	var sawSummary bool
	for _, msg := range gen.requests[0].Messages {
		for _, part := range msg.Parts {
			if strings.Contains(part.Text, "**Your Selection**") {
				sawSummary = true
			}
		}
	}
	if !sawSummary {
		t.Error("Expected summary box in flow hints")
	}
}

func TestProcessTurnBlocksQuotesWithoutVehicleInfo(t *testing.T) {
	gen := &mockGenerator{responses: []*llmprovider.Response{textResponse("Please share your plate and IC.")}}
	uc := newTestUseCase(gen)

	out, err := uc.ProcessTurn(context.Background(), chat.ProcessTurnInput{
		Messages: []model.ChatMessage{{Role: model.RoleUser, Content: "show me the quotes"}},
	})
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	var sawRestriction bool
	for _, msg := range gen.requests[0].Messages {
		for _, part := range msg.Parts {
			if strings.Contains(part.Text, "CRITICAL RESTRICTION") {
				sawRestriction = true
			}
		}
	}
	if !sawRestriction {
		t.Error("Expected pricing restriction hint before vehicle info")
	}
	if out.State.Step != conversation.StepStart {
		t.Errorf("Expected start step, got %s", out.State.Step)
	}
}

func TestProcessTurnFunctionCallLoop(t *testing.T) {
	gen := &mockGenerator{responses: []*llmprovider.Response{
		{
			Content: llmprovider.Message{
				Role: model.RoleAssistant,
				Parts: []llmprovider.Part{{
					FunctionCall: &llmprovider.FunctionCall{
						Name: "search_insurance_knowledge",
						Args: map[string]interface{}{"query": "what is NCD"},
					},
				}},
			},
		},
		textResponse("NCD is a discount for claim-free years."),
	}}
	uc := newTestUseCase(gen)

	out, err := uc.ProcessTurn(context.Background(), chat.ProcessTurnInput{
		Messages: []model.ChatMessage{{Role: model.RoleUser, Content: "what is NCD?"}},
	})
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	if len(out.FunctionCalls) != 1 || out.FunctionCalls[0].Name != "search_insurance_knowledge" {
		t.Fatalf("Expected one knowledge search call, got %+v", out.FunctionCalls)
	}
	if !strings.Contains(out.Reply, "NCD is a discount") {
		t.Errorf("Expected final text reply, got: %s", out.Reply)
	}

	// Second request must carry the tool result back to the model.
	second := gen.requests[1]
	var sawToolResult bool
	for _, msg := range second.Messages {
		for _, part := range msg.Parts {
			if part.FunctionResponse != nil && part.FunctionResponse.Name == "search_insurance_knowledge" {
				sawToolResult = true
			}
		}
	}
	if !sawToolResult {
		t.Error("Expected function response message in follow-up request")
	}
}

func TestProcessTurnOTPShowsPaymentLink(t *testing.T) {
	gen := &mockGenerator{responses: []*llmprovider.Response{textResponse("All set! Here is your payment link.")}}
	uc := newTestUseCase(gen)

	state := conversation.New()
	state.PlateNumber = "WXY1234"
	state.OwnerID = "951018145405"
	state.OwnerIDType = "nric"
	state.SelectQuote(conversation.SelectedQuote{Insurer: "Takaful Ikhlas", PriceAfter: 796})
	state.SelectAddOns(nil)
	state.SelectRoadTax(conversation.SelectedRoadTax{ID: "12month-digital", Name: "12 Months Digital", Price: 90})
	state.SetPersonalDetails(conversation.PersonalDetails{Email: true, Phone: true, Address: true})
	raw, _ := json.Marshal(state)

	out, err := uc.ProcessTurn(context.Background(), chat.ProcessTurnInput{
		Messages: []model.ChatMessage{{Role: model.RoleUser, Content: "1234"}},
		State:    raw,
	})
	if err != nil {
		t.Fatalf("ProcessTurn failed: %v", err)
	}

	if out.Intent != conversation.IntentVerifyOTP {
		t.Errorf("Expected verify_otp intent, got %s", out.Intent)
	}
	if !out.State.OTPVerified {
		t.Error("Expected OTP verified in state")
	}
	if out.State.Step != conversation.StepPayment {
		t.Errorf("Expected payment step, got %s", out.State.Step)
	}

	var sawPayLink bool
	for _, msg := range gen.requests[0].Messages {
		for _, part := range msg.Parts {
			if strings.Contains(part.Text, "/my/payment/PAY-") {
				sawPayLink = true
			}
		}
	}
	if !sawPayLink {
		t.Error("Expected payment link in flow hints")
	}
}
