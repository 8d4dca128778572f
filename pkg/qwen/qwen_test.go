package qwen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing APIKey")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("model = %s, want %s", cfg.Model, DefaultModel)
		}
		if cfg.BaseURL != DefaultBaseURL {
			t.Errorf("baseURL = %s", cfg.BaseURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default HTTP client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("text response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("path = %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("auth header = %s", got)
			}

			var req openAIRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatal(err)
			}
			if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
				t.Errorf("messages = %+v", req.Messages)
			}

			json.NewEncoder(w).Encode(openAIResponse{
				Choices: []openAIChoice{{
					Message: openAIMessage{Role: "assistant", Content: "Hello there"},
				}},
				Usage: openAIUsage{PromptTokens: 10, CompletionTokens: 3, TotalTokens: 13},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if err != nil {
			t.Fatal(err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Content{Parts: []Part{{Text: "You are helpful"}}},
			Messages:          []Content{{Role: "user", Parts: []Part{{Text: "Hi"}}}},
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].Text != "Hello there" {
			t.Errorf("parts = %+v", resp.Content.Parts)
		}
		if resp.Usage.TotalTokens != 13 {
			t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("tool call response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(openAIResponse{
				Choices: []openAIChoice{{
					Message: openAIMessage{
						Role: "assistant",
						ToolCalls: []openAIToolCall{{
							ID:   "call_abc",
							Type: "function",
							Function: openAIFunctionCall{
								Name:      "get_insurance_quotes",
								Arguments: `{"plateNumber":"JRT9289"}`,
							},
						}},
					},
				}},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if err != nil {
			t.Fatal(err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "show quotes"}}}},
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].FunctionCall == nil {
			t.Fatalf("parts = %+v", resp.Content.Parts)
		}
		fc := resp.Content.Parts[0].FunctionCall
		if fc.Name != "get_insurance_quotes" || fc.Args["plateNumber"] != "JRT9289" {
			t.Errorf("function call = %+v", fc)
		}
	})

	t.Run("api error surfaces body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"rate limited"}`))
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if err != nil {
			t.Fatal(err)
		}

		_, err = client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "Hi"}}}},
		})
		if err == nil {
			t.Fatal("expected error for 429")
		}
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(openAIResponse{})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", BaseURL: server.URL})
		if err != nil {
			t.Fatal(err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "Hi"}}}},
		})
		if err != nil {
			t.Fatal(err)
		}
		if resp.Usage == nil || len(resp.Content.Parts) != 0 {
			t.Errorf("unexpected response: %+v", resp)
		}
	})
}

func TestTransformMessageToolResult(t *testing.T) {
	impl := newQwenImpl(Config{APIKey: "k", Model: "m", BaseURL: "u", HTTPClient: http.DefaultClient})

	msg := impl.transformMessage(&Content{
		Role: "user",
		Parts: []Part{{
			FunctionResponse: &FunctionResponse{
				Name:     "get_insurance_quotes",
				Response: map[string]interface{}{"count": 3},
			},
		}},
	})

	if msg.Role != "tool" {
		t.Errorf("role = %s, want tool", msg.Role)
	}
	if msg.ToolCallID != "call_get_insurance_quotes" {
		t.Errorf("toolCallID = %s", msg.ToolCallID)
	}
	if msg.Content != `{"count":3}` {
		t.Errorf("content = %s", msg.Content)
	}
}
