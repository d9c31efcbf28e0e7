package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newOpenAITestServer(t *testing.T, status int, content string) (*httptest.Server, *map[string]interface{}) {
	t.Helper()

	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]interface{}{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &received
}

func TestOpenAIProviderSuggest(t *testing.T) {
	srv, received := newOpenAITestServer(t, http.StatusOK,
		`{"pinyin":"xièxie","english":"thank you","vietnamese":"cảm ơn"}`)

	p, err := NewOpenAIProvider(&Config{
		OpenAIKey:     "test-key",
		OpenAIModel:   "gpt-test",
		OpenAIBaseURL: srv.URL + "/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider() error = %v", err)
	}

	got, err := p.Suggest(context.Background(), " 谢谢 ")
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	want := Suggestion{Pinyin: "xièxie", English: "thank you", Vietnamese: "cảm ơn"}
	if got != want {
		t.Errorf("Suggest() = %+v, want %+v", got, want)
	}

	if (*received)["model"] != "gpt-test" {
		t.Errorf("Expected model 'gpt-test', got %v", (*received)["model"])
	}
	format, _ := (*received)["response_format"].(map[string]interface{})
	if format["type"] != "json_object" {
		t.Errorf("Expected JSON response format, got %v", (*received)["response_format"])
	}
	messages, _ := (*received)["messages"].([]interface{})
	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	user, _ := messages[1].(map[string]interface{})
	if content, _ := user["content"].(string); !strings.Contains(content, "谢谢") {
		t.Errorf("User prompt does not contain the hanzi: %q", content)
	}
}

func TestOpenAIProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		content string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"malformed reply", http.StatusOK, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newOpenAITestServer(t, tt.status, tt.content)
			p, err := NewOpenAIProvider(&Config{OpenAIKey: "test-key", OpenAIBaseURL: srv.URL + "/v1"})
			if err != nil {
				t.Fatalf("NewOpenAIProvider() error = %v", err)
			}
			if _, err := p.Suggest(context.Background(), "你好"); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestOpenAIProviderNoKey(t *testing.T) {
	if _, err := NewOpenAIProvider(&Config{}); err == nil {
		t.Error("Expected error for missing API key")
	}
}
