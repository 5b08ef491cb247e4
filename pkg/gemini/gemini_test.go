package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{APIKey: "k", Model: "models/gemini-2.0-flash"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("model prefix not stripped: %s", cfg.Model)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("api url = %s", cfg.APIURL)
	}

	empty := Config{}
	if err := empty.Validate(); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestGenerateContent(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/"+DefaultModel+":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "secret" {
			t.Errorf("missing api key")
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"summary\":"},{"text":"\"ok\"}"}]},"finishReason":"STOP"}],
			"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":4,"totalTokenCount":14}}`))
	}))
	defer srv.Close()

	client, err := New(Config{APIKey: "secret", APIURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &Request{
		SystemInstruction: "rank",
		Messages:          []Content{{Parts: []Part{{Text: "tasks"}}}},
		Temperature:       0.2,
		JSONResponse:      true,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.Text != `{"summary":"ok"}` {
		t.Errorf("text = %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 14 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "rank" {
		t.Errorf("system instruction not sent")
	}
	if len(got.Contents) != 1 || got.Contents[0].Role != "user" {
		t.Errorf("contents = %+v", got.Contents)
	}
	if got.GenerationConfig == nil || got.GenerationConfig.ResponseMIMEType != mimeTypeJSON {
		t.Errorf("response mime type not set")
	}
}

func TestGenerateContent_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "non 2xx", status: http.StatusTooManyRequests, body: `quota`},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`},
		{name: "empty text", status: http.StatusOK, body: `{"candidates":[{"content":{"parts":[]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := New(Config{APIKey: "k", APIURL: srv.URL})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if _, err := client.GenerateContent(context.Background(), &Request{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}
