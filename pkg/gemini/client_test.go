package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quartz/pkg/gemini"
)

func TestBuildChatPrompt(t *testing.T) {
	history := []string{"User: hi", "Quartz: hello!"}
	prompt := gemini.BuildChatPrompt(history, "how are you")

	if !strings.Contains(prompt, "User: hi") {
		t.Errorf("prompt missing history line")
	}
	if !strings.Contains(prompt, "how are you") {
		t.Errorf("prompt missing current message")
	}

	bare := gemini.BuildChatPrompt(nil, "how are you")
	if bare != "how are you" {
		t.Errorf("prompt without history = %q, want the raw message", bare)
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Candidates) != 1 {
			t.Fatalf("expected 1 candidate")
		}
		if resp.Text() != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text())
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Empty Response Text", func(t *testing.T) {
		var empty gemini.GenerateResponse
		if got := empty.Text(); got != "" {
			t.Errorf("Text() on empty response = %q, want empty", got)
		}
	})
}
