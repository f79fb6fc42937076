package generators

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go"
	"github.com/reusee/dscope"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/modes"
)

func TestOpenAI(t *testing.T) {
	var request struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Error(err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": "1",
			"object": "chat.completion",
			"created": 1,
			"model": "llama3",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "<end></end>"}
			}]
		}`)
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		newOpenAI NewOpenAI,
	) {
		g := newOpenAI(GeneratorArgs{
			BaseURL: server.URL,
			Model:   "llama3",
		})
		text, err := g.Generate(t.Context(), "system", []Content{
			UserContent("The task is: x"),
			ModelContent("[]"),
			UserContent("continue"),
		}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if text != "<end></end>" {
			t.Fatalf("got %s", text)
		}
		if request.Model != "llama3" {
			t.Fatalf("got %s", request.Model)
		}
		roles := []string{"system", "user", "assistant", "user"}
		if len(request.Messages) != len(roles) {
			t.Fatalf("got %+v", request.Messages)
		}
		for i, role := range roles {
			if request.Messages[i].Role != role {
				t.Fatalf("got %+v", request.Messages)
			}
		}
		if request.Messages[1].Content != "The task is: x" {
			t.Fatalf("got %+v", request.Messages)
		}
	})
}

func TestOpenAIUnexpectedResponse(t *testing.T) {
	if _, err := openAIText(&openai.ChatCompletion{}); !errors.Is(err, ErrUnexpectedResponse) {
		t.Fatalf("got %v", err)
	}
}
