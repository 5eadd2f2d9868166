package brief

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"modcon/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

type staticKeys map[string]string

func (k staticKeys) Token(ctx context.Context, provider string) (string, error) {
	return k[provider], nil
}

func newTestAgent(opts Options, rt roundTripFunc) *Agent {
	opts.HTTPClient = &http.Client{Transport: rt}
	a := NewAgent(opts)
	a.sleep = func(context.Context, time.Duration) error { return nil }
	return a
}

func TestBuildSystemPromptEmbedsPlan(t *testing.T) {
	got := BuildSystemPrompt(map[string]any{"campaign_name": "Spring"})
	if !strings.HasSuffix(got, "Current Plan State:\n{\n  \"campaign_name\": \"Spring\"\n}") {
		t.Fatalf("prompt tail = %q", got[len(got)-60:])
	}
	if !strings.HasSuffix(BuildSystemPrompt(nil), "{}") {
		t.Fatalf("nil plan should render as {}")
	}
}

func TestReplyPrefersOpenAI(t *testing.T) {
	var captured openAIChatRequest
	var auth, path string
	agent := newTestAgent(Options{OpenAIAPIKey: "sk-test", GeminiAPIKey: "g-test"}, func(r *http.Request) (*http.Response, error) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"choices":[{"message":{"content":"  What is the SMP?  "}}]}`), nil
	})

	reply, err := agent.Reply(context.Background(), ChatRequest{
		History: []Message{
			{Role: "user", Content: "Hi"},
			{Role: "system", Content: "ignored"},
			{Role: "assistant", Content: "Hello"},
		},
	})
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if reply != "What is the SMP?" {
		t.Fatalf("reply = %q, want %q", reply, "What is the SMP?")
	}
	if auth != "Bearer sk-test" {
		t.Fatalf("Authorization = %q", auth)
	}
	if path != "/v1/chat/completions" {
		t.Fatalf("path = %q", path)
	}
	if captured.Model != "gpt-4o" || captured.Temperature != 0.7 {
		t.Fatalf("model/temperature = %q/%v", captured.Model, captured.Temperature)
	}
	if len(captured.Messages) != 3 || captured.Messages[0].Role != "system" || captured.Messages[2].Role != "assistant" {
		t.Fatalf("messages = %#v", captured.Messages)
	}
}

func TestReplyGeminiPayload(t *testing.T) {
	var captured geminiRequest
	var rawURL string
	agent := newTestAgent(Options{GeminiAPIKey: "g-key", GeminiModel: "models/gemini-2.5-pro"}, func(r *http.Request) (*http.Response, error) {
		rawURL = r.URL.String()
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Tell me"},{"text":"about KPIs."}]}}]}`), nil
	})

	reply, err := agent.Reply(context.Background(), ChatRequest{
		History: []Message{{Role: "user", Content: "Hi"}, {Role: "assistant", Content: "Hello"}},
	})
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if reply != "Tell me about KPIs." {
		t.Fatalf("reply = %q", reply)
	}
	want := "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-pro:generateContent?key=g-key"
	if rawURL != want {
		t.Fatalf("url = %q, want %q", rawURL, want)
	}
	if len(captured.Contents) != 2 || captured.Contents[1].Role != "model" {
		t.Fatalf("contents = %#v", captured.Contents)
	}
	if !strings.HasPrefix(captured.SystemInstruction.Parts[0].Text, "You are an expert Content Strategy Architect") {
		t.Fatalf("system instruction missing persona")
	}
}

func TestReplyWithoutKeys(t *testing.T) {
	agent := newTestAgent(Options{}, func(r *http.Request) (*http.Response, error) {
		t.Fatalf("unexpected request to %s", r.URL)
		return nil, nil
	})
	reply, err := agent.Reply(context.Background(), ChatRequest{})
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if reply != missingGeminiKeyReply {
		t.Fatalf("reply = %q", reply)
	}

	agent.opts.DemoStub = true
	reply, _ = agent.Reply(context.Background(), ChatRequest{})
	if reply != demoReply {
		t.Fatalf("demo reply = %q", reply)
	}
}

func TestReplyUsesStoredKey(t *testing.T) {
	var auth string
	agent := newTestAgent(Options{Keys: staticKeys{ProviderOpenAI: " stored "}}, func(r *http.Request) (*http.Response, error) {
		auth = r.Header.Get("Authorization")
		return jsonResponse(http.StatusOK, `{"choices":[]}`), nil
	})
	reply, err := agent.Reply(context.Background(), ChatRequest{})
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if auth != "Bearer stored" {
		t.Fatalf("Authorization = %q", auth)
	}
	if reply != emptyReply {
		t.Fatalf("reply = %q, want %q", reply, emptyReply)
	}
}

func TestReplyUnparseableBodyReturnsRaw(t *testing.T) {
	agent := newTestAgent(Options{OpenAIAPIKey: "k"}, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "plain text answer"), nil
	})
	reply, err := agent.Reply(context.Background(), ChatRequest{})
	if err != nil {
		t.Fatalf("Reply returned error: %v", err)
	}
	if reply != "plain text answer" {
		t.Fatalf("reply = %q", reply)
	}
}

func TestRetryPolicy(t *testing.T) {
	cases := []struct {
		name      string
		statuses  []int
		wantCalls int
		wantErr   bool
	}{
		{name: "recovers_after_503", statuses: []int{503, 200}, wantCalls: 2},
		{name: "gives_up_after_two_retries", statuses: []int{429, 502, 504, 200}, wantCalls: 3, wantErr: true},
		{name: "no_retry_on_400", statuses: []int{400, 200}, wantCalls: 1, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			agent := newTestAgent(Options{OpenAIAPIKey: "k", MaxRetries: 2}, func(r *http.Request) (*http.Response, error) {
				status := tc.statuses[calls]
				calls++
				if status != http.StatusOK {
					return jsonResponse(status, `{"error":"busy"}`), nil
				}
				return jsonResponse(status, `{"choices":[{"message":{"content":"ok"}}]}`), nil
			})
			_, err := agent.Reply(context.Background(), ChatRequest{})
			if calls != tc.wantCalls {
				t.Fatalf("calls = %d, want %d", calls, tc.wantCalls)
			}
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrProviderFailure) {
				t.Fatalf("err = %v, want ErrProviderFailure", err)
			}
		})
	}
}

func TestRetryOnTransportErrorAndBackoff(t *testing.T) {
	var waits []time.Duration
	calls := 0
	agent := newTestAgent(Options{OpenAIAPIKey: "k", MaxRetries: 2}, func(r *http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("connection reset")
	})
	agent.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	_, err := agent.Reply(context.Background(), ChatRequest{})
	if err == nil || !strings.Contains(err.Error(), "Request failed") {
		t.Fatalf("err = %v, want request failure", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
	if len(waits) != 2 || waits[0] != 750*time.Millisecond || waits[1] != 1500*time.Millisecond {
		t.Fatalf("waits = %v", waits)
	}
}

func TestMalformedBaseURLFailsWithoutRetry(t *testing.T) {
	calls, sleeps := 0, 0
	agent := newTestAgent(Options{OpenAIAPIKey: "k", OpenAIBaseURL: "http://[::1", MaxRetries: 2}, func(r *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	agent.sleep = func(context.Context, time.Duration) error {
		sleeps++
		return nil
	}
	_, err := agent.Reply(context.Background(), ChatRequest{})
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("err = %v, want ErrProviderFailure", err)
	}
	if calls != 0 || sleeps != 0 {
		t.Fatalf("calls = %d sleeps = %d, want no attempts and no backoff", calls, sleeps)
	}
}
