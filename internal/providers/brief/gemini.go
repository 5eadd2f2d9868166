package brief

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction geminiContent   `json:"systemInstruction"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiBackend struct {
	apiKey  string
	model   string
	baseURL string
	poster  *poster
}

func (g *geminiBackend) reply(ctx context.Context, system string, history []Message) (string, error) {
	payload := geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: system}}},
		Contents:          []geminiContent{},
	}
	for _, m := range conversation(history) {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		payload.Contents = append(payload.Contents, geminiContent{Role: role, Parts: []geminiPart{{Text: m.Content}}})
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, geminiModelName(g.model), url.QueryEscape(g.apiKey))
	raw, err := g.poster.post(ctx, endpoint, payload, nil)
	if err != nil {
		return "", err
	}
	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return rawOrEmpty(raw), nil
	}
	if len(out.Candidates) == 0 {
		return emptyReply, nil
	}
	texts := make([]string, 0, len(out.Candidates[0].Content.Parts))
	for _, p := range out.Candidates[0].Content.Parts {
		texts = append(texts, p.Text)
	}
	if text := strings.TrimSpace(strings.Join(texts, " ")); text != "" {
		return text, nil
	}
	return emptyReply, nil
}

// geminiModelName accepts both "gemini-2.5-pro" and "models/gemini-2.5-pro".
func geminiModelName(model string) string {
	return strings.TrimPrefix(strings.TrimSpace(model), "models/")
}
