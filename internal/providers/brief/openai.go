package brief

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type openAIChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openAIBackend struct {
	apiKey  string
	model   string
	baseURL string
	poster  *poster
}

func (o *openAIBackend) reply(ctx context.Context, system string, history []Message) (string, error) {
	payload := openAIChatRequest{
		Model:       o.model,
		Temperature: 0.7,
		Messages:    append([]Message{{Role: "system", Content: system}}, conversation(history)...),
	}
	raw, err := o.poster.post(ctx, fmt.Sprintf("%s/chat/completions", o.baseURL), payload, map[string]string{
		"Authorization": "Bearer " + o.apiKey,
	})
	if err != nil {
		return "", err
	}
	var out openAIChatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return rawOrEmpty(raw), nil
	}
	if len(out.Choices) == 0 {
		return emptyReply, nil
	}
	if text := strings.TrimSpace(out.Choices[0].Message.Content); text != "" {
		return text, nil
	}
	return emptyReply, nil
}

func rawOrEmpty(raw []byte) string {
	if len(raw) == 0 {
		return emptyReply
	}
	return string(raw)
}
