package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// noAnswer is persisted verbatim when the gateway returns no choices.
const noAnswer = "No answer"

// Completer produces the answer for a single chat question. The returned
// value is the raw JSON to store and echo to the client: the gateway's
// message object, or the JSON string "No answer".
type Completer interface {
	Complete(ctx context.Context, question string) (json.RawMessage, error)
}

// MistralClient talks to Mistral's chat-completions endpoint, which speaks
// the OpenAI wire format.
type MistralClient struct {
	client *openai.Client
	model  string
}

func NewMistralClient(apiKey, baseURL, model string, timeout time.Duration) *MistralClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &MistralClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// answerMessage is the shape stored and returned per turn.
type answerMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Complete sends the question as a single-message conversation. No prior
// history is attached, so the model has no memory of earlier turns.
func (c *MistralClient) Complete(ctx context.Context, question string) (json.RawMessage, error) {
	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	elapsed := time.Since(start)

	if err != nil {
		log.Error().
			Err(err).
			Str("model", c.model).
			Dur("elapsed", elapsed).
			Msg("gateway completion failed")
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		log.Warn().
			Str("model", c.model).
			Dur("elapsed", elapsed).
			Msg("gateway returned no choices")
		return json.Marshal(noAnswer)
	}

	log.Info().
		Str("model", c.model).
		Dur("elapsed", elapsed).
		Int("totalTokens", resp.Usage.TotalTokens).
		Msg("gateway completion ok")

	return json.Marshal(answerMessage{
		Role:    resp.Choices[0].Message.Role,
		Content: resp.Choices[0].Message.Content,
	})
}
