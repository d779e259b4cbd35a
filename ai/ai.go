package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

//go:generate mockgen --build_flags=--mod=mod -source=./ai.go -destination=./test/mock_ai.go -package test

const (
	completionModel       = openai.GPT3Dot5Turbo
	completionTemperature = 0.7
	identifyMaxTokens     = 500
	chatMaxTokens         = 300

	chatSystemPrompt = "You are a helpful health assistant for the MedWell application. " +
		"Provide general health information only. You are not a doctor and must not " +
		"give a diagnosis. Always advise the user to consult a doctor for medical concerns."

	fallbackResponse = "Sorry, I couldn't generate a response. Please try again."
)

// CompletionAPI is the surface of the vendor client used by this package.
type CompletionAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client interface {
	IdentifyConditions(ctx context.Context, symptoms []string) (string, error)
	Chat(ctx context.Context, message string, history []ChatMessage) (string, error)
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func NewCompletionAPI(cfg *Config) CompletionAPI {
	config := openai.DefaultConfig(cfg.ApiKey)
	if cfg.BaseUrl != "" {
		config.BaseURL = cfg.BaseUrl
	}
	return openai.NewClientWithConfig(config)
}

func NewClient(api CompletionAPI) Client {
	return &client{
		api: api,
	}
}

type client struct {
	api CompletionAPI
}

func (c *client) IdentifyConditions(ctx context.Context, symptoms []string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: completionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildSymptomPrompt(symptoms),
			},
		},
		Temperature: completionTemperature,
		MaxTokens:   identifyMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	return completionText(resp), nil
}

func (c *client) Chat(ctx context.Context, message string, history []ChatMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: chatSystemPrompt,
	})
	for _, turn := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       completionModel,
		Messages:    messages,
		Temperature: completionTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	return completionText(resp), nil
}

func buildSymptomPrompt(symptoms []string) string {
	return fmt.Sprintf(
		"A user reports the following symptoms: %s. "+
			"List the possible conditions these symptoms may indicate, from most to "+
			"least likely, with a short explanation for each. Remind the user that "+
			"this is general information and they should consult a doctor.",
		strings.Join(symptoms, ", "))
}

func completionText(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return fallbackResponse
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return fallbackResponse
	}
	return text
}
