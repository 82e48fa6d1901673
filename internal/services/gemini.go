package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/vishalnotfound/AI-Interview-Agent/internal/config"
	"github.com/vishalnotfound/AI-Interview-Agent/internal/models"
)

// CompletionClient is the single request/response surface of the
// generative-text backend. Failures propagate to the caller; there is
// no retry policy here.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client *genai.Client
	cfg    config.GeminiConfig
}

func NewGeminiClient(cfg config.GeminiConfig) (CompletionClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		cfg:    cfg,
	}, nil
}

// Complete implements CompletionClient.
func (g *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	temperature := g.cfg.Temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.cfg.MaxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.Model, genai.Text(prompt), genConfig)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", models.ErrBackendTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", models.ErrBackend, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", models.ErrBackend)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", models.ErrBackend)
	}

	return text, nil
}
