package push

import (
	"context"
	"fmt"
	"strings"

	"github.com/Role1776/gigago"
	"github.com/rs/zerolog/log"
)

// GigaChatParaphraser rewrites push templates through the GigaChat API.
type GigaChatParaphraser struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
}

// NewGigaChatParaphraser authenticates against GigaChat and prepares the
// generative model used for paraphrasing.
func NewGigaChatParaphraser(ctx context.Context, apiKey, scope string, insecureSkipVerify bool) (*GigaChatParaphraser, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(scope),
	}
	if insecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		log.Warn().Msg("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, apiKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gigachat client: %w", err)
	}

	m := client.GenerativeModel("GigaChat")
	m.Temperature = 0.3

	return &GigaChatParaphraser{client: client, model: m}, nil
}

// Paraphrase sends the instruction and template as a single prompt and
// returns the model's reply. The caller bounds ctx with a timeout and
// re-validates whatever comes back.
func (g *GigaChatParaphraser) Paraphrase(ctx context.Context, instruction, text string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: instruction + "\n\n" + text},
	}
	resp, err := g.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("gigachat generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("gigachat: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (g *GigaChatParaphraser) Close() error {
	g.client.Close()
	return nil
}
