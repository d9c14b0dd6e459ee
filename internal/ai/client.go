package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// InvokeTimeout bounds a single oracle call. Callers wanting a tighter bound
// wrap the context themselves; this layer never retries.
const InvokeTimeout = 30 * time.Second

// ContentGenerator defines the interface for generating content via Gemini.
// This abstraction enables testing without making actual API calls.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// modelsAdapter wraps *genai.Models to implement ContentGenerator.
type modelsAdapter struct {
	models *genai.Models
}

func (m *modelsAdapter) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	resp, err := m.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("genai.GenerateContent: %w", err)
	}
	return resp, nil
}

// Payload is the caller input for one oracle call: text, optionally with an
// inline image for vision tasks.
type Payload struct {
	Text      string
	Image     []byte
	ImageMIME string
}

// Client wraps the Gemini API for single-attempt, contract-driven calls.
type Client struct {
	generator ContentGenerator
	model     string
}

// NewClient creates a client with the provided API key and model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		generator: &modelsAdapter{models: gc.Models},
		model:     model,
	}, nil
}

// NewClientWithGenerator creates a Client with a custom ContentGenerator.
// This is primarily used for testing with mock generators.
func NewClientWithGenerator(generator ContentGenerator, model string) *Client {
	return &Client{generator: generator, model: model}
}

// Invoke builds a single completion request from the contract and payload and
// returns the raw model text. Structured contracts request JSON-constrained
// output; the reminder task accepts plain text. One attempt, no backoff.
func (c *Client) Invoke(ctx context.Context, contract *Contract, payload Payload) (string, error) {
	if c.generator == nil {
		return "", &TransportError{Cause: errors.New("generator not initialized")}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, InvokeTimeout)
	defer cancel()

	var parts []*genai.Part
	if contract.WantsImage {
		mime := payload.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: mime, Data: payload.Image},
		})
	}

	text := contract.Instruction
	if payload.Text != "" {
		text += "\n\n" + payload.Text
	}
	parts = append(parts, &genai.Part{Text: text})

	var cfg *genai.GenerateContentConfig
	if !contract.PlainText {
		temp := float32(0.3)
		cfg = &genai.GenerateContentConfig{
			Temperature:      &temp,
			ResponseMIMEType: "application/json",
			ResponseSchema:   contract.ResponseSchema,
		}
	}

	resp, err := c.generator.GenerateContent(timeoutCtx, c.model, []*genai.Content{
		{Role: "user", Parts: parts},
	}, cfg)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TransportError{Cause: ErrInvokeTimeout}
		}
		return "", &TransportError{Cause: err}
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &SchemaValidationError{Task: contract.Task, Reason: "no response candidates"}
	}

	var raw string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			raw += part.Text
		}
	}

	if raw == "" {
		return "", &SchemaValidationError{Task: contract.Task, Reason: "empty response"}
	}

	return raw, nil
}
