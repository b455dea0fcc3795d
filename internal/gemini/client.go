// Package gemini adapts Google's Gemini API to the service.Inferencer
// contract. Each Infer performs exactly one outbound call requesting a
// schema-constrained JSON response, with the search tool attached when
// the task needs real-world grounding.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/Dxne-Dev/Bet-predict/internal/common"
	"github.com/Dxne-Dev/Bet-predict/internal/schema"
	"github.com/Dxne-Dev/Bet-predict/internal/service"
)

// Config holds the Gemini client settings.
type Config struct {
	APIKey       string
	DefaultModel string
	Temperature  float64
}

// Client implements service.Inferencer against the Gemini API.
type Client struct {
	client       *genai.Client
	defaultModel string
	temperature  float32
}

// NewClient creates a Gemini-backed inference client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is required", common.ErrMissingConfig)
	}

	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client:       client,
		defaultModel: model,
		temperature:  float32(temperature),
	}, nil
}

// Infer issues one generation call and returns the raw JSON payload,
// unparsed. Transport and provider errors are wrapped as provider
// failures so callers can apply their retry policy.
func (c *Client) Infer(ctx context.Context, req service.InferRequest) (json.RawMessage, error) {
	node, err := schema.Lookup(req.Schema)
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(c.temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenAISchema(node),
	}
	if req.AllowSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Task), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrProviderFailure, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty completion", common.ErrProviderFailure)
	}

	return json.RawMessage(text), nil
}

// toGenAISchema converts a registry contract to the wire schema format.
func toGenAISchema(node *schema.Node) *genai.Schema {
	if node == nil {
		return nil
	}

	out := &genai.Schema{}
	switch node.Kind {
	case schema.Object:
		out.Type = genai.TypeObject
		if len(node.Properties) > 0 {
			out.Properties = make(map[string]*genai.Schema, len(node.Properties))
			for name, prop := range node.Properties {
				out.Properties[name] = toGenAISchema(prop)
			}
		}
		out.Required = node.Required
	case schema.Array:
		out.Type = genai.TypeArray
		out.Items = toGenAISchema(node.Items)
	case schema.String:
		out.Type = genai.TypeString
		out.Enum = node.Enum
	case schema.Number:
		out.Type = genai.TypeNumber
	case schema.Boolean:
		out.Type = genai.TypeBoolean
	}
	if node.Nullable {
		out.Nullable = genai.Ptr(true)
	}
	return out
}
