package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned by New when no key is configured.
var ErrMissingAPIKey = errors.New("gemini api key is required (set gemini.api_key or GEMINI_API_KEY)")

// Options configures the Gemini client. BaseURL and HTTPClient are only
// needed to point the client somewhere other than the public endpoint.
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

type implAnalyzer struct {
	client *genai.Client
	model  string
}

// New creates an Analyzer backed by the Gemini API.
func New(ctx context.Context, opts Options) (Analyzer, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}

	cc := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &implAnalyzer{
		client: client,
		model:  opts.Model,
	}, nil
}
