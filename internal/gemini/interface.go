package gemini

import "context"

// Analyzer sends one audio file and a prompt to a generative model and
// returns the model's text.
type Analyzer interface {
	Analyze(ctx context.Context, audioPath, prompt string) (string, error)
}
