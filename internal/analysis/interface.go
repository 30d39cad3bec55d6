package analysis

import "context"

// Runner submits audio files for analysis and persists the results.
type Runner interface {
	Run(ctx context.Context, audioPaths []string, prompt string) Summary
}

// Result is the outcome for a single audio file.
type Result struct {
	AudioPath string
	TextPath  string
	DocxPath  string
	Text      string
	Skipped   bool
	Err       error
}

// Summary collects the per-file results of one Run, in input order.
type Summary struct {
	Results []Result
}

// Counts returns the number of analyzed, skipped and failed files.
func (s Summary) Counts() (analyzed, skipped, failed int) {
	for _, r := range s.Results {
		switch {
		case r.Err != nil:
			failed++
		case r.Skipped:
			skipped++
		default:
			analyzed++
		}
	}
	return analyzed, skipped, failed
}

// Failed returns only the results that carry an error.
func (s Summary) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
