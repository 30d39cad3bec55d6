package analysis

import (
	"context"
	"fmt"
	"path/filepath"
)

// Run analyzes audioPaths one after another. A failing file is recorded in
// the summary and the loop moves on.
func (r *implRunner) Run(ctx context.Context, audioPaths []string, prompt string) Summary {
	var summary Summary

	if len(audioPaths) == 0 {
		r.logger.Info(ctx, "No audio files to analyze")
		return summary
	}

	r.logger.Info(ctx, "Found %d audio files to analyze", len(audioPaths))

	for i, audioPath := range audioPaths {
		if err := ctx.Err(); err != nil {
			r.logger.Warn(ctx, "Analysis cancelled after %d/%d files: %v", i, len(audioPaths), err)
			break
		}

		name := filepath.Base(audioPath)
		r.logger.Info(ctx, "[%d/%d] Analyzing: %s", i+1, len(audioPaths), name)

		res := r.analyzeOne(ctx, audioPath, prompt)
		if res.Err != nil {
			r.logger.Error(ctx, "Failed to analyze %s: %v", name, res.Err)
		} else if res.Skipped {
			r.logger.Info(ctx, "[SKIP] %s already analyzed: %s", name, res.TextPath)
		} else {
			r.logger.Info(ctx, "[DONE] %s -> %s", name, res.TextPath)
		}
		summary.Results = append(summary.Results, res)
	}

	analyzed, skipped, failed := summary.Counts()
	r.logger.Info(ctx, "Analysis complete: %d analyzed, %d skipped, %d failed", analyzed, skipped, failed)
	return summary
}

func (r *implRunner) analyzeOne(ctx context.Context, audioPath, prompt string) Result {
	res := Result{AudioPath: audioPath, TextPath: r.store.PathFor(audioPath)}

	if r.opts.SkipExisting {
		text, ok, err := r.store.Load(audioPath)
		if err != nil {
			res.Err = fmt.Errorf("load existing analysis: %w", err)
			return res
		}
		if ok {
			res.Text = text
			res.Skipped = true
			return res
		}
	}

	text, err := r.analyzer.Analyze(ctx, audioPath, prompt)
	if err != nil {
		res.Err = err
		return res
	}
	res.Text = text

	if _, err := r.store.Save(audioPath, res.Text); err != nil {
		res.Err = err
		return res
	}

	if r.opts.Docx {
		docxPath, err := r.store.ExportDocx(audioPath, res.Text)
		if err != nil {
			r.logger.Warn(ctx, "Failed to export docx for %s: %v", filepath.Base(audioPath), err)
		} else {
			res.DocxPath = docxPath
		}
	}

	return res
}
