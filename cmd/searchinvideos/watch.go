package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/searchinvideos/internal/gemini"
	"github.com/nguyentantai21042004/searchinvideos/internal/processor"
	"github.com/nguyentantai21042004/searchinvideos/internal/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Convert (and analyze, when an API key is set) videos as they appear in dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dir := dirArg(args, a.cfg.Paths.Videos)

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create watch dir: %w", err)
			}
			for _, d := range []string{a.cfg.Paths.Audio, a.cfg.Paths.Analysis} {
				if err := os.MkdirAll(d, 0755); err != nil {
					return fmt.Errorf("create output dir %s: %w", d, err)
				}
			}

			prompt, err := a.cfg.ResolvePrompt()
			if err != nil {
				return err
			}

			r, err := a.runner(ctx)
			if errors.Is(err, gemini.ErrMissingAPIKey) {
				a.log.Warn(ctx, "No Gemini API key configured; watch mode will only convert")
				r, err = nil, nil
			}
			if err != nil {
				return err
			}

			proc := processor.New(processor.Options{
				MaxSizeMB: a.cfg.Transcode.MaxSizeMB,
				Prompt:    prompt,
			}, a.transcoder(), r, a.log)

			w, err := watcher.New(watcher.Options{
				Dir:         dir,
				SettleDelay: a.cfg.Watch.SettleDelay,
			}, proc.Process, a.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info(ctx, "Output: %s (audio), %s (analysis). Press Ctrl+C to stop", a.cfg.Paths.Audio, a.cfg.Paths.Analysis)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
