package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		maxSizeMB float64
		flags     analyzeFlags
	)

	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Convert a directory of videos, then analyze the resulting MP3 files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-size-mb") {
				a.cfg.Transcode.MaxSizeMB = maxSizeMB
			}
			flags.apply(a.cfg)

			// Fail on configuration before spending time on ffmpeg.
			prompt, err := a.cfg.ResolvePrompt()
			if err != nil {
				return err
			}
			r, err := a.runner(cmd.Context())
			if err != nil {
				return err
			}

			report, err := a.convert(cmd.Context(), dirArg(args, a.cfg.Paths.Videos))
			if err != nil {
				return err
			}
			convertErr := printReport(cmd, report)

			analyzeErr := printAnalysisSummary(cmd, r.Run(cmd.Context(), report.Paths(), prompt))
			return errors.Join(convertErr, analyzeErr)
		},
	}

	cmd.Flags().Float64Var(&maxSizeMB, "max-size-mb", 0, "size bound for each MP3 in MB (default: transcode.max_size_mb)")
	flags.register(cmd)
	return cmd
}
