package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/searchinvideos/internal/batch"
	"github.com/nguyentantai21042004/searchinvideos/internal/transcode"
)

func newConvertCmd(a *app) *cobra.Command {
	var maxSizeMB float64

	cmd := &cobra.Command{
		Use:   "convert [dir]",
		Short: "Convert every video in dir to MP3 (default: paths.videos)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-size-mb") {
				a.cfg.Transcode.MaxSizeMB = maxSizeMB
			}
			report, err := a.convert(cmd.Context(), dirArg(args, a.cfg.Paths.Videos))
			if err != nil {
				return err
			}
			return printReport(cmd, report)
		},
	}

	cmd.Flags().Float64Var(&maxSizeMB, "max-size-mb", 0, "size bound for each MP3 in MB (default: transcode.max_size_mb)")
	return cmd
}

func (a *app) convert(ctx context.Context, dir string) (batch.Report, error) {
	if !(a.cfg.Transcode.MaxSizeMB > 0) {
		return batch.Report{}, fmt.Errorf("max size must be positive, got %v", a.cfg.Transcode.MaxSizeMB)
	}
	d := batch.New(batch.Options{
		MaxSizeMB:  a.cfg.Transcode.MaxSizeMB,
		OutputDirs: []string{a.cfg.Paths.Audio, a.cfg.Paths.Analysis},
	}, a.transcoder(), a.log)
	return d.ProcessDirectory(ctx, dir)
}

// printReport lists created paths on stdout. Videos without audio are not
// counted as failures.
func printReport(cmd *cobra.Command, report batch.Report) error {
	out := cmd.OutOrStdout()
	for _, p := range report.Paths() {
		fmt.Fprintln(out, p)
	}

	failed := 0
	for _, f := range report.Failures {
		if f.Kind == transcode.KindNoAudioTrack {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: no audio track\n", f.File)
			continue
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "failed %s: %v\n", f.File, f.Err)
		failed++
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d videos failed to convert", failed, len(report.Artifacts)+len(report.Failures))
	}
	return nil
}
