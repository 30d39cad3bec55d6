package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/searchinvideos/internal/transcode"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg, ffprobe and the Gemini API key are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if err := transcode.CheckDeps(a.cfg.Transcode.FFmpegPath, a.cfg.Transcode.FFprobePath); err != nil {
				return err
			}
			fmt.Fprintf(out, "ffmpeg:  %s\n", a.cfg.Transcode.FFmpegPath)
			fmt.Fprintf(out, "ffprobe: %s\n", a.cfg.Transcode.FFprobePath)

			if a.cfg.Gemini.APIKey == "" {
				fmt.Fprintln(out, "gemini:  no API key (analyze is unavailable)")
			} else {
				fmt.Fprintf(out, "gemini:  key set, model %s\n", a.cfg.Gemini.Model)
			}
			return nil
		},
	}
}
