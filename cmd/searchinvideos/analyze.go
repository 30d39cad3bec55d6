package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/searchinvideos/internal/config"
)

type analyzeFlags struct {
	promptFile string
	model      string
	reanalyze  bool
	docx       bool
}

func (f *analyzeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.promptFile, "prompt-file", "", "read the analysis prompt from this file")
	cmd.Flags().StringVar(&f.model, "model", "", "Gemini model (default: gemini.model)")
	cmd.Flags().BoolVar(&f.reanalyze, "reanalyze", false, "ignore existing analyses and request new ones")
	cmd.Flags().BoolVar(&f.docx, "docx", false, "also export each analysis as .docx")
}

func (f *analyzeFlags) apply(cfg *config.Config) {
	if f.promptFile != "" {
		cfg.Gemini.Prompt = ""
		cfg.Gemini.PromptFile = f.promptFile
	}
	if f.model != "" {
		cfg.Gemini.Model = f.model
	}
	if f.reanalyze {
		skip := false
		cfg.Analysis.SkipExisting = &skip
	}
	if f.docx {
		cfg.Analysis.Docx = true
	}
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze [audio...]",
		Short: "Analyze MP3 files with Gemini (default: every .mp3 in paths.audio)",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(a.cfg)

			audio := args
			if len(audio) == 0 {
				var err error
				if audio, err = listAudio(a.cfg.Paths.Audio); err != nil {
					return err
				}
			}
			for _, p := range audio {
				if !fileExists(p) {
					return fmt.Errorf("audio file not found: %s", p)
				}
			}

			prompt, err := a.cfg.ResolvePrompt()
			if err != nil {
				return err
			}
			r, err := a.runner(cmd.Context())
			if err != nil {
				return err
			}
			return printAnalysisSummary(cmd, r.Run(cmd.Context(), audio, prompt))
		},
	}

	flags.register(cmd)
	return cmd
}

func listAudio(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("audio directory %s: %w", dir, err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.mp3"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
