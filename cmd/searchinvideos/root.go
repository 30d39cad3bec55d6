package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/searchinvideos/internal/analysis"
	"github.com/nguyentantai21042004/searchinvideos/internal/config"
	"github.com/nguyentantai21042004/searchinvideos/internal/gemini"
	"github.com/nguyentantai21042004/searchinvideos/internal/logger"
	"github.com/nguyentantai21042004/searchinvideos/internal/transcode"
	"github.com/nguyentantai21042004/searchinvideos/pkg/executor"
)

const defaultConfigPath = "config.yaml"

// app holds what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "searchinvideos",
		Short:         "Convert videos to size-bounded MP3 and analyze them with Gemini",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				logger.Sync(a.log)
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "path to the YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	root.AddCommand(
		newConvertCmd(a),
		newAnalyzeCmd(a),
		newRunCmd(a),
		newWatchCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newPromptCmd(a),
		newCheckCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if err := cfg.LoadEnv(); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	return nil
}

// loadConfig falls back to built-in defaults only when the default path is
// absent; an explicit --config must exist.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}

func (a *app) transcoder() transcode.Transcoder {
	return transcode.New(transcode.Options{
		AudioDir:    a.cfg.Paths.Audio,
		FFmpegPath:  a.cfg.Transcode.FFmpegPath,
		FFprobePath: a.cfg.Transcode.FFprobePath,
	}, executor.New(), a.log)
}

func (a *app) store() analysis.Store {
	return analysis.NewStore(a.cfg.Paths.Analysis)
}

func (a *app) runner(ctx context.Context) (analysis.Runner, error) {
	an, err := gemini.New(ctx, gemini.Options{
		APIKey:  a.cfg.Gemini.APIKey,
		Model:   a.cfg.Gemini.Model,
		BaseURL: a.cfg.Gemini.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return analysis.New(a.store(), an, analysis.Options{
		SkipExisting: a.cfg.SkipExistingAnalyses(),
		Docx:         a.cfg.Analysis.Docx,
	}, a.log), nil
}

// dirArg returns args[0] when present, else def.
func dirArg(args []string, def string) string {
	if len(args) > 0 {
		return args[0]
	}
	return def
}

func printAnalysisSummary(cmd *cobra.Command, s analysis.Summary) error {
	out := cmd.OutOrStdout()
	for _, r := range s.Results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(out, "FAILED  %s: %v\n", r.AudioPath, r.Err)
		case r.Skipped:
			fmt.Fprintf(out, "CACHED  %s -> %s\n", r.AudioPath, r.TextPath)
		default:
			fmt.Fprintf(out, "DONE    %s -> %s\n", r.AudioPath, r.TextPath)
		}
	}
	if failed := len(s.Failed()); failed > 0 {
		return fmt.Errorf("%d of %d analyses failed", failed, len(s.Results))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
