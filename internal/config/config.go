package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAudioDir     = "output/audio"
	DefaultAnalysisDir  = "output/analysis"
	DefaultVideoDir     = "./videos"
	DefaultMaxSizeMB    = 15
	DefaultModel        = "gemini-1.5-flash-002"
	DefaultSettleDelay  = 500 * time.Millisecond
	APIKeyEnv           = "GEMINI_API_KEY"
	envFile             = ".env"
	defaultFFmpegPath   = "ffmpeg"
	defaultFFprobePath  = "ffprobe"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultLogMaxSizeMB = 10
)

type Config struct {
	Paths     PathsConfig     `yaml:"paths"`
	Transcode TranscodeConfig `yaml:"transcode"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Watch     WatchConfig     `yaml:"watch"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type PathsConfig struct {
	Videos   string `yaml:"videos"`
	Audio    string `yaml:"audio"`
	Analysis string `yaml:"analysis"`
}

type TranscodeConfig struct {
	MaxSizeMB   float64 `yaml:"max_size_mb"`
	FFmpegPath  string  `yaml:"ffmpeg_path"`
	FFprobePath string  `yaml:"ffprobe_path"`
}

type GeminiConfig struct {
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	Prompt     string `yaml:"prompt"`
	PromptFile string `yaml:"prompt_file"`
	BaseURL    string `yaml:"base_url"`
}

type AnalysisConfig struct {
	// SkipExisting is a pointer so an explicit false survives defaulting.
	SkipExisting *bool `yaml:"skip_existing"`
	Docx         bool  `yaml:"docx"`
}

type WatchConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Load reads a YAML config file and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	// Validate cannot fail on the zero config.
	_ = cfg.Validate()
	return cfg
}

// LoadEnv loads a .env file from the working directory, if any, and fills
// the Gemini API key from GEMINI_API_KEY when the config leaves it empty.
// A missing .env is fine; one that does not parse is an error.
func (c *Config) LoadEnv() error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = os.Getenv(APIKeyEnv)
	}
	return nil
}

// SkipExistingAnalyses reports whether analyses already on disk are reused.
func (c *Config) SkipExistingAnalyses() bool {
	return c.Analysis.SkipExisting == nil || *c.Analysis.SkipExisting
}

// ResolvePrompt returns the inline prompt, else the prompt file contents,
// else the built-in template.
func (c *Config) ResolvePrompt() (string, error) {
	if c.Gemini.Prompt != "" {
		return c.Gemini.Prompt, nil
	}
	if c.Gemini.PromptFile != "" {
		data, err := os.ReadFile(c.Gemini.PromptFile)
		if err != nil {
			return "", fmt.Errorf("read prompt file: %w", err)
		}
		return string(data), nil
	}
	return DefaultPrompt, nil
}

func (c *Config) Validate() error {
	if !(c.Transcode.MaxSizeMB >= 0) {
		return fmt.Errorf("transcode.max_size_mb must be positive, got %v", c.Transcode.MaxSizeMB)
	}
	if c.Watch.SettleDelay < 0 {
		return fmt.Errorf("watch.settle_delay must not be negative")
	}

	if c.Paths.Videos == "" {
		c.Paths.Videos = DefaultVideoDir
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = DefaultAudioDir
	}
	if c.Paths.Analysis == "" {
		c.Paths.Analysis = DefaultAnalysisDir
	}
	if c.Transcode.MaxSizeMB == 0 {
		c.Transcode.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.Transcode.FFmpegPath == "" {
		c.Transcode.FFmpegPath = defaultFFmpegPath
	}
	if c.Transcode.FFprobePath == "" {
		c.Transcode.FFprobePath = defaultFFprobePath
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = DefaultModel
	}
	if c.Watch.SettleDelay == 0 {
		c.Watch.SettleDelay = DefaultSettleDelay
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}

	return nil
}
