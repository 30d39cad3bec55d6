package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit values",
			config: Config{
				Paths:     PathsConfig{Audio: "out/a", Analysis: "out/b"},
				Transcode: TranscodeConfig{MaxSizeMB: 20},
			},
			wantErr: false,
		},
		{
			name:    "negative max size",
			config:  Config{Transcode: TranscodeConfig{MaxSizeMB: -1}},
			wantErr: true,
		},
		{
			name:    "NaN max size",
			config:  Config{Transcode: TranscodeConfig{MaxSizeMB: math.NaN()}},
			wantErr: true,
		},
		{
			name:    "negative settle delay",
			config:  Config{Watch: WatchConfig{SettleDelay: -time.Second}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Paths.Audio != DefaultAudioDir {
		t.Errorf("Audio = %v, want %v", cfg.Paths.Audio, DefaultAudioDir)
	}
	if cfg.Paths.Analysis != DefaultAnalysisDir {
		t.Errorf("Analysis = %v, want %v", cfg.Paths.Analysis, DefaultAnalysisDir)
	}
	if cfg.Transcode.MaxSizeMB != DefaultMaxSizeMB {
		t.Errorf("MaxSizeMB = %v, want %v", cfg.Transcode.MaxSizeMB, DefaultMaxSizeMB)
	}
	if cfg.Gemini.Model != DefaultModel {
		t.Errorf("Model = %v, want %v", cfg.Gemini.Model, DefaultModel)
	}
	if !cfg.SkipExistingAnalyses() {
		t.Error("SkipExistingAnalyses() should default to true")
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  audio: "data/audio"
  analysis: "data/analysis"

transcode:
  max_size_mb: 8.5
  ffmpeg_path: "/usr/local/bin/ffmpeg"

gemini:
  model: "gemini-2.5-flash"
  prompt: "summarize"

analysis:
  skip_existing: false
  docx: true

watch:
  settle_delay: 2s

logging:
  level: "debug"
  format: "json"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Audio != "data/audio" {
		t.Errorf("Audio = %v, want %v", cfg.Paths.Audio, "data/audio")
	}
	if cfg.Transcode.MaxSizeMB != 8.5 {
		t.Errorf("MaxSizeMB = %v, want 8.5", cfg.Transcode.MaxSizeMB)
	}
	if cfg.Transcode.FFprobePath != "ffprobe" {
		t.Errorf("FFprobePath = %v, want default ffprobe", cfg.Transcode.FFprobePath)
	}
	if cfg.SkipExistingAnalyses() {
		t.Error("SkipExistingAnalyses() should honour explicit false")
	}
	if !cfg.Analysis.Docx {
		t.Error("Docx should be true")
	}
	if cfg.Watch.SettleDelay != 2*time.Second {
		t.Errorf("SettleDelay = %v, want 2s", cfg.Watch.SettleDelay)
	}
	if cfg.Paths.Videos != DefaultVideoDir {
		t.Errorf("Videos = %v, want %v", cfg.Paths.Videos, DefaultVideoDir)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("paths: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestResolvePrompt(t *testing.T) {
	cfg := Default()
	got, err := cfg.ResolvePrompt()
	if err != nil || got != DefaultPrompt {
		t.Errorf("ResolvePrompt() = %q, %v; want default prompt", got, err)
	}

	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte("from file"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Gemini.PromptFile = path
	if got, _ := cfg.ResolvePrompt(); got != "from file" {
		t.Errorf("ResolvePrompt() = %q, want %q", got, "from file")
	}

	cfg.Gemini.Prompt = "inline"
	if got, _ := cfg.ResolvePrompt(); got != "inline" {
		t.Errorf("ResolvePrompt() = %q, want %q", got, "inline")
	}

	cfg.Gemini.Prompt = ""
	cfg.Gemini.PromptFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := cfg.ResolvePrompt(); err == nil {
		t.Error("ResolvePrompt() should fail for a missing prompt file")
	}
}

func TestLoadEnvFillsAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "from-env")

	t.Chdir(t.TempDir())

	cfg := Default()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() without .env: %v", err)
	}
	if cfg.Gemini.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want from-env", cfg.Gemini.APIKey)
	}

	cfg = Default()
	cfg.Gemini.APIKey = "from-file"
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv(): %v", err)
	}
	if cfg.Gemini.APIKey != "from-file" {
		t.Errorf("APIKey = %q, want from-file", cfg.Gemini.APIKey)
	}
}

func TestLoadEnvReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(APIKeyEnv, "")
	os.Unsetenv(APIKeyEnv)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(APIKeyEnv+"=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv(): %v", err)
	}
	if cfg.Gemini.APIKey != "from-dotenv" {
		t.Errorf("APIKey = %q, want from-dotenv", cfg.Gemini.APIKey)
	}
}

func TestLoadEnvMalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_API_KEY=\"unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := Default().LoadEnv()
	if err == nil {
		t.Fatal("LoadEnv() should fail for a malformed .env")
	}
	if !strings.Contains(err.Error(), ".env") {
		t.Errorf("error %q should name the .env file", err)
	}
}

func TestDefaultPromptTemplate(t *testing.T) {
	for _, want := range []string{
		"[target topic] - these are instances where [explain what you're looking for]. \n\nPlease start with a brief overview",
		"If no clear examples are found, simply state that.",
	} {
		if !strings.Contains(DefaultPrompt, want) {
			t.Errorf("DefaultPrompt missing %q", want)
		}
	}
}
