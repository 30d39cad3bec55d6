package gemini

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAudio(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func newTestAnalyzer(t *testing.T, handler http.HandlerFunc) Analyzer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := New(context.Background(), Options{
		APIKey:     "test-key",
		Model:      "gemini-test",
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)
	return a
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), Options{Model: "m"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestAnalyze(t *testing.T) {
	var body string
	var path string
	a := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Overview. "},{"text":"Two examples."}]}}]}`)
	})

	text, err := a.Analyze(context.Background(), writeAudio(t, "ID3fake"), "find examples")
	require.NoError(t, err)

	assert.Equal(t, "Overview. Two examples.", text)
	assert.True(t, strings.HasSuffix(path, "models/gemini-test:generateContent"), "path = %s", path)
	assert.Contains(t, body, "find examples")
	assert.Contains(t, body, "audio/mp3")
	assert.Contains(t, body, base64.StdEncoding.EncodeToString([]byte("ID3fake")))
}

func TestAnalyze_EmptyResponse(t *testing.T) {
	a := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := a.Analyze(context.Background(), writeAudio(t, "x"), "p")
	assert.ErrorContains(t, err, "empty response")
}

func TestAnalyze_ServerError(t *testing.T) {
	calls := 0
	a := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"bad audio","status":"INVALID_ARGUMENT"}}`)
	})

	_, err := a.Analyze(context.Background(), writeAudio(t, "x"), "p")
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "failures are not retried")
}

func TestAnalyze_MissingAudio(t *testing.T) {
	a := newTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := a.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"), "p")
	assert.ErrorContains(t, err, "read audio")
}
