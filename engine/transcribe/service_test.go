package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aicopilotvisual/aicopilot-visual/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(handler http.HandlerFunc) (*Service, *httptest.Server) {
	ts := httptest.NewServer(handler)
	svc := NewService(&config.OpenAIConfig{
		APIKey:             "sk-test",
		BaseURL:            ts.URL,
		TranscriptionModel: "whisper-1",
	})
	return svc, ts
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()
	t.Run("Should forward the audio as multipart and return the text", func(t *testing.T) {
		var gotPath, gotAuth, gotModel, gotFilename string
		svc, ts := newTestService(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			gotModel = r.FormValue("model")
			if _, header, err := r.FormFile("file"); err == nil {
				gotFilename = header.Filename
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"text":"automate my invoices"}`))
		})
		defer ts.Close()
		text, err := svc.Transcribe(ctx, "recording.webm", strings.NewReader("fake-audio-bytes"))
		require.NoError(t, err)
		assert.Equal(t, "automate my invoices", text)
		assert.Equal(t, "/audio/transcriptions", gotPath)
		assert.Equal(t, "Bearer sk-test", gotAuth)
		assert.Equal(t, "whisper-1", gotModel)
		assert.Equal(t, "recording.webm", gotFilename)
	})
	t.Run("Should surface provider errors with their status", func(t *testing.T) {
		svc, ts := newTestService(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
		})
		defer ts.Close()
		_, err := svc.Transcribe(ctx, "a.webm", strings.NewReader("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
		assert.Contains(t, err.Error(), "invalid api key")
	})
	t.Run("Should wrap transport failures", func(t *testing.T) {
		svc, ts := newTestService(func(w http.ResponseWriter, _ *http.Request) {})
		ts.Close()
		_, err := svc.Transcribe(ctx, "a.webm", strings.NewReader("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transcription request failed")
	})
}
