package transcribe

import (
	"context"
	"fmt"
	"io"

	"github.com/aicopilotvisual/aicopilot-visual/pkg/config"
	"github.com/aicopilotvisual/aicopilot-visual/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Service proxies audio bytes to the OpenAI transcription endpoint and
// relays the recognized text. It performs no normalization beyond that.
type Service struct {
	client *resty.Client
	model  string
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewService creates a transcription service from the OpenAI config.
func NewService(cfg *config.OpenAIConfig) *Service {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.APIKey.Value()).
		SetTimeout(cfg.RequestTimeout)
	return &Service{client: client, model: cfg.TranscriptionModel}
}

// Transcribe forwards one audio file to the provider and returns the
// transcription text.
func (s *Service) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	log := logger.FromContext(ctx)
	result := &transcriptionResponse{}
	apiErr := &apiError{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, audio).
		SetMultipartFormData(map[string]string{"model": s.model}).
		SetResult(result).
		SetError(apiErr).
		Post("/audio/transcriptions")
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	if resp.IsError() {
		log.Error("Transcription provider returned an error",
			"status", resp.StatusCode(),
			"message", apiErr.Error.Message,
		)
		return "", fmt.Errorf("transcription provider error: status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	}
	return result.Text, nil
}
