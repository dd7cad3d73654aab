package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"symptoscan-backend/internal/shared/telemetry"
	"symptoscan-backend/internal/tts"
)

const (
	baseURL      = "https://api.elevenlabs.io/v1/text-to-speech"
	modelID      = "eleven_monolingual_v1"
	audioMIME    = "audio/mpeg"
	// Rachel, the provider's default English voice.
	defaultVoice = "21m00Tcm4TlvDq8ikWAM"
)

// Client implements tts.Synthesizer against the ElevenLabs API.
type Client struct {
	apiKey     string
	voiceID    string
	httpClient *http.Client
}

// NewClient constructs an ElevenLabs client.
func NewClient(apiKey, voiceID string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ELEVENLABS_KEY is required")
	}
	if strings.TrimSpace(voiceID) == "" {
		voiceID = defaultVoice
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		voiceID:    voiceID,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float32 `json:"stability"`
	SimilarityBoost float32 `json:"similarity_boost"`
}

// Synthesize converts text to MP3 audio.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	payload, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	})
	if err != nil {
		return nil, "", err
	}

	url := fmt.Sprintf("%s/%s", baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", audioMIME)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, "", fmt.Errorf("elevenlabs request timeout: %w", err)
		}
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("elevenlabs http status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if len(body) == 0 {
		return nil, "", fmt.Errorf("elevenlabs empty audio response")
	}

	telemetry.Info("tts.response", map[string]any{
		"voice_id":    c.voiceID,
		"audio_bytes": len(body),
	})
	return body, audioMIME, nil
}

var _ tts.Synthesizer = (*Client)(nil)
