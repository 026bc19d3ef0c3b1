package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io/v1"
	defaultTimeout = 60 * time.Second
)

// Voice is a remotely defined synthesis persona.
type Voice struct {
	VoiceID  string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Client is a thin HTTP client for the ElevenLabs web API. It covers the
// two endpoints this module needs: voice listing and text-to-speech
// conversion. Protocol concerns (auth header, error envelope decoding)
// live here; everything above works with plain values and readers.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates an ElevenLabs API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// voicesResponse is the envelope of the voice listing endpoint.
type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

// ListVoices fetches all voices available to the account, in the order the
// remote service returns them.
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/voices", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("voice list request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var body voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode voice list: %w", err)
	}

	return body.Voices, nil
}

// convertRequest is the request body of the text-to-speech endpoint.
type convertRequest struct {
	Text          string                `json:"text"`
	ModelID       string                `json:"model_id,omitempty"`
	VoiceSettings *voiceSettingsPayload `json:"voice_settings,omitempty"`
}

// Convert sends text to the text-to-speech endpoint and returns the chunked
// binary audio stream. The caller owns the returned reader and must close it.
func (c *Client) Convert(ctx context.Context, voiceID string, params ConvertParams) (io.ReadCloser, error) {
	reqBody := convertRequest{
		Text:          params.Text,
		ModelID:       params.ModelID,
		VoiceSettings: params.VoiceSettings.payload(),
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/text-to-speech/%s/stream", c.baseURL, url.PathEscape(voiceID))
	if params.OutputFormat != "" {
		endpoint += "?output_format=" + url.QueryEscape(params.OutputFormat)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, decodeAPIError(resp)
	}

	return resp.Body, nil
}

// ConvertParams carries the parameters of one conversion call.
type ConvertParams struct {
	Text          string
	ModelID       string
	OutputFormat  string
	VoiceSettings VoiceSettings
}
