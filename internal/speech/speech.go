package speech

import (
	"context"
)

// Provider is a string identifier for a speech service provider.
type Provider string

const (
	ProviderElevenLabs Provider = "elevenlabs"
)

// Service defines the core interface for all speech services.
type Service interface {
	// Provider returns the service identifier.
	Provider() Provider

	// Generate synthesizes speech for the given text, writing the audio
	// into the cache directory and returning the result record.
	Generate(ctx context.Context, text string, opts *GenerateOptions) (*Result, error)

	// Close cleans up resources.
	Close() error
}

// GenerateOptions carries per-call overrides for Generate.
type GenerateOptions struct {
	// CacheDir overrides the service's cache directory.
	CacheDir string

	// Path overrides the destination audio file name. It is always
	// interpreted relative to the cache directory; absolute paths and
	// paths escaping the cache directory are rejected. When empty a
	// deterministic name is derived from the fingerprint.
	Path string
}

// Fingerprint is the deterministic structured key derived from normalized
// text plus synthesis configuration. It is used to look up or store cached
// audio. Voice settings and output format are deliberately not part of the
// key: changing them alone reuses previously cached audio.
type Fingerprint struct {
	InputText string            `json:"input_text"`
	Service   string            `json:"service"`
	Config    FingerprintConfig `json:"config"`
}

// FingerprintConfig is the configuration portion of a fingerprint.
type FingerprintConfig struct {
	Model   string `json:"model"`
	VoiceID string `json:"voice_id"`
}

// Result records one synthesis outcome. InputText is the original text as
// given by the caller (bookmark markup included); the fingerprint inside
// InputData holds the normalized text actually sent to the remote service.
type Result struct {
	InputText     string      `json:"input_text"`
	InputData     Fingerprint `json:"input_data"`
	OriginalAudio string      `json:"original_audio"`
}
