package elevenlabs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ekisa-team/voxkit/internal/speech"
	"github.com/ekisa-team/voxkit/internal/xfs"
)

const (
	// ModelMultilingualV2 is the recommended multilingual model.
	ModelMultilingualV2 = "eleven_multilingual_v2"
	// ModelTurboV2 is the low-latency turbo model.
	ModelTurboV2 = "eleven_turbo_v2_5"
	// ModelMonolingualV1 is the English-only v1 model.
	ModelMonolingualV1 = "eleven_monolingual_v1"

	// FormatMP3Default is the default output format (44.1 kHz, 128 kbps MP3).
	FormatMP3Default = "mp3_44100_128"

	audioExtension = ".mp3"

	// copyChunkSize bounds the buffer used while draining the remote audio
	// stream into the destination file.
	copyChunkSize = 32 * 1024
)

// Config configures the ElevenLabs speech service. It is immutable after
// construction.
type Config struct {
	// VoiceName selects a voice by its display name. Ignored when VoiceID
	// is set. The match against the remote voice list is exact and
	// case-sensitive; a miss falls back to the first listed voice.
	VoiceName string

	// VoiceID selects a voice directly. When set, no voice list is fetched.
	VoiceID string

	// Model is the synthesis model id. Defaults to ModelMultilingualV2.
	Model string

	// OutputFormat is the vendor output format string. Defaults to
	// FormatMP3Default. Not part of the cache fingerprint.
	OutputFormat string

	// VoiceSettings are passed through to the endpoint. Not part of the
	// cache fingerprint.
	VoiceSettings VoiceSettings

	// CacheDir is where audio files and cache records are written.
	CacheDir string
}

// Service adapts the ElevenLabs API to the speech.Service interface. The
// voice is resolved once at construction; each Generate call builds a cache
// key, invokes the remote endpoint on a miss, and persists the audio
// alongside a caching metadata record.
type Service struct {
	client        *Client
	model         string
	voiceID       string
	voiceSettings VoiceSettings
	outputFormat  string
	cacheDir      string
}

var _ speech.Service = (*Service)(nil)

// NewService creates the service and resolves the voice selection.
//
// Resolution precedence: an explicit VoiceID wins and needs no remote
// lookup; otherwise the remote voice list is fetched and either matched by
// VoiceName or defaulted to its first entry. A failed or empty fetch leaves
// the voice unresolved rather than aborting construction; synthesis calls
// then fail until the configuration is corrected.
func NewService(ctx context.Context, client *Client, cfg Config) *Service {
	s := &Service{
		client:        client,
		model:         cfg.Model,
		voiceSettings: cfg.VoiceSettings,
		outputFormat:  cfg.OutputFormat,
		cacheDir:      cfg.CacheDir,
	}

	if s.model == "" {
		s.model = ModelMultilingualV2
	}
	if s.outputFormat == "" {
		s.outputFormat = FormatMP3Default
	}

	s.voiceID = s.resolveVoice(ctx, cfg.VoiceName, cfg.VoiceID)

	return s
}

// Provider returns the service identifier.
func (s *Service) Provider() speech.Provider {
	return speech.ProviderElevenLabs
}

// resolveVoice produces the single authoritative voice id.
func (s *Service) resolveVoice(ctx context.Context, voiceName, voiceID string) string {
	if voiceID != "" {
		return voiceID
	}

	voices, err := s.client.ListVoices(ctx)
	if err != nil {
		slog.Error("Failed to fetch voices", "error", err)
		return ""
	}

	if len(voices) == 0 {
		slog.Error("Remote voice list is empty, voice left unresolved", "error", speech.ErrNoVoices)
		return ""
	}

	if voiceName != "" {
		for _, v := range voices {
			if v.Name == voiceName {
				return v.VoiceID
			}
		}

		slog.Warn("Voice name not found, falling back to first available voice",
			"voice_name", voiceName, "fallback", voices[0].Name)
		return voices[0].VoiceID
	}

	slog.Info("No voice specified, using first available voice", "voice", voices[0].Name)
	return voices[0].VoiceID
}

// VoiceID returns the resolved voice id. Empty means resolution degraded
// and synthesis will fail until reconfigured.
func (s *Service) VoiceID() string {
	return s.voiceID
}

// Generate synthesizes speech for text.
//
// The cache fingerprint covers the normalized text, model, and voice id
// only. Voice settings and output format are excluded on purpose: changing
// them alone reuses previously cached audio.
func (s *Service) Generate(ctx context.Context, text string, opts *speech.GenerateOptions) (*speech.Result, error) {
	if opts == nil {
		opts = &speech.GenerateOptions{}
	}

	if opts.Path != "" && !filepath.IsLocal(opts.Path) {
		return nil, fmt.Errorf("audio path %q must stay within the cache directory", opts.Path)
	}

	inputText := speech.RemoveBookmarks(text)
	if strings.TrimSpace(inputText) == "" {
		return nil, speech.ErrEmptyText
	}

	fp := speech.Fingerprint{
		InputText: inputText,
		Service:   string(speech.ProviderElevenLabs),
		Config: speech.FingerprintConfig{
			Model:   s.model,
			VoiceID: s.voiceID,
		},
	}

	cacheDir := s.cacheDir
	if opts.CacheDir != "" {
		cacheDir = opts.CacheDir
	}

	if cached, ok := speech.CachedResult(fp, cacheDir); ok {
		return cached, nil
	}

	audioPath := opts.Path
	if audioPath == "" {
		audioPath = speech.AudioBasename(fp) + audioExtension
	}

	if s.voiceID == "" {
		slog.Error("Cannot synthesize without a resolved voice", "error", speech.ErrNoVoices)
		return nil, fmt.Errorf("no voice resolved: %w", speech.ErrSynthesisFailed)
	}

	if err := s.synthesizeToFile(ctx, inputText, filepath.Join(cacheDir, audioPath)); err != nil {
		slog.Error("Failed to generate speech", "provider", s.Provider(), "error", err)
		return nil, fmt.Errorf("%v: %w", err, speech.ErrSynthesisFailed)
	}

	result := &speech.Result{
		InputText:     text,
		InputData:     fp,
		OriginalAudio: audioPath,
	}

	if err := speech.StoreResult(result, cacheDir); err != nil {
		slog.Warn("Failed to store cache record", "error", err)
	}

	return result, nil
}

// synthesizeToFile calls the remote endpoint and drains the chunked audio
// stream into the destination file, overwriting it in full.
func (s *Service) synthesizeToFile(ctx context.Context, inputText, dst string) error {
	stream, err := s.client.Convert(ctx, s.voiceID, ConvertParams{
		Text:          inputText,
		ModelID:       s.model,
		OutputFormat:  s.outputFormat,
		VoiceSettings: s.voiceSettings,
	})
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := xfs.EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create audio file: %w", err)
	}

	buf := make([]byte, copyChunkSize)
	if _, err := io.CopyBuffer(f, stream, buf); err != nil {
		f.Close()
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close audio file: %w", err)
	}

	return nil
}

// Close cleans up resources. The service holds none beyond the shared HTTP
// client.
func (s *Service) Close() error {
	return nil
}
