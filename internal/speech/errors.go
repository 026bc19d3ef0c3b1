package speech

import "errors"

// Error definitions for the speech package.
var (
	// ErrSynthesisFailed is the opaque failure signal surfaced to callers
	// when a remote call or the audio file write fails. The underlying
	// cause is logged, not returned.
	ErrSynthesisFailed = errors.New("speech synthesis failed")

	// ErrProviderNotFound is returned when a provider is not registered.
	ErrProviderNotFound = errors.New("speech provider not found in registry")

	// ErrNoVoices is returned when the remote service reports no voices.
	ErrNoVoices = errors.New("remote service returned no voices")

	// ErrEmptyText is returned when attempting to synthesize empty text.
	ErrEmptyText = errors.New("text cannot be empty")
)
