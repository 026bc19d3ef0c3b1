package config

// Config holds the main configuration for the application.
type Config struct {
	Version string        `json:"version"         yaml:"version"`
	Cache   CacheConfig   `json:"cache,omitempty" yaml:"cache,omitempty"`
	Service ServiceConfig `json:"service"         yaml:"service"`
}

// CacheConfig holds configuration for the audio cache.
type CacheConfig struct {
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// ServiceConfig holds configuration for the speech service.
type ServiceConfig struct {
	Provider      string         `json:"provider"                 yaml:"provider"`
	VoiceName     string         `json:"voice_name,omitempty"     yaml:"voice_name,omitempty"`
	VoiceID       string         `json:"voice_id,omitempty"       yaml:"voice_id,omitempty"`
	Model         string         `json:"model,omitempty"          yaml:"model,omitempty"`
	OutputFormat  string         `json:"output_format,omitempty"  yaml:"output_format,omitempty"`
	VoiceSettings map[string]any `json:"voice_settings,omitempty" yaml:"voice_settings,omitempty"`
}
