package envvar

const (
	// VoxkitEnv is the environment variable used to determine the environment
	VoxkitEnv = "VOXKIT_ENV"

	// VoxkitCacheDir is the environment variable used to override the audio cache directory
	VoxkitCacheDir = "VOXKIT_CACHE_DIR"

	// ElevenLabsAPIKey is the environment variable holding the ElevenLabs subscription key
	ElevenLabsAPIKey = "ELEVENLABS_API_KEY"
)
