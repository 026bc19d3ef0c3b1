package elevenlabs

import "github.com/ekisa-team/voxkit/internal/mapsafe"

// Default voice settings per the vendor's documentation.
const (
	defaultStability       = 0.5
	defaultSimilarityBoost = 0.75
)

// VoiceSettings is the untyped settings mapping taken from configuration
// (stability, similarity_boost, style, use_speaker_boost). A nil map means
// the endpoint's own defaults apply and no settings are sent at all.
type VoiceSettings map[string]any

// voiceSettingsPayload is the wire form of voice settings.
type voiceSettingsPayload struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style,omitempty"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

// payload converts the settings mapping to its wire form.
func (vs VoiceSettings) payload() *voiceSettingsPayload {
	if vs == nil {
		return nil
	}

	return &voiceSettingsPayload{
		Stability:       mapsafe.Get(vs, "stability", defaultStability),
		SimilarityBoost: mapsafe.Get(vs, "similarity_boost", defaultSimilarityBoost),
		Style:           mapsafe.Get(vs, "style", 0.0),
		UseSpeakerBoost: mapsafe.Get(vs, "use_speaker_boost", false),
	}
}
