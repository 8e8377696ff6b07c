package audio

import (
	"os"
	"strconv"
)

// Config controls the audio engine. Zero volume or Enabled=false make
// the engine inert; every Play call then returns without touching the
// speaker.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultConfig returns the audio defaults used when no environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.8,
		SampleRate:   48000,
	}
}

// LoadConfig builds a Config from the environment. Unset or malformed
// variables fall back to the defaults.
//
//	MOLEMAN_AUDIO_ENABLED  - bool, disables the engine entirely
//	MOLEMAN_MASTER_VOLUME  - 0-100, scaled to 0.0-1.0
//	MOLEMAN_SAMPLE_RATE    - samples per second
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MOLEMAN_AUDIO_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}

	if v := os.Getenv("MOLEMAN_MASTER_VOLUME"); v != "" {
		if vol, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = clampVolume(float64(vol) / 100)
		}
	}

	if v := os.Getenv("MOLEMAN_SAMPLE_RATE"); v != "" {
		if rate, err := strconv.Atoi(v); err == nil && rate > 0 {
			cfg.SampleRate = rate
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
