package audio

import (
	"math"
	"testing"
)

func TestEngine_Play_WithoutInit_NoOp(t *testing.T) {
	e := NewEngine(DefaultConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Play panicked without Init: %v", r)
		}
	}()

	if e.Play(SoundToggle) {
		t.Error("Play reported success without Init")
	}
	if e.Play(SoundError) {
		t.Error("Play reported success without Init")
	}
	e.Close()
}

func TestEngine_Init_Disabled_SkipsSpeaker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	e := NewEngine(cfg)

	// Disabled engines never touch the speaker, so Init must succeed
	// even on machines with no audio device.
	if err := e.Init(); err != nil {
		t.Fatalf("Init on disabled engine: %v", err)
	}
	if e.Play(SoundBlip) {
		t.Error("disabled engine played a sound")
	}
}

func TestEngine_SetVolume_Clamps(t *testing.T) {
	e := NewEngine(DefaultConfig())

	e.SetVolume(2.5)
	if got := e.Volume(); got != 1 {
		t.Errorf("Volume after SetVolume(2.5) = %g, want 1", got)
	}
	e.SetVolume(-3)
	if got := e.Volume(); got != 0 {
		t.Errorf("Volume after SetVolume(-3) = %g, want 0", got)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MOLEMAN_AUDIO_ENABLED", "false")
	t.Setenv("MOLEMAN_MASTER_VOLUME", "50")
	t.Setenv("MOLEMAN_SAMPLE_RATE", "44100")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Enabled override ignored")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("MasterVolume = %g, want 0.5", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
}

func TestLoadConfig_Malformed_FallsBack(t *testing.T) {
	t.Setenv("MOLEMAN_AUDIO_ENABLED", "maybe")
	t.Setenv("MOLEMAN_MASTER_VOLUME", "loud")
	t.Setenv("MOLEMAN_SAMPLE_RATE", "-1")

	def := DefaultConfig()
	cfg := LoadConfig()
	if cfg != def {
		t.Errorf("malformed env produced %+v, want defaults %+v", cfg, def)
	}
}

func TestLoadConfig_VolumeClamped(t *testing.T) {
	t.Setenv("MOLEMAN_MASTER_VOLUME", "250")
	if got := LoadConfig().MasterVolume; got != 1 {
		t.Errorf("MasterVolume = %g, want 1", got)
	}
}

func TestSweepTone_StaysWithinAmplitude(t *testing.T) {
	g := newSweepTone(48000, 440, 660, 1)
	buf := make([][2]float64, 4096)

	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
	}

	var peak float64
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s[0]))
		if s[0] != s[1] {
			t.Fatal("channels differ")
		}
	}
	if peak > 0.25+1e-9 {
		t.Errorf("peak = %g, exceeds 0.25", peak)
	}
	if peak == 0 {
		t.Error("tone is silent")
	}
}

func TestBuzzTone_ScalesWithVolume(t *testing.T) {
	loud := newBuzzTone(48000, 110, 1)
	quiet := newBuzzTone(48000, 110, 0.25)

	bufLoud := make([][2]float64, 2048)
	bufQuiet := make([][2]float64, 2048)
	loud.Stream(bufLoud)
	quiet.Stream(bufQuiet)

	var peakLoud, peakQuiet float64
	for i := range bufLoud {
		peakLoud = math.Max(peakLoud, math.Abs(bufLoud[i][0]))
		peakQuiet = math.Max(peakQuiet, math.Abs(bufQuiet[i][0]))
	}
	if peakQuiet >= peakLoud {
		t.Errorf("quiet peak %g not below loud peak %g", peakQuiet, peakLoud)
	}
	if loud.Err() != nil || quiet.Err() != nil {
		t.Error("generators reported errors")
	}
}
