package config

import "fmt"

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	ResampleQuality int // beep resampler quality for pitch shifting (1-64)
}

// SoundConfig maps clip sets to file paths inside the asset filesystem
type SoundConfig struct {
	HitPathFormat    string
	ScreamPathFormat string
	MusicPath        string
}

var Audio AudioConfig
var Sound SoundConfig

// HitPath returns the path of the i-th hit clip
func (s SoundConfig) HitPath(i int) string {
	return fmt.Sprintf(s.HitPathFormat, i)
}

// ScreamPath returns the path of the i-th scream clip
func (s SoundConfig) ScreamPath(i int) string {
	return fmt.Sprintf(s.ScreamPathFormat, i)
}

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
		ResampleQuality: 4,
	}

	Sound = SoundConfig{
		HitPathFormat:    "data/audio/hit%d.mp3",
		ScreamPathFormat: "data/audio/scream%d.wav",
		MusicPath:        "data/audio/music.mp3",
	}
}
