package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of decoded clips
type AudioLoader struct {
	fsys       fs.FS
	sampleRate int
	cache      map[string][]byte // decoded 16-bit stereo PCM
}

// NewAudioLoader creates a loader decoding to the given sample rate
func NewAudioLoader(fsys fs.FS, sampleRate int) *AudioLoader {
	return &AudioLoader{
		fsys:       fsys,
		sampleRate: sampleRate,
		cache:      make(map[string][]byte),
	}
}

// Decode reads and decodes the clip at path into PCM, caching the result.
func (l *AudioLoader) Decode(path string) ([]byte, error) {
	if pcm, ok := l.cache[path]; ok {
		return pcm, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.cache[path] = pcm
	return pcm, nil
}

// LoadClip decodes the clip at path, or synthesizes a replacement when the
// file is missing or broken.
func (l *AudioLoader) LoadClip(path string, fallback func(sampleRate int) []byte) []byte {
	pcm, err := l.Decode(path)
	if err != nil {
		log.Printf("Warning: %v, using synthesized clip", err)
		pcm = fallback(l.sampleRate)
		l.cache[path] = pcm
	}
	return pcm
}

// LoadClipSet loads count clips whose paths come from pathFor(i).
func (l *AudioLoader) LoadClipSet(count int, pathFor func(int) string, fallback func(i, sampleRate int) []byte) [][]byte {
	clips := make([][]byte, count)
	for i := range clips {
		clips[i] = l.LoadClip(pathFor(i), func(rate int) []byte {
			return fallback(i, rate)
		})
	}
	return clips
}

// LoadMusic returns a looping player over the music clip
func (l *AudioLoader) LoadMusic(ctx *audio.Context, path string) (*audio.Player, error) {
	pcm := l.LoadClip(path, SynthMusic)
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return ctx.NewPlayer(loop)
}
