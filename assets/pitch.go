package assets

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// bytesPerFrame of 16-bit little-endian stereo PCM, the format ebiten players take
const bytesPerFrame = 4

// pcmStreamer streams decoded 16-bit stereo PCM as beep samples
type pcmStreamer struct {
	data []byte
	pos  int
}

// NewPCMStreamer wraps 16-bit little-endian stereo PCM as a beep.Streamer.
func NewPCMStreamer(pcm []byte) beep.Streamer {
	return &pcmStreamer{data: pcm}
}

func (s *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && s.pos+bytesPerFrame <= len(s.data) {
		l := int16(binary.LittleEndian.Uint16(s.data[s.pos:]))
		r := int16(binary.LittleEndian.Uint16(s.data[s.pos+2:]))
		samples[n][0] = float64(l) / 32768
		samples[n][1] = float64(r) / 32768
		s.pos += bytesPerFrame
		n++
	}
	return n, n > 0
}

func (s *pcmStreamer) Err() error { return nil }

// RenderPCM drains a finite streamer into 16-bit little-endian stereo PCM.
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * 32767)
}

// PitchShift resamples the clip so it plays back at pitch times its original
// frequency (and 1/pitch its length). quality is the beep resampler quality.
func PitchShift(pcm []byte, pitch float64, quality int) []byte {
	if pitch == 1 || pitch <= 0 {
		return pcm
	}
	quality = max(1, min(64, quality))
	return RenderPCM(beep.ResampleRatio(quality, pitch, NewPCMStreamer(pcm)))
}
