package components

import "github.com/yohamta/donburi"

// AudioOp is a playback request issued by gameplay systems
type AudioOp int

const (
	AudioPlayHit AudioOp = iota
	AudioStopHit
	AudioPlayScream // Value is the pitch ratio
	AudioStopScream
	AudioSetScreamVolume // Value is the volume (0.0 - 1.0)
	AudioPlayMusic
	AudioStopMusic
)

func (op AudioOp) String() string {
	switch op {
	case AudioPlayHit:
		return "play-hit"
	case AudioStopHit:
		return "stop-hit"
	case AudioPlayScream:
		return "play-scream"
	case AudioStopScream:
		return "stop-scream"
	case AudioSetScreamVolume:
		return "set-scream-volume"
	case AudioPlayMusic:
		return "play-music"
	case AudioStopMusic:
		return "stop-music"
	}
	return "unknown"
}

// AudioCommand targets a clip by index within its set
type AudioCommand struct {
	Op    AudioOp
	Index int
	Value float64
}

// AudioData stores the active clip selection and pending requests (singleton component)
type AudioData struct {
	HitIndex    int
	ScreamIndex int
	Pending     []AudioCommand
}

// Queue appends a request to be executed by the audio system this frame
func (a *AudioData) Queue(op AudioOp, index int, value float64) {
	a.Pending = append(a.Pending, AudioCommand{Op: op, Index: index, Value: value})
}

var Audio = donburi.NewComponentType[AudioData]()
