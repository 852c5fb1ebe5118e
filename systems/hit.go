package systems

import (
	"fmt"

	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/fonts"
	"github.com/coedo/spankthefox/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// triggerHit starts the hit reaction: result message, clip selection, and the
// pointer velocity handed over to the fox.
func triggerHit(sessionEntry *donburi.Entry, hand *components.HandData, fox *components.FoxData) {
	session := components.Session.Get(sessionEntry)
	audio := components.Audio.Get(sessionEntry)
	result := components.Result.Get(sessionEntry)
	tuning := cfg.Tuning.Audio

	session.FoxHit = true
	showResult(result, int(hand.Speed))

	audio.HitIndex = session.Rand.Intn(tuning.HitSoundCount)
	audio.ScreamIndex = gamemath.ScreamBucket(hand.Speed, tuning.ScreamThresholds)
	pitch := 1 + (session.Rand.Float64()*2-1)*tuning.PitchVariation

	audio.Queue(components.AudioPlayHit, audio.HitIndex, 0)
	audio.Queue(components.AudioPlayScream, audio.ScreamIndex, pitch)
	audio.Queue(components.AudioStopMusic, 0, 0)

	fox.Velocity = hand.Velocity
}

func showResult(result *components.ResultData, speed int) {
	result.Text = fmt.Sprintf(cfg.Result.Format, speed)
	result.Width, result.Height = fonts.Measure(fonts.Result.Get(), result.Text, cfg.Result.LineSpacing)
	result.Scale = cfg.Result.PopStartScale
	result.Pop = gween.New(float32(cfg.Result.PopStartScale), 1, float32(cfg.Result.PopDuration), ease.OutBack)
}

func clearResult(result *components.ResultData) {
	*result = components.ResultData{}
}
