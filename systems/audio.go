package systems

import (
	"log"
	"sync"

	"github.com/coedo/spankthefox/assets"
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once for the process
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalHitClips     [][]byte
	globalScreamClips  [][]byte
	globalHitPlayer    *audio.Player
	globalScreamPlayer *audio.Player
	globalMusicPlayer  *audio.Player
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and decodes every clip set
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(assets.FS(), cfg.Audio.SampleRate)

		globalHitClips = globalAudioLoader.LoadClipSet(cfg.Tuning.Audio.HitSoundCount, cfg.Sound.HitPath, assets.SynthHit)
		globalScreamClips = globalAudioLoader.LoadClipSet(cfg.Tuning.ScreamCount(), cfg.Sound.ScreamPath, assets.SynthScream)

		player, err := globalAudioLoader.LoadMusic(globalAudioContext, cfg.Sound.MusicPath)
		if err != nil {
			log.Printf("Warning: failed to create music player: %v", err)
			return
		}
		player.SetVolume(globalMusicVolume)
		globalMusicPlayer = player
	})
}

// PreloadAudio decodes all clips at startup so the first hit does not stall.
func PreloadAudio() {
	initGlobalAudio()
}

// UpdateAudio executes the playback requests queued by gameplay systems this frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, cmd := range audioData.Pending {
		runAudioCommand(cmd)
	}
	audioData.Pending = audioData.Pending[:0]
}

func runAudioCommand(cmd components.AudioCommand) {
	switch cmd.Op {
	case components.AudioPlayHit:
		stopPlayer(&globalHitPlayer)
		globalHitPlayer = playClip(globalHitClips, cmd.Index, 1)
	case components.AudioStopHit:
		stopPlayer(&globalHitPlayer)
	case components.AudioPlayScream:
		stopPlayer(&globalScreamPlayer)
		globalScreamPlayer = playClip(globalScreamClips, cmd.Index, cmd.Value)
	case components.AudioStopScream:
		stopPlayer(&globalScreamPlayer)
	case components.AudioSetScreamVolume:
		if globalScreamPlayer != nil {
			globalScreamPlayer.SetVolume(globalSFXVolume * cmd.Value)
		}
	case components.AudioPlayMusic:
		if globalMusicPlayer != nil {
			if err := globalMusicPlayer.Rewind(); err != nil {
				log.Printf("Warning: failed to rewind music: %v", err)
			}
			globalMusicPlayer.Play()
		}
	case components.AudioStopMusic:
		if globalMusicPlayer != nil {
			globalMusicPlayer.Pause()
		}
	}
}

// playClip starts clip index of set at the given pitch ratio
func playClip(set [][]byte, index int, pitch float64) *audio.Player {
	if globalSFXVolume <= 0 || index < 0 || index >= len(set) {
		return nil
	}
	pcm := assets.PitchShift(set[index], pitch, cfg.Audio.ResampleQuality)
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalSFXVolume)
	player.Play()
	return player
}

func stopPlayer(p **audio.Player) {
	if *p == nil {
		return
	}
	_ = (*p).Close()
	*p = nil
}
