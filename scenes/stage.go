package scenes

import (
	"log"
	"sync"

	"github.com/coedo/spankthefox/assets"
	"github.com/coedo/spankthefox/components"
	cfg "github.com/coedo/spankthefox/config"
	"github.com/coedo/spankthefox/fonts"
	"github.com/coedo/spankthefox/systems"
	"github.com/coedo/spankthefox/systems/factory"
	"github.com/coedo/spankthefox/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Placeholder tints for textures that fail to load
var (
	foxPlaceholder  = cfg.Red
	handPlaceholder = cfg.White
)

// StageScene is the one and only scene: the fox, the hand and the menu overlay
// share a single world that owns all game state.
type StageScene struct {
	ecs      *ecs.ECS
	menu     *ui.MenuUI
	handMesh *assets.Mesh
	once     sync.Once
}

func NewStageScene(handMesh *assets.Mesh) *StageScene {
	return &StageScene{handMesh: handMesh}
}

// Update steps the world one frame. It returns ebiten.Termination when an exit
// key was pressed.
func (s *StageScene) Update() error {
	s.once.Do(s.configure)
	s.ecs.Update()

	entry, ok := components.Input.First(s.ecs.World)
	if ok && components.Input.Get(entry).ExitRequested {
		return ebiten.Termination
	}
	return nil
}

func (s *StageScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		screen.Fill(cfg.Render.BackgroundColor)
		return
	}
	s.ecs.Draw(screen)
}

func (s *StageScene) configure() {
	if err := fonts.LoadDefaults(cfg.Result.FontSize); err != nil {
		log.Printf("Warning: %v", err)
	}
	applyStageLayout()
	systems.PreloadAudio()

	menu, err := ui.NewMenuUI()
	if err != nil {
		log.Printf("Warning: failed to build menu: %v", err)
	}
	s.menu = menu

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateHand)
	ecs.AddSystem(systems.UpdateHitReaction)
	// after the gameplay systems so the press that closes the menu is not a grab
	ecs.AddSystem(systems.UpdateMenu)
	ecs.AddSystem(systems.UpdateIdleAnimation)
	ecs.AddSystem(systems.UpdateResult)
	ecs.AddSystem(s.updateMenuUI)
	ecs.AddSystem(systems.ApplyCursor)
	// Audio runs last and drains everything queued this frame
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawGrid)
	ecs.AddRenderer(cfg.Default, systems.DrawFox)
	ecs.AddRenderer(cfg.Default, systems.DrawHand)
	ecs.AddRenderer(cfg.Default, systems.DrawResult)
	ecs.AddRenderer(cfg.Overlay, s.drawMenuUI)

	s.ecs = ecs

	session := factory.CreateSession(ecs, nil)
	fox := factory.CreateFox(ecs, assets.LoadTexture(cfg.Assets.FoxTexture, foxPlaceholder))
	factory.CreateHand(ecs, s.handMesh, assets.LoadTexture(cfg.Assets.HandTexture, handPlaceholder))
	factory.CreateCamera(ecs)
	factory.CreateBoundsSpace(ecs, fox)

	components.Audio.Get(session).Queue(components.AudioPlayMusic, 0, 0)
}

func (s *StageScene) inMenu() bool {
	entry, ok := components.Session.First(s.ecs.World)
	return ok && components.Session.Get(entry).InMenu
}

func (s *StageScene) updateMenuUI(_ *ecs.ECS) {
	if s.menu != nil && s.inMenu() {
		s.menu.Update()
	}
}

func (s *StageScene) drawMenuUI(_ *ecs.ECS, screen *ebiten.Image) {
	if s.menu != nil && s.inMenu() {
		s.menu.Draw(screen)
	}
}

// applyStageLayout moves the actors and the camera to the embedded stage map
// placements. The config defaults stay when the map cannot be read.
func applyStageLayout() {
	layout, err := assets.NewStageLoader(assets.FS()).LoadStage(cfg.Assets.StageLayout)
	if err != nil {
		log.Printf("Warning: %v, using default stage layout", err)
		return
	}
	cfg.Stage.FoxStart = layout.FoxStart
	cfg.Stage.HandRest = layout.HandRest
	if layout.HasCamera {
		cfg.Camera.Position = layout.CameraPosition
	}
}
