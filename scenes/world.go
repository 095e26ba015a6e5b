package scenes

import (
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/input"
	"github.com/automoto/tidewalker/levelwatch"
	"github.com/automoto/tidewalker/persistence"
	"github.com/automoto/tidewalker/render"
	"github.com/automoto/tidewalker/systems"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/automoto/tidewalker/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

const (
	hitShakeIntensity = 3.0
	hitShakeFrames    = 12
)

// Options configures the world scene.
type Options struct {
	Levels    fs.FS
	LevelsDir string
	LevelName string // overrides the last level played

	// WatchDirs are directories on disk to watch for level and tuning
	// edits. TuningPath is re-applied when a tuning file changes.
	WatchDirs  []string
	TuningPath string

	Store  *persistence.Store
	Logger *zap.Logger
}

// WorldScene runs one player through a level, with a level menu overlay
// and hot reload of levels and tuning.
type WorldScene struct {
	opts    Options
	logger  *zap.Logger
	levels  *levelSet
	ecs     *ecs.ECS
	watcher *levelwatch.Watcher
	menu    *ui.LevelMenu

	settings *components.SettingsData
	menuOpen bool
	status   string
	once     sync.Once
}

// NewWorldScene loads the level catalogue. The world itself is built on
// the first Update.
func NewWorldScene(opts Options) (*WorldScene, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	levels, err := loadLevelSet(opts.Levels, opts.LevelsDir)
	if err != nil {
		return nil, err
	}
	return &WorldScene{
		opts:   opts,
		logger: opts.Logger.Named("scene"),
		levels: levels,
	}, nil
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.pollWatcher()
	ws.ecs.Update()
	if ws.menuOpen {
		ws.menu.Refresh(ws.settings.ShowDebug, ws.status)
		ws.menu.Update()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
	if ws.menuOpen {
		ws.menu.Draw(screen)
	}
}

// Close stops watching the file system.
func (ws *WorldScene) Close() error {
	if ws.watcher == nil {
		return nil
	}
	return ws.watcher.Close()
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ws.ecs.AddSystem(input.Update)
	ws.ecs.AddSystem(ws.updateSceneActions)

	// Gameplay, frozen while the menu is open
	ws.ecs.AddSystem(ws.unlessMenuOpen(func(e *ecs.ECS) {
		systems.Step(e.World, cfg.World.FixedStep)
	}))
	ws.ecs.AddSystem(ws.unlessMenuOpen(ws.handleEvents))
	ws.ecs.AddSystem(ws.unlessMenuOpen(func(e *ecs.ECS) {
		systems.UpdateCamera(e.World)
	}))

	ws.ecs.AddRenderer(layerWorld, render.DrawLevel)
	ws.ecs.AddRenderer(layerWorld, render.DrawPlayers)
	ws.ecs.AddRenderer(layerHUD, render.DrawHUD)
	ws.ecs.AddRenderer(layerHUD, render.DrawDebug)

	saved, _, err := ws.opts.Store.LoadSettings()
	if err != nil {
		ws.logger.Warn("saved settings ignored", zap.Error(err))
	}
	var settings components.SettingsData
	saved.Apply(&settings)
	ws.settings = components.Settings.Get(factory.CreateSettings(ws.ecs.World, settings))

	level := ws.levels.pick(ws.opts.LevelName, settings.LastLevel)
	p := systems.Bootstrap(ws.ecs.World, level)
	ws.settings.LastLevel = level.Name

	// Snap camera to the player's start to prevent panning from (0,0)
	x, y := p.Position()
	factory.CreateCamera(ws.ecs.World, x, y)

	menu, err := ui.NewLevelMenu(ws.levels.names, ws.selectLevel, ws.toggleDebug, ws.closeMenu)
	if err != nil {
		panic("failed to build level menu: " + err.Error())
	}
	ws.menu = menu

	if len(ws.opts.WatchDirs) > 0 {
		watcher, err := levelwatch.NewWatcher(ws.opts.WatchDirs...)
		if err != nil {
			ws.logger.Warn("hot reload disabled", zap.Strings("dirs", ws.opts.WatchDirs), zap.Error(err))
		} else {
			ws.watcher = watcher
		}
	}
}

func (ws *WorldScene) unlessMenuOpen(sys ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if ws.menuOpen {
			return
		}
		sys(e)
	}
}

// updateSceneActions handles the inputs that act on the scene rather than
// on the body.
func (ws *WorldScene) updateSceneActions(e *ecs.ECS) {
	p, ok := systems.FirstPlayer(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(p.Entry())
	if in.Action(cfg.ActionToggleDebug).JustPressed {
		ws.toggleDebug()
	}
	if in.Action(cfg.ActionLevelMenu).JustPressed {
		if ws.menuOpen {
			ws.closeMenu()
		} else {
			ws.menuOpen = true
		}
	}
}

func (ws *WorldScene) handleEvents(e *ecs.ECS) {
	p, ok := systems.FirstPlayer(e.World)
	if !ok {
		return
	}
	for _, ev := range p.DrainEvents() {
		if ev.Kind == components.EventHit {
			systems.TriggerScreenShake(e.World, hitShakeIntensity, hitShakeFrames)
		}
		ws.logger.Debug("event",
			zap.Stringer("kind", ev.Kind),
			zap.Float64("x", ev.X),
			zap.Float64("y", ev.Y))
	}
}

func (ws *WorldScene) selectLevel(name string) {
	level, err := ws.levels.get(name)
	if err == nil {
		err = systems.ReloadLevel(ws.ecs.World, level)
	}
	if err != nil {
		ws.status = err.Error()
		ws.logger.Error("level switch failed", zap.String("level", name), zap.Error(err))
		return
	}
	ws.status = ""
	ws.settings.LastLevel = name
	ws.saveSettings()
	ws.closeMenu()
}

func (ws *WorldScene) toggleDebug() {
	ws.settings.ShowDebug = !ws.settings.ShowDebug
	ws.saveSettings()
}

func (ws *WorldScene) closeMenu() {
	ws.menuOpen = false
}

func (ws *WorldScene) saveSettings() {
	if err := ws.opts.Store.SaveSettings(persistence.FromComponent(ws.settings)); err != nil {
		ws.logger.Warn("settings not saved", zap.Error(err))
	}
}

// pollWatcher applies every pending file change. A file that fails to
// load is logged and the running level keeps going.
func (ws *WorldScene) pollWatcher() {
	if ws.watcher == nil {
		return
	}
	for {
		changed, ok := ws.watcher.Poll()
		if !ok {
			break
		}
		switch {
		case levelwatch.IsTuningFile(changed):
			ws.reloadTuning()
		case levelwatch.IsLevelFile(changed):
			ws.reloadLevel(levelName(changed, ws.settings.LastLevel))
		}
	}
	select {
	case err, ok := <-ws.watcher.Errors:
		if ok {
			ws.logger.Warn("watch error", zap.Error(err))
		}
	default:
	}
}

func (ws *WorldScene) reloadTuning() {
	if ws.opts.TuningPath == "" {
		return
	}
	if err := cfg.LoadTuning(ws.opts.TuningPath); err != nil {
		ws.logger.Error("tuning reload failed", zap.Error(err))
		return
	}
	ws.logger.Info("tuning reloaded", zap.String("path", ws.opts.TuningPath))
}

func (ws *WorldScene) reloadLevel(name string) {
	level, err := ws.levels.reload(name)
	if err != nil {
		ws.status = err.Error()
		ws.logger.Error("level reload failed", zap.String("level", name), zap.Error(err))
		return
	}
	ws.status = ""
	if name != ws.settings.LastLevel {
		return
	}
	if err := systems.ReloadLevel(ws.ecs.World, level); err != nil {
		ws.logger.Error("level reload failed", zap.String("level", name), zap.Error(err))
	}
}
