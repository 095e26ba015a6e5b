package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/tidewalker/assets"
	"github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/fonts"
	"github.com/automoto/tidewalker/persistence"
	"github.com/automoto/tidewalker/scenes"
	"github.com/automoto/tidewalker/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "tidewalker.toml", "Run configuration (TOML)")
	levelName := flag.String("level", "", "Level to start in (overrides the config and the last level played)")
	flag.Parse()

	run, err := config.LoadRun(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := config.NewLogger(run.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger)

	if run.Tuning != "" {
		if err := config.LoadTuning(run.Tuning); err != nil {
			logger.Fatal("tuning", zap.Error(err))
		}
	}
	if run.Window.Width > 0 && run.Window.Height > 0 {
		config.C.Width, config.C.Height = run.Window.Width, run.Window.Height
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("fonts", zap.Error(err))
	}

	// Settings still work in memory without a data directory.
	store, err := persistence.Open(run.Persistence.AppName, logger)
	if err != nil {
		logger.Warn("persistence unavailable", zap.Error(err))
		store = nil
	}

	opts := scenes.Options{
		Levels:    assets.Levels(),
		LevelsDir: assets.LevelsDir,
		LevelName: run.Level.Name,
		Store:     store,
		Logger:    logger,
	}
	if *levelName != "" {
		opts.LevelName = *levelName
	}
	if run.Level.Dir != "" {
		dir := filepath.Clean(run.Level.Dir)
		opts.Levels = os.DirFS(filepath.Dir(dir))
		opts.LevelsDir = filepath.Base(dir)
		if run.Level.Watch {
			opts.WatchDirs = append(opts.WatchDirs, dir)
		}
	}
	if run.Tuning != "" && run.Level.Watch {
		opts.TuningPath = run.Tuning
		opts.WatchDirs = appendUnique(opts.WatchDirs, filepath.Dir(run.Tuning))
	}

	scene, err := scenes.NewWorldScene(opts)
	if err != nil {
		logger.Fatal("levels", zap.Error(err))
	}
	defer func() { _ = scene.Close() }()

	scale := max(run.Window.Scale, 1)
	ebiten.SetWindowSize(config.C.Width*scale, config.C.Height*scale)
	ebiten.SetWindowTitle(run.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(int(1 / config.World.FixedStep.Seconds()))

	logger.Info("starting",
		zap.String("levels", levelSource(run.Level.Dir)),
		zap.Strings("watch", opts.WatchDirs))
	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}

func levelSource(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}

func appendUnique(dirs []string, dir string) []string {
	for _, d := range dirs {
		if d == dir {
			return dirs
		}
	}
	return append(dirs, dir)
}
