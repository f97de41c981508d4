package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/carquiz/pkg/app"
	"github.com/decker502/carquiz/pkg/config"
	"github.com/decker502/carquiz/pkg/embedded"
	"github.com/decker502/carquiz/pkg/game"
	"github.com/decker502/carquiz/pkg/logger"
	"github.com/decker502/carquiz/pkg/quiz"
)

var (
	configFlag  = flag.String("config", "", "path to a YAML config file merged over the defaults")
	assetsFlag  = flag.String("assets", "", "logo directory with easy/, normal/ and hard/ subfolders (overrides assets.dir)")
	verboseFlag = flag.Bool("verbose", false, "enable verbose logging")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS)

	cfg, err := config.Load(config.LoadOptions{
		Defaults: embedded.DefaultConfig(),
		File:     *configFlag,
		EnvFile:  ".env",
	})
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *assetsFlag != "" {
		cfg.Assets.Dir = *assetsFlag
	}

	zl, err := logger.New(*verboseFlag || cfg.Verbose)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zl.Sync()

	catalog := quiz.LoadCatalog(os.DirFS(cfg.Assets.Dir), cfg.CatalogOptions(), zl)
	empty := true
	for _, d := range quiz.Difficulties() {
		if catalog.Len(d) > 0 {
			empty = false
			break
		}
	}
	if empty {
		zl.Warn("no logo images found", zap.String("dir", cfg.Assets.Dir))
	}

	texts, err := game.LoadStrings(game.DefaultStringsPath)
	if err != nil {
		zl.Warn("using built-in texts", zap.Error(err))
	}

	gameApp, err := app.NewApp(app.Options{Config: cfg, Catalog: catalog, Strings: texts, Log: zl})
	if err != nil {
		zl.Fatal("failed to initialize game", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		zl.Fatal("game exited with error", zap.Error(err))
	}
}
