// Command carquiz-tui plays the car brand quiz in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/carquiz/internal/tui"
	"github.com/decker502/carquiz/pkg/config"
	"github.com/decker502/carquiz/pkg/logger"
	"github.com/decker502/carquiz/pkg/quiz"
)

var (
	configFlag  = flag.String("config", "", "path to a YAML config file")
	assetsFlag  = flag.String("assets", "", "logo directory with easy/, normal/ and hard/ subfolders (overrides assets.dir)")
	verboseFlag = flag.Bool("verbose", false, "write a debug log")
	logFlag     = flag.String("log", "carquiz-tui.log", "debug log path used with --verbose")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(config.LoadOptions{File: *configFlag, EnvFile: ".env"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *assetsFlag != "" {
		cfg.Assets.Dir = *assetsFlag
	}

	log, err := logger.NewFile(*verboseFlag || cfg.Verbose, *logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	catalog := quiz.LoadCatalog(os.DirFS(cfg.Assets.Dir), cfg.CatalogOptions(), log)

	p := tea.NewProgram(tui.NewModel(catalog, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
