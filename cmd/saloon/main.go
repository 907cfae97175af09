package main

import (
	"flag"

	"github.com/gdamore/tcell/v2"
	"github.com/ocamlmycaml/saloon-rogue/internal/bootstrap"
	"github.com/ocamlmycaml/saloon-rogue/internal/config"
	"github.com/ocamlmycaml/saloon-rogue/internal/engine"
	"github.com/ocamlmycaml/saloon-rogue/internal/input"
	"github.com/ocamlmycaml/saloon-rogue/internal/version"
	"github.com/ocamlmycaml/saloon-rogue/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Флаги
	var configPath, logFile string
	var seed int64
	flag.StringVar(&configPath, "config", "", "Path to YAML config (empty for built-in defaults)")
	flag.StringVar(&logFile, "log-file", "saloon.log", "Log file (stdout belongs to the screen)")
	flag.Int64Var(&seed, "seed", 0, "Dungeon seed for generated maps (0 keeps the config value)")
	flag.Parse()

	// 2. Конфигурация
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Init()
			logger.Log.WithError(err).Fatal("Failed to load config")
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Map.Generate.Seed = seed
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	if err := logger.Configure(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}); err != nil {
		logger.Log.WithError(err).Warn("Log file unavailable, writing to stdout")
	}
	logger.Log.Info("Starting saloon-rogue...")
	logger.Log.Info(version.Current().String())

	// 3. Мир и контроллер ходов
	w, err := bootstrap.Build(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to build world")
	}
	game := engine.New(w, nil)

	// 4. Терминал
	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to init screen")
	}

	runErr := run(screen, game)
	screen.Fini()

	if runErr != nil {
		logger.Log.WithError(runErr).Fatal("Game stopped on invariant violation")
	}
	logger.Log.WithFields(logrus.Fields{"ticks": game.Ticks()}).Info("Done.")
	logger.Close()
}

// run - кадровый цикл: тикаем без ввода, пока контроллеру не нужен игрок,
// затем рисуем и ждем клавишу.
func run(screen tcell.Screen, game *engine.Game) error {
	for {
		for !game.NeedsInput() {
			if err := game.Tick(input.None); err != nil {
				return err
			}
		}
		draw(screen, game)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			in := input.FromTcell(ev)
			if in.Key == input.KeyQuit || (in.Key == input.KeyRune && in.Rune == 'Q') {
				return nil
			}
			if in.IsNone() {
				continue
			}
			if err := game.Tick(in); err != nil {
				return err
			}
		case nil:
			// Экран закрыт
			return nil
		}
	}
}
