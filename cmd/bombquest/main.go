package main

import (
	"bombquest/internal/engine"
	"bombquest/internal/level"
	"bombquest/internal/network"
	"bombquest/internal/server"
	"bombquest/internal/ui/terminal"
	"bombquest/internal/version"
	"bombquest/levels"
	"bombquest/pkg/logger"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func init() {
	logger.Init()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bombquest:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Парсинг конфигурации
	var (
		seed       int64
		configPath string
		levelsDir  string
		spectator  string
	)
	// Читаем флаг -seed. По умолчанию 0 (значит взять из конфига или времени).
	flag.Int64Var(&seed, "seed", 0, "Monster RNG seed (0 for random)")
	flag.StringVar(&configPath, "config", "", "Path to YAML config file")
	flag.StringVar(&levelsDir, "levels", "", "Directory with levelN.yaml files (default: built-in levels)")
	flag.StringVar(&spectator, "spectator", "", "Address for the read-only spectator feed, e.g. :8080")
	flag.Parse()

	// Терминал занят игрой, логи уходят в файл
	closeLog, err := logger.UseFile(logger.LogFilePath())
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Log.Info("Starting BombQuest...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if configPath != "" {
		if cfg, err = engine.LoadConfigFile(configPath); err != nil {
			return err
		}
	}
	cfg.ApplyEnv()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	}
	if levelsDir != "" {
		cfg.LevelsDir = levelsDir
	}
	if spectator != "" {
		cfg.SpectatorAddr = spectator
	}

	bindings, err := cfg.KeyBindings()
	if err != nil {
		return err
	}

	var levelFS fs.FS = levels.FS
	if cfg.LevelsDir != "" {
		levelFS = os.DirFS(cfg.LevelsDir)
	}

	// 2. Терминал
	raw, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := raw.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen := terminal.NewScreen(raw)
	defer screen.Close()

	input := terminal.NewInput(bindings)
	go input.Listen(raw)

	// 3. Движок
	game, err := engine.New(cfg, engine.Deps{
		Loader:  level.NewLoader(levelFS),
		Changer: level.NewPositioner(cfg.MonsterPeriod, cfg.MinMonsterPeriod, cfg.MonsterPeriodStep),
		Input:   input,
		Sprites: screen,
		Status:  screen,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Зрители (опционально)
	if cfg.SpectatorAddr != "" {
		hub := network.NewBroadcaster()
		game.AddObserver(hub)

		srv := server.New(hub, cfg.SpectatorAddr)
		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Log.WithError(err).Error("Spectator server stopped")
			}
		}()
	}

	err = game.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Log.Info("Interrupted")
		err = nil
	}

	logger.Log.WithField("state", game.State().String()).Info("Done.")
	return err
}
