package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"rogue-server/internal/config"
	"rogue-server/internal/domain"
	"rogue-server/internal/engine"
	"rogue-server/internal/server"
	"rogue-server/internal/version"
	"rogue-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var configPath string
	var seed int64
	var port string
	flag.StringVar(&configPath, "config", "", "Path to TOML config file")
	// Флаг -seed. По умолчанию 0 (значит каждой сессии - случайное зерно).
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random per session)")
	flag.StringVar(&port, "port", "", "HTTP port (overrides config)")
	flag.Parse()

	logger.Log.Info("Starting rogue server...")
	logger.Log.Info(version.String())

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Log.Fatal("Config error: ", err)
		}
		cfg = loaded
		logger.Configure(cfg.Logging.Level, cfg.Logging.Format)
	}

	// Флаги приоритетнее файла
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if port != "" {
		cfg.Server.Port = port
	}
	if envPort := os.Getenv("ROGUE_PORT"); envPort != "" && port == "" {
		cfg.Server.Port = envPort
	}

	gameCfg := engine.Config{
		Seed: cfg.Game.Seed,
		Size: domain.Size{Width: cfg.Game.Width, Height: cfg.Game.Height},
	}
	randomSeed := cfg.Game.Seed == 0
	if randomSeed {
		logger.Log.Info("Using random seed per session")
	} else {
		logger.Log.Infof("Using explicit seed: %d", gameCfg.Seed)
	}

	// 2. Запуск сервера
	srv := server.New(gameCfg, randomSeed, cfg.Server.Port)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
