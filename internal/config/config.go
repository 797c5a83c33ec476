package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config - конфигурация сервера, читается из TOML-файла.
// Флаги командной строки имеют приоритет над файлом.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type GameConfig struct {
	// Seed - зерно генерации. 0 означает "случайное при каждой сессии".
	Seed   int64 `toml:"seed"`
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text, json
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: "8080"},
		Game:   GameConfig{Seed: 0, Width: 40, Height: 25},
	}
}

// Load читает TOML-файл поверх значений по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
