package engine

import (
	"time"

	"rogue-server/internal/domain"
)

// Config хранит параметры запуска одной игровой сессии.
type Config struct {
	// Seed - зерно генерации местности. Одно зерно - одна и та же карта.
	Seed int64
	// Size - размеры мира в клетках.
	Size domain.Size
}

// NewConfig создает конфиг по умолчанию (случайное зерно).
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
		Size: domain.Size{Width: 40, Height: 25},
	}
}
