package server

import (
	"os"
	"testing"

	"rogue-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
