package main

import (
	"go.uber.org/zap"

	"coin-casino/internal/app"
	"coin-casino/internal/logger"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	server := app.NewServer()
	if err := server.Start(); err != nil {
		logger.Log.Fatal("server stopped", zap.Error(err))
	}
}
