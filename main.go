package main

import (
	"log"

	"github.com/infektyd/FoundationWriting/internal/app"
	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/pkg/configwatcher"
	"github.com/infektyd/FoundationWriting/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
