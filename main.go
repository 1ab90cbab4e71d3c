package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/CRRogo/friend-cast/bot"
	"github.com/CRRogo/friend-cast/bot/config"
	"github.com/CRRogo/friend-cast/bot/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	if err := bot.Start(cfg, appLog); err != nil {
		appLog.ErrorW("startup failed", "error", err)
		_ = appLog.Sync()
		os.Exit(1)
	}
	defer appLog.Sync()
	defer bot.Stop()

	// keep process alive until Ctrl+C / SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	appLog.InfoW("shutting down")
}
