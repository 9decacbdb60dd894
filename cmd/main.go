package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"calorie-counter-api/internal/application"
	"calorie-counter-api/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg(".env file not found or could not be loaded")
	}

	var configurations config.Config
	if err := configurations.Load("internal/config"); err != nil {
		log.Fatal().Err(err).Msg("Failed loading the configurations")
	}

	app := application.NewApplication(&configurations)
	if app == nil {
		log.Fatal().Msg("Failed to create application")
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		app.Close()
	}()

	app.StartServer()
}
