package main

import (
	"log"

	"github.com/Sahill13/backendhost/internal/app"
	"github.com/Sahill13/backendhost/internal/config"
	"github.com/Sahill13/backendhost/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
