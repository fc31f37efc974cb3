package main

import (
	"log"

	"github.com/joho/godotenv"

	"ifcdash/adapters/excel"
	"ifcdash/adapters/ifcstep"
	"ifcdash/api"
	"ifcdash/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] configuration error: %v", err)
	}

	app := api.NewApp(cfg, ifcstep.NewParser(), excel.NewReader())
	if err := app.Start(":" + cfg.API.Port); err != nil {
		log.Fatalf("[main] api server failed: %v", err)
	}
}
