package main

import (
	"embed"
	"io/fs"
	"log"

	"github.com/joho/godotenv"

	"ifcdash/adapters/excel"
	"ifcdash/adapters/ifcstep"
	"ifcdash/adapters/pdf"
	"ifcdash/internal/config"
	"ifcdash/ui"
)

//go:embed ui/templates/*.html ui/static/*
var embeddedFiles embed.FS

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Printf("[main] no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] configuration error: %v", err)
	}

	assets, err := fs.Sub(embeddedFiles, "ui")
	if err != nil {
		log.Fatalf("[main] embedded assets unavailable: %v", err)
	}

	server, err := ui.NewServer(
		cfg,
		ifcstep.NewParser(),
		excel.NewReader(),
		pdf.NewExporter(),
		assets,
	)
	if err != nil {
		log.Fatalf("[main] server setup failed: %v", err)
	}

	if err := server.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("[main] server failed: %v", err)
	}
}
