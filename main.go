package main

import (
	"flag"
	"log"

	"GeoBoard/internal/config"
	"GeoBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Printf("Starting board: %dx%d at scale %.2f", cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.Scale)
	ui.RunApp(cfg)
}
