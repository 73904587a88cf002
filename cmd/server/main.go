package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/housecall/medigraph/internal/config"
	"github.com/housecall/medigraph/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
		cfg.ApplyEnv()
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to load diagnosis data: %v", err)
	}
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
