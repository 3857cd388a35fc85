package main

import (
	"flag"
	"log"

	"DeviceDB/internal/database"
	"DeviceDB/internal/observability"
	"DeviceDB/internal/server"
	"DeviceDB/pkg/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "config.yml", "Path to the config file")
	flag.Parse()

	cfg := config.Load(*configPath)
	observability.Register()

	repo := database.InitDB(cfg.DatabaseDSN)
	defer repo.Close()

	log.Println("Starting DeviceDB query API server...")
	server.Start(repo, cfg)
}
