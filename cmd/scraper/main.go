package main

import (
	"flag"
	"log"

	"DeviceDB/internal/app"
	"DeviceDB/internal/database"
	"DeviceDB/internal/notify"
	"DeviceDB/internal/observability"
	"DeviceDB/internal/scraper/smartprix"
	"DeviceDB/pkg/config"
	"DeviceDB/utils"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "config.yml", "Path to the config file")
	brand := flag.String("brand", "", "Scrape a single brand instead of the configured list")
	flag.Parse()

	cfg := config.Load(*configPath)
	utils.CheckBrowserResources()
	observability.Start(cfg.Server.MetricsPort)

	repo := database.InitDB(cfg.DatabaseDSN)
	defer repo.Close()

	notifier := notify.NewEmailNotifier(cfg.SMTP)
	scr := smartprix.New(cfg.Scraper, cfg.Smartprix)
	application := app.New(cfg, repo, scr, notifier)

	brands := cfg.Scraper.Brands
	if *brand != "" {
		brands = []string{*brand}
	}

	application.RunCrawler(brands)
}
