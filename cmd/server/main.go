package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/devfolio/stats-service/internal/adapters/api"
	"github.com/devfolio/stats-service/internal/adapters/http/handlers"
	"github.com/devfolio/stats-service/internal/adapters/storage"
	"github.com/devfolio/stats-service/internal/core/service"
	"github.com/devfolio/stats-service/internal/refresher"
	"github.com/devfolio/stats-service/internal/routes"
	"github.com/devfolio/stats-service/pkg/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.GitHubToken == "" {
		log.Println("warning: GITHUB_TOKEN not set, using unauthenticated GitHub API (rate limited)")
	}

	// Initialize the GitHub client and the aggregation service
	client := api.NewGitHubClient(cfg.GitHubToken)
	profiles := service.NewProfileService(client)

	var provider service.ProfileProvider = profiles

	// Wrap with the snapshot cache and background refresher when configured
	if cfg.CacheEnabled() {
		db, err := storage.InitDB(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize snapshot cache: %v", err)
		}
		store := storage.NewGormSnapshotStore(db)
		cached := service.NewCachedProfileService(profiles, store, cfg.CacheTTL)
		provider = cached

		worker := refresher.New(cached, cfg.RefreshSchedule)
		if err := worker.Start(); err != nil {
			log.Fatalf("Failed to start refresher: %v", err)
		}
		defer worker.Stop()

		if cfg.RunRefreshOnStartup {
			go worker.RunOnce(context.Background())
		}
	}

	// Set up HTTP routes
	handler := handlers.NewProfileHandler(provider, client)
	router := routes.NewRouter(handler)

	// Start the HTTP server
	log.Printf("Server is running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Could not start server: %s", err)
	}
}
