// Command schemacd serves the schema compiler as an HTTP service: POST a
// schema document, get back generated Go validator source.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/SolidWallOfCode/canned-yaml/api"
	"github.com/SolidWallOfCode/canned-yaml/config"
	"github.com/SolidWallOfCode/canned-yaml/internal/cache"
	obslog "github.com/SolidWallOfCode/canned-yaml/internal/obs/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	obslog.Setup(obslog.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		FilePath:   cfg.Logging.FilePath,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})

	ctx := context.Background()
	var store cache.Store

	if cfg.Cache.Mode == "mongo" {
		slog.Info("using mongo artifact cache")
		mongoStore, err := cache.NewMongoStore(ctx, cfg.Cache.Mongo.ConnectionString, cfg.Cache.Mongo.DatabaseName)
		if err != nil {
			log.Fatalf("failed to connect to mongo: %v", err)
		}
		defer mongoStore.Close(ctx)
		store = cache.NewCachingStore(mongoStore)
	} else {
		path := cfg.Cache.File.Path
		if path == "" {
			path = "./data"
		}
		slog.Info("using file artifact cache", "path", path)
		fileStore, err := cache.NewFileStore(path)
		if err != nil {
			log.Fatalf("failed to initialize file cache: %v", err)
		}
		store = cache.NewCachingStore(fileStore)
	}

	apiInstance := api.NewAPI()
	metrics := api.NewMetrics()
	apiInstance.Router.Handle("/metrics", metrics.Handler())
	api.NewCompileHandlers(apiInstance.Huma, store, metrics)

	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	addr := fmt.Sprintf(":%d", port)
	slog.Info("schemacd listening", "addr", addr)
	if err := apiInstance.Start(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
