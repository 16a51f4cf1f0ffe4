package main

import (
	"context"
	"log"
	"time"

	"github.com/ytget/ytfetch/internal/config"
	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/engine"
	"github.com/ytget/ytfetch/internal/extract"
	"github.com/ytget/ytfetch/internal/jobid"
	"github.com/ytget/ytfetch/internal/metrics"
	"github.com/ytget/ytfetch/internal/platform"
	"github.com/ytget/ytfetch/internal/progress"
	"github.com/ytget/ytfetch/internal/scheduler"
	"github.com/ytget/ytfetch/internal/server"
)

const installTimeout = 2 * time.Minute

func main() {
	cfg := config.Load()

	if err := platform.CreateDirectoryIfNotExists(cfg.DownloadDir); err != nil {
		log.Fatalf("Failed to create download directory %s: %v", cfg.DownloadDir, err)
	}

	// Make sure yt-dlp is available. A failure here is not fatal: a system
	// installation may still be on PATH.
	ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
	if err := engine.Install(ctx); err != nil {
		log.Printf("yt-dlp self-install failed, relying on system binary: %v", err)
	}
	cancel()

	client := engine.NewClient()
	store := progress.NewStore()
	collector := metrics.NewCollector()

	worker := download.NewWorker(client, store, collector, download.Tuning{
		ConcurrentFragments: cfg.ConcurrentFragments,
		Retries:             cfg.Retries,
	})
	sched := scheduler.New(jobid.NewGenerator(), store, worker)
	info := extract.NewAdapter(client)

	srv := server.New(info, sched, store, collector.Handler(), cfg.DownloadDir)

	log.Printf("Listening on %s, downloads go to %s", cfg.Addr, cfg.DownloadDir)
	if err := srv.Router().Run(cfg.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
