package download

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ytget/ytfetch/internal/engine"
	"github.com/ytget/ytfetch/internal/metrics"
	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/platform"
	"github.com/ytget/ytfetch/internal/progress"
)

// Job describes one requested fetch.
type Job struct {
	ID        string
	URL       string
	Kind      Kind
	Quality   string
	OutputDir string
}

// Worker runs download jobs. Each job executes on its own goroutine; the
// worker itself is stateless and safe for concurrent Run calls.
type Worker struct {
	engine    engine.Downloader
	store     *progress.Store
	collector *metrics.Collector
	tuning    Tuning
}

// NewWorker creates a worker bound to an engine and a progress store.
func NewWorker(eng engine.Downloader, store *progress.Store, collector *metrics.Collector, tuning Tuning) *Worker {
	return &Worker{
		engine:    eng,
		store:     store,
		collector: collector,
		tuning:    tuning,
	}
}

// Run executes one job to a terminal state. It never lets a fault escape:
// whatever happens, the job's last record in the store is completed or
// error, so no poller is left watching a stuck job.
func (w *Worker) Run(ctx context.Context, job Job) {
	w.collector.JobStarted()

	defer func() {
		if r := recover(); r != nil {
			w.fail(job, fmt.Sprintf("download failed: %v", r))
		}
	}()

	if err := platform.CreateDirectoryIfNotExists(job.OutputDir); err != nil {
		w.fail(job, fmt.Sprintf("cannot prepare output directory %s: %v", job.OutputDir, err))
		return
	}

	opts := buildOptions(job.Kind, job.Quality, job.OutputDir, w.tuning)

	info, err := w.engine.Download(ctx, job.URL, opts, func(p engine.Progress) {
		w.store.Put(job.ID, snapshotRecord(p))
	})
	if err != nil {
		w.fail(job, err.Error())
		return
	}

	filename := finalFilename(info)
	if filename == "" {
		w.fail(job, "download finished but the engine reported no file")
		return
	}

	w.store.Put(job.ID, model.CompletedRecord(filename))
	w.collector.JobCompleted()
	log.Printf("job %s completed: %s", job.ID, job.URL)
}

func (w *Worker) fail(job Job, message string) {
	w.store.Put(job.ID, model.ErrorRecord(message))
	w.collector.JobFailed()
	log.Printf("job %s failed: %s", job.ID, message)
}

// snapshotRecord normalizes one engine progress observation into a
// downloading record.
func snapshotRecord(p engine.Progress) model.JobRecord {
	var speed float64
	if !p.Started.IsZero() {
		if elapsed := time.Since(p.Started).Seconds(); elapsed > 0 {
			speed = float64(p.DownloadedBytes) / elapsed
		}
	}

	percent := "0%"
	if p.TotalBytes > 0 {
		percent = fmt.Sprintf("%.1f%%", float64(p.DownloadedBytes)/float64(p.TotalBytes)*100)
	}

	eta := p.ETASeconds
	if eta < 0 {
		eta = 0
	}

	return model.DownloadingRecord(p.DownloadedBytes, p.TotalBytes, speed, eta, percent)
}

func finalFilename(info *engine.Info) string {
	if info == nil || info.Filename == nil {
		return ""
	}
	return *info.Filename
}
