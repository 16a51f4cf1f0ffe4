// Package scheduler accepts download requests, allocates job IDs, and
// dispatches workers. Submission is fire-and-forget: the caller gets an ID
// back as soon as the job is registered, never waiting on the download.
package scheduler

import (
	"context"
	"errors"
	"strings"

	"github.com/ytget/ytfetch/internal/download"
	"github.com/ytget/ytfetch/internal/jobid"
	"github.com/ytget/ytfetch/internal/model"
	"github.com/ytget/ytfetch/internal/progress"
)

// ErrURLRequired is returned when a submission carries no URL. The message
// is user-facing.
var ErrURLRequired = errors.New("URL is required")

// Runner executes one job to a terminal state.
type Runner interface {
	Run(ctx context.Context, job download.Job)
}

// Scheduler registers and dispatches download jobs.
type Scheduler struct {
	ids    *jobid.Generator
	store  *progress.Store
	worker Runner
}

// New creates a scheduler.
func New(ids *jobid.Generator, store *progress.Store, worker Runner) *Scheduler {
	return &Scheduler{
		ids:    ids,
		store:  store,
		worker: worker,
	}
}

// Submit validates the request, allocates an ID, seeds the starting record,
// and spawns the worker. The starting record is visible before Submit
// returns, so an immediate poll never sees unknown.
func (s *Scheduler) Submit(url, kind, quality, outputDir string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", ErrURLRequired
	}

	id := s.ids.Next()
	s.store.Put(id, model.StartingRecord())

	job := download.Job{
		ID:        id,
		URL:       url,
		Kind:      download.ParseKind(kind),
		Quality:   quality,
		OutputDir: outputDir,
	}
	go s.worker.Run(context.Background(), job)

	return id, nil
}
