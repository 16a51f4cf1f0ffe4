package engine

import (
	"context"
	"time"
)

// Info is the raw metadata yt-dlp reports for a single media URL. Pointer
// fields mirror the engine's JSON: nil means the site did not report the
// value.
type Info struct {
	Title       *string
	Duration    *float64
	Uploader    *string
	ViewCount   *float64
	UploadDate  *string
	Description *string
	Filename    *string
}

// Progress is one observation delivered by the engine's progress hook.
type Progress struct {
	DownloadedBytes int64
	TotalBytes      int64
	Started         time.Time
	ETASeconds      int
}

// Options tune a single download run. They are passed through to the
// engine; this package does not implement retries or fragment fetching.
type Options struct {
	// Format is the yt-dlp format expression.
	Format string

	// ExtractAudio post-processes the download into mp3 at AudioQuality
	// kbps (e.g. "192").
	ExtractAudio bool
	AudioQuality string

	// OutputTemplate is the yt-dlp output path template.
	OutputTemplate string

	// ConcurrentFragments and Retries bound the engine's parallel fragment
	// fetch and its per-fragment/file-access retry budget.
	ConcurrentFragments int
	Retries             int
}

// InfoFetcher looks up media metadata without downloading.
type InfoFetcher interface {
	FetchInfo(ctx context.Context, url string) (*Info, error)
}

// Downloader runs one download to completion, invoking onProgress as the
// engine reports transfer updates. It returns the extracted info for the
// finished file.
type Downloader interface {
	Download(ctx context.Context, url string, opts Options, onProgress func(Progress)) (*Info, error)
}
