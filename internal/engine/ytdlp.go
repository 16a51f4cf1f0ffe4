package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

const defaultProgressInterval = 500 * time.Millisecond

// Client is the yt-dlp backed implementation of InfoFetcher and Downloader.
type Client struct {
	progressInterval time.Duration
}

// NewClient creates a new engine client.
func NewClient() *Client {
	return &Client{progressInterval: defaultProgressInterval}
}

// Install downloads the yt-dlp binary if it is not already present, so the
// server works without a system-wide yt-dlp installation.
func Install(ctx context.Context) error {
	_, err := ytdlp.Install(ctx, nil)
	return err
}

// FetchInfo looks up metadata for url without downloading anything.
func (c *Client) FetchInfo(ctx context.Context, url string) (*Info, error) {
	dl := ytdlp.New().
		SkipDownload().
		NoPlaylist().
		Quiet()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("metadata lookup failed: %w", err)
	}

	info, err := firstInfo(result)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("could not fetch media information")
	}
	return info, nil
}

// Download runs one download according to opts. onProgress is invoked on
// the engine's reporting interval until the call returns.
func (c *Client) Download(ctx context.Context, url string, opts Options, onProgress func(Progress)) (*Info, error) {
	dl := ytdlp.New().
		NoPlaylist().
		Quiet().
		Output(opts.OutputTemplate)

	if opts.ConcurrentFragments > 0 {
		dl = dl.ConcurrentFragments(opts.ConcurrentFragments)
	}
	if opts.Retries > 0 {
		retries := strconv.Itoa(opts.Retries)
		dl = dl.Retries(retries).
			FragmentRetries(retries).
			FileAccessRetries(retries)
	}

	if opts.ExtractAudio {
		dl = dl.ExtractAudio().
			AudioFormat("mp3").
			AudioQuality(opts.AudioQuality)
	}
	if opts.Format != "" {
		dl = dl.Format(opts.Format)
	}

	if onProgress != nil {
		dl.ProgressFunc(c.progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(Progress{
				DownloadedBytes: int64(update.DownloadedBytes),
				TotalBytes:      int64(update.TotalBytes),
				Started:         update.Started,
				ETASeconds:      int(update.ETA().Seconds()),
			})
		})
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	return firstInfo(result)
}

// firstInfo extracts the first media entry from a yt-dlp result. Returns
// nil when the engine reported nothing.
func firstInfo(result *ytdlp.Result) (*Info, error) {
	entries, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("parse extracted info: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	src := entries[0]
	return &Info{
		Title:       src.Title,
		Duration:    src.Duration,
		Uploader:    src.Uploader,
		ViewCount:   src.ViewCount,
		UploadDate:  src.UploadDate,
		Description: src.Description,
		Filename:    src.Filename,
	}, nil
}
