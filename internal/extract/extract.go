// Package extract implements the synchronous metadata lookup behind
// POST /api/info. It normalizes whatever the engine reports into a fixed
// payload: missing fields render as "N/A" so the UI never special-cases
// absence, and engine faults are converted to plain error messages.
package extract

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/ytfetch/internal/engine"
)

const (
	notAvailable     = "N/A"
	descriptionLimit = 200
)

// Metadata is the normalized info payload returned to clients.
type Metadata struct {
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Uploader    string `json:"uploader"`
	ViewCount   string `json:"view_count"`
	UploadDate  string `json:"upload_date"`
	Description string `json:"description"`
}

// Adapter performs metadata lookups via the engine.
type Adapter struct {
	fetcher engine.InfoFetcher
}

// NewAdapter creates a new extraction adapter.
func NewAdapter(fetcher engine.InfoFetcher) *Adapter {
	return &Adapter{fetcher: fetcher}
}

// FetchInfo looks up url and returns the normalized metadata. Any engine
// fault comes back as an error value carrying a human-readable message.
func (a *Adapter) FetchInfo(ctx context.Context, url string) (Metadata, error) {
	info, err := a.fetcher.FetchInfo(ctx, url)
	if err != nil {
		return Metadata{}, err
	}
	if info == nil {
		return Metadata{}, fmt.Errorf("could not fetch media information")
	}
	return normalize(info), nil
}

func normalize(info *engine.Info) Metadata {
	return Metadata{
		Title:       stringOr(info.Title),
		Duration:    formatDuration(info.Duration),
		Uploader:    stringOr(info.Uploader),
		ViewCount:   formatViewCount(info.ViewCount),
		UploadDate:  stringOr(info.UploadDate),
		Description: truncateDescription(info.Description),
	}
}

func stringOr(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	return *s
}

func formatDuration(d *float64) string {
	if d == nil || *d <= 0 {
		return notAvailable
	}
	return fmt.Sprintf("%d seconds", int64(*d))
}

func formatViewCount(v *float64) string {
	if v == nil || *v <= 0 {
		return notAvailable
	}
	return groupDigits(int64(*v))
}

// groupDigits renders n with comma thousand separators, e.g. 1234567 ->
// "1,234,567".
func groupDigits(n int64) string {
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func truncateDescription(s *string) string {
	if s == nil || *s == "" {
		return notAvailable
	}
	desc := *s
	if len(desc) > descriptionLimit {
		desc = desc[:descriptionLimit]
	}
	return desc + "..."
}
