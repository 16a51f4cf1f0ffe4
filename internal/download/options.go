package download

import (
	"path/filepath"

	"github.com/ytget/ytfetch/internal/engine"
)

// Kind selects between a video download and an audio-only download.
type Kind string

const (
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

// ParseKind maps a request string to a Kind, defaulting to video.
func ParseKind(s string) Kind {
	if s == string(KindAudio) {
		return KindAudio
	}
	return KindVideo
}

// outputTemplate names downloaded files after the media title.
const outputTemplate = "%(title)s.%(ext)s"

// videoFormats bounds each resolution ceiling, preferring combined
// video+audio streams at or below it and falling back to best effort.
var videoFormats = map[string]string{
	"1080p": "bv*[height<=1080]+ba/b[height<=1080] / bv*+ba/b",
	"720p":  "bv*[height<=720]+ba/b[height<=720] / bv*+ba/b",
	"480p":  "bv*[height<=480]+ba/b[height<=480] / bv*+ba/b",
	"360p":  "bv*[height<=360]+ba/b[height<=360] / bv*+ba/b",
}

const defaultVideoFormat = "bv*[height<=720]+ba/b[height<=720]"

// audioBitrates maps UI quality strings to mp3 bitrates in kbps.
var audioBitrates = map[string]string{
	"320kbps": "320",
	"192kbps": "192",
	"128kbps": "128",
}

const defaultAudioBitrate = "192"

// audioFormat selects the best standalone audio stream, falling back to
// extracting from the best combined stream.
const audioFormat = "bestaudio/best"

func formatForQuality(quality string) string {
	if format, ok := videoFormats[quality]; ok {
		return format
	}
	return defaultVideoFormat
}

func audioBitrateFor(quality string) string {
	if bitrate, ok := audioBitrates[quality]; ok {
		return bitrate
	}
	return defaultAudioBitrate
}

// Tuning carries the transfer policies handed to the engine.
type Tuning struct {
	ConcurrentFragments int
	Retries             int
}

// DefaultTuning matches a 3-way fragment fetch with a 3-attempt retry
// budget for transient failures.
func DefaultTuning() Tuning {
	return Tuning{ConcurrentFragments: 3, Retries: 3}
}

// buildOptions resolves kind and quality into concrete engine options.
func buildOptions(kind Kind, quality, outputDir string, tuning Tuning) engine.Options {
	opts := engine.Options{
		OutputTemplate:      filepath.Join(outputDir, outputTemplate),
		ConcurrentFragments: tuning.ConcurrentFragments,
		Retries:             tuning.Retries,
	}

	if kind == KindAudio {
		opts.ExtractAudio = true
		opts.AudioQuality = audioBitrateFor(quality)
		opts.Format = audioFormat
	} else {
		opts.Format = formatForQuality(quality)
	}
	return opts
}
