package download

// Package download implements the per-job worker built on top of yt-dlp
// (via github.com/lrstanley/go-ytdlp). It maps the requested kind/quality to
// engine options, relays progress callbacks into the progress store, and
// guarantees exactly one terminal state write per job.
