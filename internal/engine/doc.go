package engine

// Package engine binds the app to yt-dlp (via github.com/lrstanley/go-ytdlp).
// It exposes the two capabilities the rest of the code needs, metadata
// lookup and a download run with a progress hook, behind small interfaces
// so workers and handlers can be tested without the binary.
