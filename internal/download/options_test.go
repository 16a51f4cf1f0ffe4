package download

import (
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
	}{
		{"video", KindVideo},
		{"audio", KindAudio},
		{"", KindVideo},
		{"podcast", KindVideo},
	}

	for _, test := range tests {
		result := ParseKind(test.input)
		if result != test.expected {
			t.Errorf("ParseKind(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormatForQuality(t *testing.T) {
	tests := []struct {
		quality  string
		expected string
	}{
		{"1080p", "bv*[height<=1080]+ba/b[height<=1080] / bv*+ba/b"},
		{"720p", "bv*[height<=720]+ba/b[height<=720] / bv*+ba/b"},
		{"480p", "bv*[height<=480]+ba/b[height<=480] / bv*+ba/b"},
		{"360p", "bv*[height<=360]+ba/b[height<=360] / bv*+ba/b"},
		{"4320p", defaultVideoFormat},
		{"", defaultVideoFormat},
	}

	for _, test := range tests {
		result := formatForQuality(test.quality)
		if result != test.expected {
			t.Errorf("formatForQuality(%q) = %s, expected %s", test.quality, result, test.expected)
		}
	}
}

func TestAudioBitrateFor(t *testing.T) {
	tests := []struct {
		quality  string
		expected string
	}{
		{"320kbps", "320"},
		{"192kbps", "192"},
		{"128kbps", "128"},
		{"lossless", "192"},
		{"", "192"},
	}

	for _, test := range tests {
		result := audioBitrateFor(test.quality)
		if result != test.expected {
			t.Errorf("audioBitrateFor(%q) = %s, expected %s", test.quality, result, test.expected)
		}
	}
}

func TestBuildOptions_Video(t *testing.T) {
	opts := buildOptions(KindVideo, "480p", "/data/downloads", DefaultTuning())

	if opts.ExtractAudio {
		t.Error("Expected video options to not extract audio")
	}
	if opts.Format != videoFormats["480p"] {
		t.Errorf("Unexpected format: %s", opts.Format)
	}
	if !strings.HasPrefix(opts.OutputTemplate, "/data/downloads") {
		t.Errorf("Expected output template under /data/downloads, got %s", opts.OutputTemplate)
	}
	if !strings.HasSuffix(opts.OutputTemplate, "%(title)s.%(ext)s") {
		t.Errorf("Expected title-based output template, got %s", opts.OutputTemplate)
	}
	if opts.ConcurrentFragments != 3 || opts.Retries != 3 {
		t.Errorf("Expected default tuning 3/3, got %d/%d", opts.ConcurrentFragments, opts.Retries)
	}
}

func TestBuildOptions_Audio(t *testing.T) {
	opts := buildOptions(KindAudio, "320kbps", "/data/downloads", DefaultTuning())

	if !opts.ExtractAudio {
		t.Error("Expected audio options to extract audio")
	}
	if opts.AudioQuality != "320" {
		t.Errorf("Expected audio quality '320', got %s", opts.AudioQuality)
	}
	if opts.Format != "bestaudio/best" {
		t.Errorf("Expected best-audio format expression, got %s", opts.Format)
	}
}
