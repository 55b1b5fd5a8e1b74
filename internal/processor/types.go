package processor

import (
	"log/slog"

	"encscan/internal/detect"
)

type Options struct {
	// Detector guesses the file's encoding. Nil means detect.NewStatistical.
	Detector detect.Detector
	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Issue is a line holding at least one rune outside 7-bit ASCII.
type Issue struct {
	Line int
	Text string
}

type Report struct {
	Path       string
	Encoding   string
	Fallback   bool
	Language   string
	Confidence int
	Lines      int
	Issues     []Issue
}

type ProgressUpdate struct {
	TotalDelta int
	LinesDelta int
	IssueDelta int
}
