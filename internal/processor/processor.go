package processor

import (
	"context"
	"fmt"
	"io"
	"os"

	"encscan/internal/detect"
	"encscan/internal/logger"
	"encscan/pkg/textutil"
)

// Run detects the encoding of the file at path, decodes it and collects
// every line with a non-ASCII rune. The file is never modified.
//
// When updates is non-nil, Run sends the line count once and then one
// update per scanned line. Run does not close updates.
func Run(ctx context.Context, path string, opts Options, updates chan<- ProgressUpdate) (Report, error) {
	report := Report{Path: path}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	detector := opts.Detector
	if detector == nil {
		detector = detect.NewStatistical()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return report, err
	}

	result, err := detector.Detect(raw)
	if err != nil {
		return report, fmt.Errorf("detect encoding of %s: %w", path, err)
	}
	report.Encoding, report.Fallback = resolveLabel(result.Encoding)
	report.Language = result.Language
	report.Confidence = result.Confidence
	log.Debug("detected encoding",
		"path", path,
		"bytes", len(raw),
		"bom", textutil.DetectBOM(raw).String(),
		"encoding", report.Encoding,
		"confidence", report.Confidence,
		"language", report.Language,
		"fallback", report.Fallback,
	)

	lines, err := readLines(path, report.Encoding)
	if err != nil {
		return report, err
	}
	report.Lines = len(lines)

	if err := send(ctx, updates, ProgressUpdate{TotalDelta: len(lines)}); err != nil {
		return report, err
	}

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		update := ProgressUpdate{LinesDelta: 1}
		if textutil.HasNonASCII(line) {
			report.Issues = append(report.Issues, Issue{Line: i + 1, Text: textutil.Strip(line)})
			update.IssueDelta = 1
		}

		if err := send(ctx, updates, update); err != nil {
			return report, err
		}
	}

	log.Debug("scan complete", "path", path, "lines", report.Lines, "issues", len(report.Issues))
	return report, nil
}

// resolveLabel substitutes the default encoding for an empty detector answer.
// A blank but non-empty label is passed through and fails the lookup.
func resolveLabel(label string) (string, bool) {
	if label == "" {
		return textutil.DefaultEncoding, true
	}
	return label, false
}

// readLines reopens path and decodes it with the named encoding. Undecodable
// sequences become U+FFFD.
func readLines(path, label string) ([]string, error) {
	enc, err := textutil.Lookup(label)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	text, err := io.ReadAll(textutil.NewDecoder(file, enc))
	if err != nil {
		return nil, fmt.Errorf("decode %s as %s: %w", path, label, err)
	}

	return textutil.SplitLines(string(text)), nil
}

func send(ctx context.Context, updates chan<- ProgressUpdate, update ProgressUpdate) error {
	if updates == nil {
		return nil
	}
	select {
	case updates <- update:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
