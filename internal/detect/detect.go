// Package detect guesses the character encoding of raw file contents.
//
// A Detector returns a best-effort label plus a confidence score. An empty
// label with a nil error means the detector had no answer; callers pick
// their own fallback in that case.
package detect

import (
	"errors"

	"github.com/saintfish/chardet"

	"encscan/pkg/textutil"
)

// Result is a detection outcome. Confidence runs from 0 to 100.
type Result struct {
	Encoding   string
	Language   string
	Confidence int
}

// Detector guesses the encoding of raw bytes.
type Detector interface {
	Detect(raw []byte) (Result, error)
}

// Func adapts a plain function to Detector.
type Func func(raw []byte) (Result, error)

func (f Func) Detect(raw []byte) (Result, error) {
	return f(raw)
}

// Statistical reports byte order marks directly and otherwise asks the
// chardet recognisers for the best match.
type Statistical struct {
	detector *chardet.Detector
}

// NewStatistical returns a Statistical detector for text (not HTML-stripped)
// input.
func NewStatistical() *Statistical {
	return &Statistical{detector: chardet.NewTextDetector()}
}

func (s *Statistical) Detect(raw []byte) (Result, error) {
	if len(raw) == 0 {
		return Result{}, nil
	}

	if bom := textutil.DetectBOM(raw); bom != textutil.BOMNone {
		return Result{Encoding: bom.Label(), Confidence: 100}, nil
	}

	best, err := s.detector.DetectBest(raw)
	if errors.Is(err, chardet.NotDetectedError) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, err
	}
	if best == nil {
		return Result{}, nil
	}

	return Result{
		Encoding:   best.Charset,
		Language:   best.Language,
		Confidence: best.Confidence,
	}, nil
}
