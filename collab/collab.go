/*
Package collab declares the services a transliterating text box talks to but
which are not part of this module: speech synthesis, optical character
recognition and document text extraction.

Hosts receive implementations from their embedding application. Every
service is asynchronous from the user's point of view and may fail; the
error types below let hosts tell retryable failures from final ones.
*/
package collab

import (
	"context"
	"errors"
	"fmt"
)

// Defaults passed to speech synthesis when the user did not choose.
const (
	DefaultGender = "male"
	DefaultRegion = "gialai"
)

// SpeechRequest is the input of a synthesis call. Gender and Region are
// passed through to the synthesizer without interpretation.
type SpeechRequest struct {
	Text   string
	Gender string
	Region string
}

// WithDefaults fills in empty Gender and Region.
func (r SpeechRequest) WithDefaults() SpeechRequest {
	if r.Gender == "" {
		r.Gender = DefaultGender
	}
	if r.Region == "" {
		r.Region = DefaultRegion
	}
	return r
}

// Synthesizer converts text to speech and returns base64-encoded audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SpeechRequest) (string, error)
}

// ImageExtractor recognizes text in an image.
type ImageExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// DocumentParser extracts plain text from a document file. ext is the file
// extension including the dot, e.g. ".docx".
type DocumentParser interface {
	ExtractText(ctx context.Context, data []byte, ext string) (string, error)
}

// --- Errors ----------------------------------------------------------------

// SynthesisErrorKind classifies synthesis failures.
type SynthesisErrorKind int

const (
	SynthesisNetwork SynthesisErrorKind = iota + 1
	SynthesisRemote
	SynthesisTimeout
)

func (k SynthesisErrorKind) String() string {
	switch k {
	case SynthesisNetwork:
		return "network"
	case SynthesisRemote:
		return "remote"
	case SynthesisTimeout:
		return "timeout"
	}
	return "unknown"
}

// SynthesisError is returned by synthesizers. All synthesis errors may be
// retried by the user.
type SynthesisError struct {
	Kind SynthesisErrorKind
	Err  error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("speech synthesis failed (%s): %v", e.Kind, e.Err)
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// Retryable reports whether the request may be repeated.
func (e *SynthesisError) Retryable() bool { return true }

// ExtractionErrorKind classifies OCR failures.
type ExtractionErrorKind int

const (
	EngineNotReady ExtractionErrorKind = iota + 1
	NoTextFound
)

func (k ExtractionErrorKind) String() string {
	switch k {
	case EngineNotReady:
		return "engine not ready"
	case NoTextFound:
		return "no text found"
	}
	return "unknown"
}

// ExtractionError is returned by image extractors.
type ExtractionError struct {
	Kind ExtractionErrorKind
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return "text extraction failed: " + e.Kind.String()
	}
	return fmt.Sprintf("text extraction failed (%s): %v", e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Retryable is true if the engine was not ready yet.
func (e *ExtractionError) Retryable() bool { return e.Kind == EngineNotReady }

// UnsupportedFormatError is returned by document parsers for unknown file
// extensions.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// Retryable tells whether err is worth retrying, as far as the error
// taxonomy of this package knows.
func Retryable(err error) bool {
	var r interface{ Retryable() bool }
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return false
}
