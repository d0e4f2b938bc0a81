// ABOUTME: Extraction adapter invoking an external text-extraction capability
// ABOUTME: Validates extracted text and tags capability failures as retryable
package pdf

import (
	"errors"
	"fmt"
	"strings"
)

// Content validation failures. Like the validator errors these are
// deterministic and never retried.
var (
	ErrNoText           = errors.New("no text content found in PDF")
	ErrInsufficientText = errors.New("PDF contains insufficient text content")
)

// minTextLength is the minimum trimmed length of usable extracted text
const minTextLength = 10

// ExtractionError wraps a failure of the extraction capability itself.
// Unlike structural errors it is considered transient and retryable.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("PDF text extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Extraction is the normalized output of the text-extraction capability
type Extraction struct {
	Text      string
	PageCount int
}

// Capability decodes raw PDF bytes into text and a page count. A pageLimit
// of 0 means no limit. Implementations may fail on malformed internal
// structure that the Validator does not catch.
type Capability interface {
	ExtractText(buf []byte, pageLimit int) (Extraction, error)
}

// Extractor invokes a Capability on a validated buffer and checks its output
type Extractor struct {
	capability Capability
}

// NewExtractor creates an Extractor backed by the given capability
func NewExtractor(capability Capability) *Extractor {
	return &Extractor{capability: capability}
}

// Extract runs the capability with no page limit and validates the result.
// Capability failures come back as *ExtractionError; empty or too-short text
// comes back as ErrNoText or ErrInsufficientText.
func (e *Extractor) Extract(buf []byte) (Extraction, error) {
	out, err := e.capability.ExtractText(buf, 0)
	if err != nil {
		return Extraction{}, &ExtractionError{Err: err}
	}

	if out.Text == "" {
		return Extraction{}, ErrNoText
	}
	if len(strings.TrimSpace(out.Text)) < minTextLength {
		return Extraction{}, ErrInsufficientText
	}

	return out, nil
}
