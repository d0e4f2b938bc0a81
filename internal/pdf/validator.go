// ABOUTME: Structural validation of raw PDF buffers before expensive processing
// ABOUTME: Pure byte checks for header signature, EOF marker, and minimum size
package pdf

import (
	"bytes"
	"errors"
)

// Structural validation failures. All three are deterministic: retrying the
// same buffer cannot change the outcome.
var (
	ErrInvalidHeader = errors.New("invalid PDF header")
	ErrInvalidFooter = errors.New("invalid PDF footer")
	ErrTooSmall      = errors.New("file too small to be a valid PDF")
)

const (
	headerSignature = "%PDF-"
	footerMarker    = "%%EOF"
	// footerWindow is how far from the end the %%EOF marker may appear
	footerWindow = 1024
	// minFileSize is the smallest buffer that can hold a usable PDF
	minFileSize = 100
)

// Validate inspects a raw buffer and rejects structurally invalid input.
// It performs no I/O and has no side effects; the same buffer always yields
// the same classification.
func Validate(buf []byte) error {
	if len(buf) < len(headerSignature) || string(buf[:len(headerSignature)]) != headerSignature {
		return ErrInvalidHeader
	}

	tail := buf
	if len(buf) > footerWindow {
		tail = buf[len(buf)-footerWindow:]
	}
	if !bytes.Contains(tail, []byte(footerMarker)) {
		return ErrInvalidFooter
	}

	if len(buf) < minFileSize {
		return ErrTooSmall
	}

	return nil
}
