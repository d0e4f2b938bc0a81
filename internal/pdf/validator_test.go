// ABOUTME: Tests for structural PDF buffer validation
// ABOUTME: Covers header, footer, and size classification plus idempotence
package pdf

import (
	"bytes"
	"errors"
	"testing"
)

// wellFormed builds a buffer that passes all structural checks
func wellFormed() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")
	buf.Write(bytes.Repeat([]byte("x"), 200))
	buf.WriteString("\n%%EOF\n")
	return buf.Bytes()
}

func TestValidate_WellFormedBuffer(t *testing.T) {
	if err := Validate(wellFormed()); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_Classification(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		wantErr error
	}{
		{
			name:    "empty buffer",
			buf:     nil,
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "buffer shorter than signature",
			buf:     []byte("%PD"),
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "wrong signature",
			buf:     append([]byte("HELLO"), wellFormed()[5:]...),
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "lowercase signature",
			buf:     append([]byte("%pdf-"), wellFormed()[5:]...),
			wantErr: ErrInvalidHeader,
		},
		{
			name:    "missing EOF marker",
			buf:     append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("x"), 300)...),
			wantErr: ErrInvalidFooter,
		},
		{
			name: "EOF marker outside final window",
			buf: func() []byte {
				var b bytes.Buffer
				b.WriteString("%PDF-1.7\n%%EOF\n")
				b.Write(bytes.Repeat([]byte("x"), 2048))
				return b.Bytes()
			}(),
			wantErr: ErrInvalidFooter,
		},
		{
			name:    "valid markers but under minimum size",
			buf:     []byte("%PDF-1.7\nshort\n%%EOF\n"),
			wantErr: ErrTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.buf)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EOFMarkerInsideWindowOfLargeBuffer(t *testing.T) {
	var b bytes.Buffer
	b.WriteString("%PDF-1.7\n")
	b.Write(bytes.Repeat([]byte("x"), 4096))
	b.WriteString("%%EOF")
	// Marker sits in the last 1024 bytes even though the body is large
	b.Write(bytes.Repeat([]byte(" "), 100))

	if err := Validate(b.Bytes()); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	buffers := [][]byte{
		wellFormed(),
		[]byte("not a pdf at all"),
		append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("x"), 300)...),
	}

	for _, buf := range buffers {
		first := Validate(buf)
		for i := 0; i < 5; i++ {
			if got := Validate(buf); !errors.Is(got, first) && got != nil {
				t.Errorf("Validate() changed classification on re-run: first %v, then %v", first, got)
			}
			if (first == nil) != (Validate(buf) == nil) {
				t.Errorf("Validate() ok/fail flipped between runs for same buffer")
			}
		}
	}
}
