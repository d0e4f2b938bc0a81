// ABOUTME: Default extraction capability built on the ledongthuc/pdf reader
// ABOUTME: Converts internal decode panics into ordinary capability errors
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	ltpdf "github.com/ledongthuc/pdf"
)

// PlainTextCapability extracts page text with the ledongthuc/pdf reader.
// The reader panics on some malformed files that pass the structural
// validator, so decode panics are recovered into errors here.
type PlainTextCapability struct{}

// ExtractText decodes up to pageLimit pages (0 = all) and returns the
// concatenated page text plus the document's total page count.
func (PlainTextCapability) ExtractText(buf []byte, pageLimit int) (ext Extraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decode: %v", r)
		}
	}()

	reader, err := ltpdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return Extraction{}, fmt.Errorf("pdf decode: %w", err)
	}

	total := reader.NumPage()
	pages := total
	if pageLimit > 0 && pageLimit < total {
		pages = pageLimit
	}

	var sb strings.Builder
	fonts := make(map[string]*ltpdf.Font)
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, perr := page.GetPlainText(fonts)
		if perr != nil {
			return Extraction{}, fmt.Errorf("pdf decode page %d: %w", i, perr)
		}
		sb.WriteString(text)
	}

	return Extraction{Text: sb.String(), PageCount: total}, nil
}
