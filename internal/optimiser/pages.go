package optimiser

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

// PageCounter reads PDF metadata to report page counts.
type PageCounter struct{}

var _ port.PDFPageCounter = (*PageCounter)(nil)

func NewPageCounter() *PageCounter {
	return &PageCounter{}
}

func (PageCounter) CountPages(data []byte) (int, error) {
	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse PDF: %w", err)
	}
	return rdr.NumPage(), nil
}
