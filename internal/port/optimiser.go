package port

import "io"

// FileOptimiser shrinks uploaded payloads before they reach object storage.
type FileOptimiser interface {
	Compress(mimeType string, r io.Reader) ([]byte, error)
}

// PDFPageCounter reports the number of pages of a PDF payload.
type PDFPageCounter interface {
	CountPages(data []byte) (int, error)
}
