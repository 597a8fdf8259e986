package optimiser

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

// Optimiser shrinks uploaded files before they reach object storage:
// thumbnails are converted to lossy WebP, PDF attachments are run through
// pdfcpu, everything else passes through untouched.
type Optimiser struct {
	webpEnc WebPEncoder
	pdfOpt  PDFOptimizer
}

// compile-time check: *Optimiser must satisfy port.FileOptimiser
var _ port.FileOptimiser = (*Optimiser)(nil)

func NewOptimiser(webpEnc WebPEncoder, pdfOpt PDFOptimizer) *Optimiser {
	log.Println("initialising optimiser...")
	return &Optimiser{
		webpEnc: webpEnc,
		pdfOpt:  pdfOpt,
	}
}

// Compress takes an input stream (`r`) and its MIME type, then returns a byte
// slice containing the optimised version. Behavior:
//   - Images (JPEG, PNG, WebP): always convert to lossy WebP @ quality=80.
//   - PDFs (application/pdf): run pdfcpu.Optimize to strip unused objects.
//   - Everything else: read as-is and return raw bytes.
func (o *Optimiser) Compress(mimeType string, r io.Reader) ([]byte, error) {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
		img, _, err := o.webpEnc.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("optimiser: failed to decode image: %w", err)
		}

		buf := &bytes.Buffer{}
		if err := o.webpEnc.Encode(img, 80, buf); err != nil {
			return nil, fmt.Errorf("optimiser: failed to encode WebP: %w", err)
		}
		return buf.Bytes(), nil

	case "application/pdf":
		// pdfcpu works on files, so round-trip through temp paths
		inFile, err := os.CreateTemp("", "pdf_in_*.pdf")
		if err != nil {
			return nil, fmt.Errorf("optimiser: could not create temp input PDF: %w", err)
		}
		defer func(name string) {
			if err := os.Remove(name); err != nil {
				log.Printf("failed to remove in temp file %q: %v", name, err)
			}
		}(inFile.Name())

		if _, err := io.Copy(inFile, r); err != nil {
			_ = inFile.Close()
			return nil, fmt.Errorf("optimiser: failed to write temp input PDF: %w", err)
		}
		_ = inFile.Close()

		outFile, err := os.CreateTemp("", "pdf_out_*.pdf")
		if err != nil {
			return nil, fmt.Errorf("optimiser: could not create temp output PDF: %w", err)
		}
		_ = outFile.Close()
		defer func(name string) {
			if err := os.Remove(name); err != nil {
				log.Printf("failed to remove out temp file %q: %v", name, err)
			}
		}(outFile.Name())

		if err := o.pdfOpt.OptimizeFile(inFile.Name(), outFile.Name()); err != nil {
			return nil, fmt.Errorf("optimiser: pdfcpu optimization failed: %w", err)
		}

		data, err := os.ReadFile(outFile.Name())
		if err != nil {
			return nil, fmt.Errorf("optimiser: failed to read optimized PDF: %w", err)
		}
		return data, nil

	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("optimiser: failed to read data: %w", err)
		}
		return data, nil
	}
}
