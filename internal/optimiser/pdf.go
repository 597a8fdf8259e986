package optimiser

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type pdfOptimizer struct{}

// compile-time check: pdfOptimizer must satisfy PDFOptimizer
var _ PDFOptimizer = (*pdfOptimizer)(nil)

func NewPDFOptimizer() PDFOptimizer {
	return &pdfOptimizer{}
}

func (o *pdfOptimizer) OptimizeFile(inPath, outPath string) error {
	return api.OptimizeFile(inPath, outPath, nil)
}
