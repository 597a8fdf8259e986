package storage

import (
	"fmt"
	"strings"

	"github.com/elearnhq/lessons-ms-go/internal/model"
)

// Fixed target dimensions for the three playback variants.
const (
	lowWidth, lowHeight       = 426, 240
	mediumWidth, mediumHeight = 640, 360
	highWidth, highHeight     = 1280, 720
)

// DownloadURL derives the forced-download variant of a canonical playback
// URL by appending a content-disposition hint. Pure function, no separately
// stored binary.
func DownloadURL(canonicalURL string) string {
	return withParam(canonicalURL, "response-content-disposition=attachment")
}

// DeriveResolutions derives the three resolution-variant playback URLs from
// one canonical URL. The variants are transform parameters against the same
// stored asset, not independently encoded files; calling this twice with the
// same input yields byte-identical output.
func DeriveResolutions(canonicalURL string) model.Resolutions {
	return model.Resolutions{
		Low:    withParam(canonicalURL, fmt.Sprintf("tr=w-%d,h-%d", lowWidth, lowHeight)),
		Medium: withParam(canonicalURL, fmt.Sprintf("tr=w-%d,h-%d", mediumWidth, mediumHeight)),
		High:   withParam(canonicalURL, fmt.Sprintf("tr=w-%d,h-%d", highWidth, highHeight)),
	}
}

func withParam(url, param string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + param
}
