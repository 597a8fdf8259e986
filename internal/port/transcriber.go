package port

import "context"

// Transcriber converts an audio artifact into a plain-text transcript.
//
// The signature carries no error on purpose: any fault (quota, network,
// malformed response) degrades to an empty transcript so that downstream
// synthesis can short-circuit cleanly instead of aborting the pipeline.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) string
}
