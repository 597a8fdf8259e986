package port

import "context"

// AudioExtractor demuxes the audio track of a staged video into a standalone
// compressed-audio artifact.
type AudioExtractor interface {
	// ExtractAudio blocks until the transcoding engine reports completion or
	// error. On failure no audio artifact exists.
	ExtractAudio(ctx context.Context, videoPath string) (*StagedFile, error)
	// ProbeDuration returns the duration of the media at path in seconds.
	ProbeDuration(ctx context.Context, path string) (float64, error)
}
