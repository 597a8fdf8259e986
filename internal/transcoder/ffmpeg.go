package transcoder

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

const defaultTimeout = 10 * time.Minute

// FFmpeg extracts audio tracks by shelling out to the ffmpeg and ffprobe
// binaries. The engine location comes from configuration, not PATH lookups at
// call sites.
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	staging     port.Staging
	timeout     time.Duration
}

// compile-time check: *FFmpeg must satisfy port.AudioExtractor
var _ port.AudioExtractor = (*FFmpeg)(nil)

func NewFFmpeg(ffmpegPath, ffprobePath string, staging port.Staging) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		staging:     staging,
		timeout:     defaultTimeout,
	}
}

// ExtractAudio demuxes the audio track of the video at videoPath into an MP3
// staged file. It blocks until ffmpeg exits; a non-zero exit leaves no audio
// artifact behind.
func (f *FFmpeg) ExtractAudio(ctx context.Context, videoPath string) (*port.StagedFile, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	out := f.staging.Allocate(port.StagedAudio, ".mp3")

	args := []string{
		"-y",
		"-i", videoPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-f", "mp3",
		out.Path,
	}

	log.Printf("extracting audio from %q...", videoPath)
	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		// ffmpeg may leave a partial output file on failure
		f.staging.Release(out)
		return nil, fmt.Errorf("ffmpeg failed: %w; output: %s", err, tail(output))
	}

	if _, err := os.Stat(out.Path); err != nil {
		return nil, fmt.Errorf("ffmpeg exited cleanly but produced no audio at %q", out.Path)
	}
	return out, nil
}

// ProbeDuration returns the media duration in seconds via ffprobe.
func (f *FFmpeg) ProbeDuration(ctx context.Context, path string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	cmd := exec.CommandContext(ctx, f.ffprobePath, args...)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	dur, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe returned unparseable duration %q: %w", output, err)
	}
	return dur, nil
}

// tail keeps error output readable when ffmpeg dumps its whole banner.
func tail(output []byte) string {
	const max = 500
	s := strings.TrimSpace(string(output))
	if len(s) <= max {
		return s
	}
	return "…" + s[len(s)-max:]
}
