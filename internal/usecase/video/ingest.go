package video

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/storage"
)

type ingesterSrv struct {
	genID       port.UUIDGen
	repo        port.VideoRepository
	staging     port.Staging
	strg        port.Storage
	extractor   port.AudioExtractor
	transcriber port.Transcriber
	synth       port.ContentSynthesiser
	optimiser   port.FileOptimiser
	pages       port.PDFPageCounter
	dispatcher  port.TaskDispatcher
}

// compile-time check: *ingesterSrv must satisfy port.VideoIngester
var _ port.VideoIngester = (*ingesterSrv)(nil)

// NewVideoIngester creates the pipeline controller that turns one uploaded
// lecture video into a persisted lesson record.
func NewVideoIngester(
	genID port.UUIDGen,
	repo port.VideoRepository,
	staging port.Staging,
	strg port.Storage,
	extractor port.AudioExtractor,
	transcriber port.Transcriber,
	synth port.ContentSynthesiser,
	optimiser port.FileOptimiser,
	pages port.PDFPageCounter,
	dispatcher port.TaskDispatcher,
) port.VideoIngester {
	return &ingesterSrv{genID, repo, staging, strg, extractor, transcriber, synth, optimiser, pages, dispatcher}
}

// IngestVideo runs the full pipeline: stage the upload locally, push it to
// object storage, extract the audio track, transcribe it, derive a
// description and a quiz, upload the description and every attachment, then
// persist the assembled record. Transcription and synthesis degrade to safe
// defaults; every other step is a hard failure. All locally staged files are
// removed before returning, whatever the outcome.
func (s *ingesterSrv) IngestVideo(ctx context.Context, in port.IngestVideoInput) (*model.Video, error) {
	if in.Video == nil || len(in.Video.Data) == 0 {
		return nil, fmt.Errorf("%w: a video file is required", ErrValidation)
	}
	if in.CourseID.IsNil() {
		return nil, fmt.Errorf("%w: a course ID is required", ErrValidation)
	}
	ext := path.Ext(in.Video.Name)
	if !IsVideoExtensionAllowed(ext) {
		return nil, fmt.Errorf("%w: unsupported video format %q", ErrValidation, ext)
	}
	if len(in.Video.Data) > MaxVideoSize {
		return nil, fmt.Errorf("%w: video too large: %d bytes (max %d)", ErrValidation, len(in.Video.Data), MaxVideoSize)
	}
	for _, att := range in.Attachments {
		if len(att.Data) > MaxAttachmentSize {
			return nil, fmt.Errorf("%w: attachment %q too large: %d bytes (max %d)", ErrValidation, att.Name, len(att.Data), MaxAttachmentSize)
		}
	}
	position := in.Position
	if position < 1 {
		position = 1
	}

	videoID := s.genID()
	log.Printf("ingesting video %q for course #%s...", in.Video.Name, in.CourseID)

	// Every staged file still on disk when the pipeline ends, successfully
	// or not, is removed here. Files already released in the happy path are
	// a no-op for Release.
	var staged []*port.StagedFile
	var finalErr error
	defer func() {
		for _, f := range staged {
			s.staging.Release(f)
		}
		if finalErr != nil {
			if err := s.dispatcher.EnqueueSweepStaging(context.Background()); err != nil {
				log.Printf("could not enqueue staging sweep: %v", err)
			}
		}
	}()

	videoFile, err := s.staging.Stage(in.Video.Data, port.StagedVideo, ext)
	if err != nil {
		finalErr = fmt.Errorf("could not stage video locally: %w", err)
		return nil, finalErr
	}
	staged = append(staged, videoFile)

	objectKey := fmt.Sprintf("%s%s", videoID, ext)
	contentType := MimeTypeForExtension(ext)
	if err := s.strg.SaveFile(ctx, BucketVideos, objectKey, bytes.NewReader(in.Video.Data), int64(len(in.Video.Data)), map[string]string{"Content-Type": contentType}); err != nil {
		finalErr = fmt.Errorf("%w: uploading video %q: %v", ErrStorageUpload, objectKey, err)
		return nil, finalErr
	}

	audioFile, err := s.extractor.ExtractAudio(ctx, videoFile.Path)
	if err != nil {
		finalErr = fmt.Errorf("%w: %v", ErrTranscode, err)
		return nil, finalErr
	}
	staged = append(staged, audioFile)

	transcript := s.transcriber.Transcribe(ctx, audioFile.Path)

	// Description and quiz generation only depend on the transcript, and
	// both degrade to safe defaults, so run them concurrently.
	var description string
	var quiz model.Quiz
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		description = s.synth.GenerateDescription(gctx, transcript)
		return nil
	})
	g.Go(func() error {
		quiz = s.synth.GenerateQuiz(gctx, transcript)
		return nil
	})
	_ = g.Wait()

	descFile, err := s.staging.Stage([]byte(description), port.StagedDescription, ".txt")
	if err != nil {
		finalErr = fmt.Errorf("could not stage description locally: %w", err)
		return nil, finalErr
	}
	staged = append(staged, descFile)

	descKey := fmt.Sprintf("%s_description.txt", videoID)
	if err := s.strg.SaveFile(ctx, BucketDescriptions, descKey, bytes.NewReader([]byte(description)), int64(len(description)), map[string]string{"Content-Type": "text/plain"}); err != nil {
		finalErr = fmt.Errorf("%w: uploading description %q: %v", ErrStorageUpload, descKey, err)
		return nil, finalErr
	}
	s.staging.Release(descFile)

	attachments, err := s.uploadAttachments(ctx, in.Attachments, &staged)
	if err != nil {
		finalErr = err
		return nil, finalErr
	}

	duration, err := s.extractor.ProbeDuration(ctx, videoFile.Path)
	if err != nil {
		log.Printf("could not probe duration of %q: %v", videoFile.Path, err)
		duration = 0
	}

	url := s.strg.PublicURL(BucketVideos, objectKey)
	record := &model.Video{
		ID:             videoID,
		CourseID:       in.CourseID,
		Title:          in.Title,
		TextContent:    in.TextContent,
		ObjectKey:      objectKey,
		URL:            url,
		DownloadURL:    storage.DownloadURL(url),
		DescriptionURL: s.strg.PublicURL(BucketDescriptions, descKey),
		SizeMB:         toMB(len(in.Video.Data)),
		DurationSec:    duration,
		Resolutions:    storage.DeriveResolutions(url),
		Attachments:    attachments,
		Quiz:           quiz,
		Position:       position,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		finalErr = fmt.Errorf("%w: %v", ErrPersistence, err)
		return nil, finalErr
	}

	log.Printf("video #%s ingested with %d attachment(s) and %d quiz question(s)", videoID, len(attachments), len(quiz))
	return record, nil
}

// uploadAttachments pushes each attachment to object storage in submission
// order. A local copy is released only once its own upload succeeded; the
// first failure aborts the loop and leaves the rest to the terminal cleanup.
// Already-uploaded remote attachments are not rolled back.
func (s *ingesterSrv) uploadAttachments(ctx context.Context, files []port.UploadedFile, staged *[]*port.StagedFile) (model.Attachments, error) {
	attachments := make(model.Attachments, 0, len(files))
	for i, att := range files {
		ext := path.Ext(att.Name)
		aFile, err := s.staging.Stage(att.Data, port.StagedAttachment, ext)
		if err != nil {
			return nil, fmt.Errorf("could not stage attachment %q locally: %w", att.Name, err)
		}
		*staged = append(*staged, aFile)

		contentType := MimeTypeForExtension(ext)
		data := att.Data
		if contentType == "application/pdf" {
			optimised, err := s.optimiser.Compress(contentType, bytes.NewReader(att.Data))
			if err != nil {
				log.Printf("could not optimise attachment %q, uploading original: %v", att.Name, err)
			} else {
				data = optimised
			}
		}

		key := fmt.Sprintf("%s%s", s.genID(), ext)
		if err := s.strg.SaveFile(ctx, BucketAttachments, key, bytes.NewReader(data), int64(len(data)), map[string]string{"Content-Type": contentType}); err != nil {
			return nil, fmt.Errorf("%w: uploading attachment %d of %d (%q): %v", ErrStorageUpload, i+1, len(files), att.Name, err)
		}
		s.staging.Release(aFile)

		url := s.strg.PublicURL(BucketAttachments, key)
		attachment := model.Attachment{
			FileID:      key,
			FileName:    att.Name,
			FileURL:     url,
			DownloadURL: storage.DownloadURL(url),
			FileType:    contentType,
			SizeMB:      toMB(len(data)),
		}
		if contentType == "application/pdf" {
			if n, err := s.pages.CountPages(data); err != nil {
				log.Printf("could not count pages of attachment %q: %v", att.Name, err)
			} else {
				attachment.PageCount = n
			}
		}
		attachments = append(attachments, attachment)
	}
	return attachments, nil
}

func toMB(sizeBytes int) float64 {
	return float64(sizeBytes) / (1024 * 1024)
}
