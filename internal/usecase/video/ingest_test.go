package video

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/elearnhq/lessons-ms-go/internal/mock"
	"github.com/elearnhq/lessons-ms-go/internal/model"
	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

type ingestDeps struct {
	repo        *mock.VideoRepo
	staging     *mock.Staging
	strg        *mock.Storage
	extractor   *mock.AudioExtractor
	transcriber *mock.Transcriber
	synth       *mock.Synthesiser
	optimiser   *mock.FileOptimiser
	pages       *mock.PageCounter
	dispatcher  *mock.Dispatcher
}

func newIngester(d *ingestDeps) port.VideoIngester {
	return NewVideoIngester(
		uuid.NewUUID,
		d.repo, d.staging, d.strg, d.extractor, d.transcriber, d.synth, d.optimiser, d.pages, d.dispatcher,
	)
}

func defaultDeps() *ingestDeps {
	return &ingestDeps{
		repo:        &mock.VideoRepo{},
		staging:     &mock.Staging{},
		strg:        &mock.Storage{},
		extractor:   &mock.AudioExtractor{DurationOut: 93.5},
		transcriber: &mock.Transcriber{TranscriptOut: "Hello world"},
		synth: &mock.Synthesiser{
			DescriptionOut: "A short intro lesson.",
			QuizOut:        fiveQuestions(),
		},
		optimiser:  &mock.FileOptimiser{},
		pages:      &mock.PageCounter{PagesOut: 3},
		dispatcher: &mock.Dispatcher{},
	}
}

func fiveQuestions() model.Quiz {
	quiz := make(model.Quiz, 0, 5)
	for i := 0; i < 5; i++ {
		quiz = append(quiz, model.QuizQuestion{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
		})
	}
	return quiz
}

func validInput() port.IngestVideoInput {
	return port.IngestVideoInput{
		CourseID: uuid.NewUUID(),
		Title:    "Intro",
		Position: 1,
		Video:    &port.UploadedFile{Name: "lecture.mp4", Data: []byte("video-bytes")},
	}
}

func TestIngestVideo_Success(t *testing.T) {
	d := defaultDeps()
	svc := newIngester(d)

	in := validInput()
	in.Attachments = []port.UploadedFile{
		{Name: "notes.pdf", Data: []byte("%PDF-fake")},
		{Name: "diagram.png", Data: []byte("png-bytes")},
	}

	record, err := svc.IngestVideo(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Title != "Intro" {
		t.Errorf("Title = %q; want %q", record.Title, "Intro")
	}
	if record.ObjectKey != record.ID.String()+".mp4" {
		t.Errorf("ObjectKey = %q; want %q", record.ObjectKey, record.ID.String()+".mp4")
	}
	wantURL := "https://cdn.example.com/videos/" + record.ObjectKey
	if record.URL != wantURL {
		t.Errorf("URL = %q; want %q", record.URL, wantURL)
	}
	if !strings.Contains(record.DownloadURL, "response-content-disposition=attachment") {
		t.Errorf("DownloadURL = %q; want forced-download variant", record.DownloadURL)
	}
	if record.Resolutions.Low == "" || record.Resolutions.Medium == "" || record.Resolutions.High == "" {
		t.Errorf("Resolutions incomplete: %+v", record.Resolutions)
	}
	if record.Resolutions.Low == record.Resolutions.High {
		t.Error("resolution variants should differ")
	}
	if record.DurationSec != 93.5 {
		t.Errorf("DurationSec = %v; want 93.5", record.DurationSec)
	}
	if len(record.Quiz) != 5 {
		t.Errorf("quiz length = %d; want 5", len(record.Quiz))
	}
	if len(record.Attachments) != 2 {
		t.Fatalf("attachments length = %d; want 2", len(record.Attachments))
	}
	if record.Attachments[0].FileName != "notes.pdf" || record.Attachments[1].FileName != "diagram.png" {
		t.Errorf("attachment order not preserved: %+v", record.Attachments)
	}
	if record.Attachments[0].PageCount != 3 {
		t.Errorf("PDF attachment PageCount = %d; want 3", record.Attachments[0].PageCount)
	}
	if record.Attachments[1].PageCount != 0 {
		t.Errorf("non-PDF attachment PageCount = %d; want 0", record.Attachments[1].PageCount)
	}
	if !d.optimiser.CompressCalled {
		t.Error("PDF attachment should be optimised before upload")
	}

	if d.repo.Created == nil {
		t.Fatal("record should be persisted")
	}

	// saved: video, description, 2 attachments
	if len(d.strg.SavedKeys) != 4 {
		t.Errorf("SaveFile calls = %d; want 4", len(d.strg.SavedKeys))
	}
	if d.strg.SavedBuckets[0] != BucketVideos || d.strg.SavedBuckets[1] != BucketDescriptions {
		t.Errorf("bucket order = %v; want video then description", d.strg.SavedBuckets[:2])
	}
	if string(d.strg.SavedData[1]) != "A short intro lesson." {
		t.Errorf("description payload = %q", d.strg.SavedData[1])
	}

	// staged: video, description, 2 attachments, plus the extracted audio;
	// all must be released by the time the call returns
	released := d.staging.ReleasedPaths()
	if len(released) < 5 {
		t.Errorf("released %d staged files (%v); want all 5", len(released), released)
	}
	if d.dispatcher.SweepCalled {
		t.Error("sweep should not be enqueued on success")
	}
}

func TestIngestVideo_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*port.IngestVideoInput)
	}{
		{"missing video", func(in *port.IngestVideoInput) { in.Video = nil }},
		{"empty video", func(in *port.IngestVideoInput) { in.Video = &port.UploadedFile{Name: "a.mp4"} }},
		{"missing course ID", func(in *port.IngestVideoInput) { in.CourseID = uuid.UUID{} }},
		{"unsupported format", func(in *port.IngestVideoInput) { in.Video.Name = "lecture.avi" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := defaultDeps()
			svc := newIngester(d)

			in := validInput()
			tc.mutate(&in)

			_, err := svc.IngestVideo(context.Background(), in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("error = %v; want ErrValidation", err)
			}
			if len(d.staging.StagedData) != 0 {
				t.Error("nothing should be staged on validation failure")
			}
			if d.strg.SaveCalled || d.extractor.ExtractCalled || d.transcriber.Called {
				t.Error("no external calls should be made on validation failure")
			}
			if d.repo.Created != nil {
				t.Error("no record should be persisted")
			}
		})
	}
}

func TestIngestVideo_VideoUploadFails(t *testing.T) {
	d := defaultDeps()
	d.strg.SaveErr = errors.New("minio unreachable")
	svc := newIngester(d)

	_, err := svc.IngestVideo(context.Background(), validInput())
	if !errors.Is(err, ErrStorageUpload) {
		t.Fatalf("error = %v; want ErrStorageUpload", err)
	}
	if d.extractor.ExtractCalled {
		t.Error("audio extraction should not run after upload failure")
	}
	if len(d.staging.ReleasedPaths()) != 1 {
		t.Errorf("released = %v; want just the staged video", d.staging.ReleasedPaths())
	}
	if d.repo.Created != nil {
		t.Error("no record should be persisted")
	}
	if !d.dispatcher.SweepCalled {
		t.Error("sweep should be enqueued on failure")
	}
}

func TestIngestVideo_TranscodeFails(t *testing.T) {
	d := defaultDeps()
	d.extractor.ExtractErr = errors.New("ffmpeg exited with code 1")
	svc := newIngester(d)

	_, err := svc.IngestVideo(context.Background(), validInput())
	if !errors.Is(err, ErrTranscode) {
		t.Fatalf("error = %v; want ErrTranscode", err)
	}
	if d.transcriber.Called {
		t.Error("transcription should not run after transcode failure")
	}
	if d.repo.Created != nil {
		t.Error("no record should be persisted")
	}
	if len(d.staging.ReleasedPaths()) != 1 {
		t.Errorf("released = %v; want just the staged video", d.staging.ReleasedPaths())
	}
}

func TestIngestVideo_SoftDegrade(t *testing.T) {
	d := defaultDeps()
	d.transcriber.TranscriptOut = ""
	d.synth.DescriptionOut = "No content available to generate description."
	d.synth.QuizOut = nil
	svc := newIngester(d)

	record, err := svc.IngestVideo(context.Background(), validInput())
	if err != nil {
		t.Fatalf("soft-degrade run should still succeed, got %v", err)
	}
	if len(record.Quiz) != 0 {
		t.Errorf("quiz = %+v; want empty", record.Quiz)
	}
	if string(d.strg.SavedData[1]) != "No content available to generate description." {
		t.Errorf("description payload = %q; want sentinel", d.strg.SavedData[1])
	}
	if d.repo.Created == nil {
		t.Error("record should be persisted despite degraded content")
	}
}

func TestIngestVideo_SecondAttachmentFails(t *testing.T) {
	d := defaultDeps()
	// SaveFile order: video, description, attachment 1, attachment 2
	d.strg.SaveErr = errors.New("bucket quota exceeded")
	d.strg.SaveErrOnCall = 4
	svc := newIngester(d)

	in := validInput()
	in.Attachments = []port.UploadedFile{
		{Name: "a1.pdf", Data: []byte("one")},
		{Name: "a2.pdf", Data: []byte("two")},
		{Name: "a3.pdf", Data: []byte("three")},
	}

	_, err := svc.IngestVideo(context.Background(), in)
	if !errors.Is(err, ErrStorageUpload) {
		t.Fatalf("error = %v; want ErrStorageUpload", err)
	}

	// attachment 3 is never uploaded, nor staged
	if len(d.strg.SavedKeys) != 4 {
		t.Errorf("SaveFile calls = %d; want 4 (video, description, attachments 1-2)", len(d.strg.SavedKeys))
	}
	if got := len(d.staging.StagedData); got != 4 {
		t.Errorf("stage calls = %d; want 4 (video, description, attachments 1-2)", got)
	}

	// attachment 1's remote copy is not rolled back
	if d.strg.RemoveCalled {
		t.Error("already-uploaded attachments must not be rolled back")
	}

	// everything staged, including attachment 2's local copy, is cleaned up
	if got := len(d.staging.ReleasedPaths()); got < 5 {
		t.Errorf("released %d staged files; want all of them plus audio", got)
	}
	if d.repo.Created != nil {
		t.Error("no record should be persisted")
	}
	if !d.dispatcher.SweepCalled {
		t.Error("sweep should be enqueued on failure")
	}
}

func TestIngestVideo_PersistenceFails(t *testing.T) {
	d := defaultDeps()
	d.repo.CreateErr = errors.New("deadlock found")
	svc := newIngester(d)

	_, err := svc.IngestVideo(context.Background(), validInput())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("error = %v; want ErrPersistence", err)
	}

	// uploaded remote assets are not rolled back, local files are cleaned
	if d.strg.RemoveCalled {
		t.Error("remote assets must not be rolled back")
	}
	if got := len(d.staging.ReleasedPaths()); got < 3 {
		t.Errorf("released %d staged files; want video, audio and description", got)
	}
}

func TestIngestVideo_ProbeFailureIsSoft(t *testing.T) {
	d := defaultDeps()
	d.extractor.ProbeErr = errors.New("ffprobe timed out")
	svc := newIngester(d)

	record, err := svc.IngestVideo(context.Background(), validInput())
	if err != nil {
		t.Fatalf("probe failure should not fail the pipeline, got %v", err)
	}
	if record.DurationSec != 0 {
		t.Errorf("DurationSec = %v; want 0", record.DurationSec)
	}
}

func TestIngestVideo_PositionDefaultsToOne(t *testing.T) {
	d := defaultDeps()
	svc := newIngester(d)

	in := validInput()
	in.Position = 0

	record, err := svc.IngestVideo(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Position != 1 {
		t.Errorf("Position = %d; want 1", record.Position)
	}
}
