package video

import "errors"

// Pipeline failure taxonomy. Adapters return their own detailed errors; the
// orchestrator wraps them with one of these sentinels so handlers can map
// them to response codes with errors.Is.
var (
	ErrValidation    = errors.New("validation failed")
	ErrTranscode     = errors.New("audio extraction failed")
	ErrStorageUpload = errors.New("storage upload failed")
	ErrPersistence   = errors.New("record persistence failed")
)
