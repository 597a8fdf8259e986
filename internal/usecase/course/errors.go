package course

import "errors"

var (
	ErrValidation     = errors.New("validation failed")
	ErrDuplicateTitle = errors.New("a course with this title already exists")
)
