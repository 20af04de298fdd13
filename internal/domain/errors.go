package domain

import "errors"

var (
	ErrMissingAPIKey       = errors.New("vision API key is required")
	ErrMissingFile         = errors.New("no file provided")
	ErrEmptyFileName       = errors.New("empty file name")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInvalidImage        = errors.New("invalid or unreadable image")
)
