package models

import "errors"

var (
	// Document errors, user-fixable.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyExtraction   = errors.New("no text content extracted")

	// Session errors.
	ErrSessionNotFound   = errors.New("session not found")
	ErrInterviewComplete = errors.New("interview already complete")

	// Backend integration errors. Never retried automatically.
	ErrBackend             = errors.New("completion backend error")
	ErrBackendTimeout      = errors.New("completion backend timeout")
	ErrMalformedCompletion = errors.New("malformed completion payload")
)
