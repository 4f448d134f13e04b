package errors

import "errors"

var (
	ErrPayloadNotFound   = errors.New("messages.jsonp is not found")
	ErrMalformedPayload  = errors.New("messages payload is malformed")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrInvalidFeedLimit  = errors.New("feed_limit must be positive")
	ErrArchiveDirMissing = errors.New("archive directory does not exist")
)
