package imageio

import "github.com/pkg/errors"

// ErrUnsupportedFormat reports a file extension with no known encoder.
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

// ReadError reports an image that could not be opened or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "read image " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// Cause returns the underlying error for github.com/pkg/errors.Cause.
func (e *ReadError) Cause() error { return e.Err }

// WriteError reports an image that could not be encoded or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "write image " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }

// Cause returns the underlying error for github.com/pkg/errors.Cause.
func (e *WriteError) Cause() error { return e.Err }
