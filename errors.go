package cheese

import "errors"

// Conversion failures, match with errors.Is.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrImageDecode         = errors.New("image decode failed")
	ErrImageEncode         = errors.New("image encode failed")
	ErrInvalidMagic        = errors.New("invalid cheese container magic")
	ErrTruncatedHeader     = errors.New("truncated cheese header")
	ErrPayloadSizeMismatch = errors.New("payload size mismatch")
	ErrDimensionOverflow   = errors.New("dimension overflow")
)
