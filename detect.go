package cheese

import (
	"fmt"
	"strings"
)

// Detect picks the conversion direction from a file name.
// Matching is case-sensitive: "photo.JPG" is unsupported.
func Detect(name string) Direction {
	switch {
	case strings.HasSuffix(name, extJPEG):
		return ToCheese
	case strings.HasSuffix(name, extCheese):
		return ToJPEG
	default:
		return Unsupported
	}
}

// OutputName swaps the trailing extension: .jpg becomes .cheese and vice versa.
func OutputName(name string) (string, error) {
	switch Detect(name) {
	case ToCheese:
		return strings.TrimSuffix(name, extJPEG) + extCheese, nil
	case ToJPEG:
		return strings.TrimSuffix(name, extCheese) + extJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q, expected %s or %s", ErrUnsupportedFileType, name, extJPEG, extCheese)
	}
}
