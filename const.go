package cheese

import "time"

const (
	magic = "CHEESE"

	magicSize  = len(magic)
	headerSize = magicSize + 4 + 4

	rgbChannels  = 3
	rgbaChannels = 4

	opaque = 0xFF
)

const (
	extJPEG   = ".jpg"
	extCheese = ".cheese"
)

// Defaults applied by Convert when an option is left unset.
const (
	DefaultQuality   = 92
	DefaultTimeout   = 30 * time.Second
	DefaultMaxPixels = 400_000_000
)
