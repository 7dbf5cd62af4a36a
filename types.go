package cheese

import (
	"fmt"
	"image"
	"time"

	"github.com/sirupsen/logrus"
)

// Direction identifies which way a file is converted.
type Direction int

const (
	Unsupported Direction = iota
	ToCheese
	ToJPEG
)

func (d Direction) String() string {
	switch d {
	case ToCheese:
		return "jpg->cheese"
	case ToJPEG:
		return "cheese->jpg"
	default:
		return "unsupported"
	}
}

// PixelBuffer is a row-major interleaved pixel grid without padding.
// Channels is 3 (R, G, B) or 4 (R, G, B, A).
type PixelBuffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte // len = Width * Height * Channels
}

// Validate checks that Pix holds exactly Width*Height*Channels bytes.
func (p *PixelBuffer) Validate() error {
	if p.Channels != rgbChannels && p.Channels != rgbaChannels {
		return fmt.Errorf("unsupported channel count %d", p.Channels)
	}
	if p.Width < 0 || p.Height < 0 {
		return fmt.Errorf("negative dimensions %dx%d", p.Width, p.Height)
	}
	expected, err := pixelLen(uint64(p.Width), uint64(p.Height), p.Channels)
	if err != nil {
		return err
	}
	if len(p.Pix) != expected {
		return fmt.Errorf("%w: expected %d bytes for %dx%dx%d, got %d",
			ErrPayloadSizeMismatch, expected, p.Width, p.Height, p.Channels, len(p.Pix))
	}
	return nil
}

// RGBA returns the buffer as *image.RGBA, sharing Pix. Channels must be 4.
func (p *PixelBuffer) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.Pix,
		Stride: p.Width * rgbaChannels,
		Rect:   image.Rect(0, 0, p.Width, p.Height),
	}
}

// Options controls a conversion.
type Options struct {
	// Quality is the JPEG quality (1-100) used when producing .jpg output.
	Quality int
	// Timeout bounds each Bridge call, 0 disables the guard.
	Timeout time.Duration
	// MaxPixels limits width*height of declared or decoded images.
	MaxPixels int
	// PreviewMaxSize enables Result.Preview, a thumbnail fitting in a square of this size.
	PreviewMaxSize uint
	// Bridge performs JPEG decode/encode, defaults to JPEGBridge.
	Bridge Bridge
	Logger logrus.FieldLogger
}

func newOptions(opts []func(o *Options)) Options {
	opt := Options{
		Quality:   DefaultQuality,
		Timeout:   DefaultTimeout,
		MaxPixels: DefaultMaxPixels,
	}

	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	if opt.Bridge == nil {
		opt.Bridge = &JPEGBridge{Quality: opt.Quality, MaxPixels: opt.MaxPixels}
	}
	if opt.Logger == nil {
		opt.Logger = discardLogger()
	}

	return opt
}

// Result is the outcome of a single conversion.
type Result struct {
	Direction Direction
	Width     int
	Height    int
	// Image is the displayable form: the decoded JPEG for ToCheese,
	// the reconstructed opaque pixels for ToJPEG.
	Image *image.RGBA
	// Preview is a downscaled Image, set when Options.PreviewMaxSize > 0.
	Preview image.Image
	// Data is the output file content.
	Data       []byte
	OutputName string
}
