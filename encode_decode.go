package cheese

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"

	"github.com/vearutop/cheese/internal/jpegx"
)

// JPEGBridge decodes and encodes JPEG with the standard image/jpeg codec.
type JPEGBridge struct {
	// Quality is the encode quality, clamped to 1-100, 0 means default.
	Quality int
	// MaxPixels rejects frames larger than this before decoding, 0 disables the check.
	MaxPixels int
}

// Decode returns the image as RGBA pixels.
func (b *JPEGBridge) Decode(ctx context.Context, data []byte) (*PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame, err := jpegx.ReadFrame(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	if err := checkPixels(uint64(frame.Width), uint64(frame.Height), b.MaxPixels); err != nil {
		return nil, err
	}

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}

	rgba := toRGBA(img)

	return &PixelBuffer{
		Width:    rgba.Rect.Dx(),
		Height:   rgba.Rect.Dy(),
		Channels: rgbaChannels,
		Pix:      rgba.Pix,
	}, nil
}

// Encode compresses RGBA pixels, alpha is ignored by JPEG.
func (b *JPEGBridge) Encode(ctx context.Context, p *PixelBuffer) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.Channels != rgbaChannels {
		return nil, fmt.Errorf("%w: expected %d channels, got %d", ErrImageEncode, rgbaChannels, p.Channels)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageEncode, err)
	}
	if p.Width == 0 || p.Height == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d image", ErrImageEncode, p.Width, p.Height)
	}

	var buf bytes.Buffer

	buf.Grow(len(p.Pix) / 8)

	if err := jpeg.Encode(&buf, p.RGBA(), &jpeg.Options{Quality: b.quality()}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageEncode, err)
	}

	return buf.Bytes(), nil
}

func (b *JPEGBridge) quality() int {
	q := b.Quality
	if q == 0 {
		q = DefaultQuality
	}
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}

	return q
}
