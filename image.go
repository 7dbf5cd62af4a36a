package cheese

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("cheese", magic, Decode, DecodeConfig)
}

// DecodeConfig reads the container header only.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	if _, err := h.PayloadLen(); err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

// Decode reads a CHEESE container as an opaque *image.RGBA.
// Declared sizes above DefaultMaxPixels are rejected, the payload buffer grows with the
// bytes actually read rather than with the declared size.
func Decode(r io.Reader) (image.Image, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	n, err := h.PayloadLen()
	if err != nil {
		return nil, err
	}
	if err := checkPixels(uint64(h.Width), uint64(h.Height), DefaultMaxPixels); err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(io.LimitReader(r, int64(n)+1))
	if err != nil {
		return nil, err
	}
	if len(payload) != n {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrPayloadSizeMismatch, h.Width, h.Height, n, len(payload))
	}

	rgba, err := AddOpaqueAlpha(&PixelBuffer{
		Width:    int(h.Width),
		Height:   int(h.Height),
		Channels: rgbChannels,
		Pix:      payload,
	})
	if err != nil {
		return nil, err
	}

	return rgba.RGBA(), nil
}

// Encode writes m as a CHEESE container, alpha is discarded.
// Color is taken non-premultiplied, so translucent pixels keep their RGB values.
func Encode(w io.Writer, m image.Image) error {
	nrgba := toNRGBA(m)

	data, err := EncodeContainer(&PixelBuffer{
		Width:    nrgba.Rect.Dx(),
		Height:   nrgba.Rect.Dy(),
		Channels: rgbaChannels,
		Pix:      nrgba.Pix,
	})
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func readHeader(r io.Reader) (Header, error) {
	var buf [headerSize]byte

	got, err := io.ReadFull(r, buf[:])
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return Header{}, fmt.Errorf("%w: need %d bytes, got %d", ErrTruncatedHeader, headerSize, got)
		}

		return Header{}, err
	}

	return ParseHeader(buf[:])
}
