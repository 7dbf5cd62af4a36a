package cheese

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

// Header is the fixed-size prefix of a CHEESE container.
type Header struct {
	Width  uint32
	Height uint32
}

// PayloadOffset is the position of the first pixel byte in a container.
const PayloadOffset = headerSize

// MarshalBinary renders the 14-byte header: magic, big-endian width, big-endian height.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, headerSize)
	h.put(buf)

	return buf, nil
}

func (h Header) put(buf []byte) {
	copy(buf, magic)
	binary.BigEndian.PutUint32(buf[magicSize:], h.Width)
	binary.BigEndian.PutUint32(buf[magicSize+4:], h.Height)
}

// PayloadLen returns the RGB payload length for the declared dimensions.
func (h Header) PayloadLen() (int, error) {
	return PayloadLen(h.Width, h.Height)
}

// ParseHeader reads and checks the container header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, got %d", ErrTruncatedHeader, headerSize, len(data))
	}
	if !bytes.Equal(data[:magicSize], []byte(magic)) {
		return Header{}, fmt.Errorf("%w: %q", ErrInvalidMagic, data[:magicSize])
	}

	return Header{
		Width:  binary.BigEndian.Uint32(data[magicSize:]),
		Height: binary.BigEndian.Uint32(data[magicSize+4:]),
	}, nil
}

// PayloadLen returns width*height*3, failing instead of wrapping on overflow.
func PayloadLen(width, height uint32) (int, error) {
	return pixelLen(uint64(width), uint64(height), rgbChannels)
}

func pixelLen(width, height uint64, channels int) (int, error) {
	hi, px := bits.Mul64(width, height)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %dx%d pixels", ErrDimensionOverflow, width, height)
	}
	hi, n := bits.Mul64(px, uint64(channels))
	if hi != 0 || n > math.MaxInt {
		return 0, fmt.Errorf("%w: %dx%dx%d bytes", ErrDimensionOverflow, width, height, channels)
	}

	return int(n), nil
}

// checkPixels enforces the maxPixels limit, maxPixels <= 0 means no limit.
func checkPixels(width, height uint64, maxPixels int) error {
	if maxPixels <= 0 {
		return nil
	}
	hi, px := bits.Mul64(width, height)
	if hi != 0 || px > uint64(maxPixels) {
		return fmt.Errorf("%w: %dx%d exceeds limit of %d pixels", ErrDimensionOverflow, width, height, maxPixels)
	}

	return nil
}

// EncodeContainer serializes pixels as a CHEESE container.
// A 4-channel buffer has its alpha dropped, a 3-channel buffer is stored as is.
func EncodeContainer(p *PixelBuffer) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if uint64(p.Width) > math.MaxUint32 || uint64(p.Height) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d does not fit header", ErrDimensionOverflow, p.Width, p.Height)
	}

	payloadLen, err := PayloadLen(uint32(p.Width), uint32(p.Height))
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize+payloadLen)
	Header{Width: uint32(p.Width), Height: uint32(p.Height)}.put(out)

	if p.Channels == rgbChannels {
		copy(out[headerSize:], p.Pix)
	} else {
		dropAlpha(out[headerSize:], p.Pix)
	}

	return out, nil
}

// DecodeContainer parses a CHEESE container into a 3-channel buffer.
// The payload must match the declared dimensions exactly.
// The returned Pix aliases data.
func DecodeContainer(data []byte, maxPixels int) (*PixelBuffer, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	expected, err := h.PayloadLen()
	if err != nil {
		return nil, err
	}
	if err := checkPixels(uint64(h.Width), uint64(h.Height), maxPixels); err != nil {
		return nil, err
	}

	payload := data[headerSize:]
	if len(payload) != expected {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrPayloadSizeMismatch, h.Width, h.Height, expected, len(payload))
	}

	return &PixelBuffer{
		Width:    int(h.Width),
		Height:   int(h.Height),
		Channels: rgbChannels,
		Pix:      payload,
	}, nil
}
