// Package jpegx inspects JPEG byte streams without decoding entropy-coded data.
package jpegx

import (
	"encoding/binary"
	"errors"
)

// Frame describes the image declared by a JPEG Start Of Frame segment.
type Frame struct {
	Width       int
	Height      int
	Components  int
	Progressive bool
}

// ReadFrame walks marker segments up to the first SOF and returns its dimensions.
// It fails on data that does not start with SOI, has malformed segment lengths,
// or reaches a scan before declaring a frame.
func ReadFrame(data []byte) (Frame, error) {
	if len(data) < 4 || data[0] != markerStart || data[1] != soiMarker {
		return Frame{}, errors.New("missing SOI marker")
	}

	pos := 2
	for pos < len(data) {
		if data[pos] != markerStart {
			pos++
			continue
		}
		for pos < len(data) && data[pos] == markerStart {
			pos++
		}
		if pos >= len(data) {
			break
		}
		marker := data[pos]
		pos++

		switch {
		case marker == sosMarker, marker == eoiMarker:
			return Frame{}, errors.New("no frame header before scan")
		case marker == temMarker, marker >= rst0Marker && marker <= rst7Marker:
			continue
		}

		if pos+2 > len(data) {
			return Frame{}, errors.New("truncated marker")
		}
		segLen := int(binary.BigEndian.Uint16(data[pos:]))
		if segLen < 2 || pos+segLen > len(data) {
			return Frame{}, errors.New("invalid segment length")
		}

		if marker == sof0Marker || marker == sof1Marker || marker == sof2Marker {
			return parseSOF(data[pos+2:pos+segLen], marker == sof2Marker)
		}

		pos += segLen
	}

	return Frame{}, errors.New("frame header not found")
}

func parseSOF(seg []byte, progressive bool) (Frame, error) {
	if len(seg) < sofLen {
		return Frame{}, errors.New("truncated SOF")
	}

	f := Frame{
		Height:      int(binary.BigEndian.Uint16(seg[1:])),
		Width:       int(binary.BigEndian.Uint16(seg[3:])),
		Components:  int(seg[5]),
		Progressive: progressive,
	}
	if f.Components != 1 && f.Components != 3 && f.Components != 4 {
		return Frame{}, errors.New("unsupported component count")
	}

	return f, nil
}
