package cheese

import "fmt"

// DropAlpha reduces an RGBA buffer to RGB, discarding the alpha of every pixel.
func DropAlpha(p *PixelBuffer) (*PixelBuffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Channels != rgbaChannels {
		return nil, fmt.Errorf("drop alpha: expected %d channels, got %d", rgbaChannels, p.Channels)
	}

	out := &PixelBuffer{
		Width:    p.Width,
		Height:   p.Height,
		Channels: rgbChannels,
		Pix:      make([]byte, len(p.Pix)/rgbaChannels*rgbChannels),
	}
	dropAlpha(out.Pix, p.Pix)

	return out, nil
}

// AddOpaqueAlpha expands an RGB buffer to RGBA with alpha set to 0xFF.
func AddOpaqueAlpha(p *PixelBuffer) (*PixelBuffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Channels != rgbChannels {
		return nil, fmt.Errorf("add alpha: expected %d channels, got %d", rgbChannels, p.Channels)
	}

	out := &PixelBuffer{
		Width:    p.Width,
		Height:   p.Height,
		Channels: rgbaChannels,
		Pix:      make([]byte, len(p.Pix)/rgbChannels*rgbaChannels),
	}
	for i, j := 0, 0; i < len(p.Pix); i, j = i+rgbChannels, j+rgbaChannels {
		out.Pix[j] = p.Pix[i]
		out.Pix[j+1] = p.Pix[i+1]
		out.Pix[j+2] = p.Pix[i+2]
		out.Pix[j+3] = opaque
	}

	return out, nil
}

// dropAlpha writes RGB triplets of src (RGBA) into dst, len(dst) must be len(src)/4*3.
func dropAlpha(dst, src []byte) {
	for i, j := 0, 0; i < len(src); i, j = i+rgbaChannels, j+rgbChannels {
		dst[j] = src[i]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
	}
}
