package cheese

import (
	"image"

	"github.com/nfnt/resize"
)

// thumbnail fits img into a maxSize square keeping the aspect ratio.
// Images already small enough are returned as is.
func thumbnail(img *image.RGBA, maxSize uint) image.Image {
	if img == nil || img.Rect.Empty() {
		return nil
	}

	return resize.Thumbnail(maxSize, maxSize, img, resize.Lanczos3)
}
