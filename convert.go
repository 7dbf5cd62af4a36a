package cheese

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Convert transcodes a .jpg file to .cheese or a .cheese file to .jpg, choosing the
// direction from name. The whole input is expected in data.
func Convert(ctx context.Context, data []byte, name string, opts ...func(o *Options)) (*Result, error) {
	outName, err := OutputName(name)
	if err != nil {
		return nil, err
	}

	opt := newOptions(opts)
	dir := Detect(name)
	log := opt.Logger.WithFields(logrus.Fields{
		"name":      name,
		"direction": dir.String(),
		"bytes":     len(data),
	})

	log.Debug("conversion started")

	var res *Result

	if dir == ToCheese {
		res, err = toCheese(ctx, opt, data)
	} else {
		res, err = toJPEG(ctx, opt, data)
	}

	if err != nil {
		log.WithError(err).Debug("conversion failed")

		return nil, err
	}

	res.Direction = dir
	res.OutputName = outName

	if opt.PreviewMaxSize > 0 {
		res.Preview = thumbnail(res.Image, opt.PreviewMaxSize)
	}

	log.WithFields(logrus.Fields{
		"width":     res.Width,
		"height":    res.Height,
		"out_name":  res.OutputName,
		"out_bytes": len(res.Data),
	}).Debug("conversion finished")

	return res, nil
}

func toCheese(ctx context.Context, opt Options, data []byte) (*Result, error) {
	pix, err := decodeImage(ctx, opt, data)
	if err != nil {
		return nil, err
	}

	container, err := EncodeContainer(pix)
	if err != nil {
		return nil, fmt.Errorf("encode container: %w", err)
	}

	return &Result{
		Width:  pix.Width,
		Height: pix.Height,
		Image:  pix.RGBA(),
		Data:   container,
	}, nil
}

func toJPEG(ctx context.Context, opt Options, data []byte) (*Result, error) {
	rgb, err := DecodeContainer(data, opt.MaxPixels)
	if err != nil {
		return nil, err
	}

	rgba, err := AddOpaqueAlpha(rgb)
	if err != nil {
		return nil, fmt.Errorf("expand alpha: %w", err)
	}

	encoded, err := encodeImage(ctx, opt, rgba)
	if err != nil {
		return nil, err
	}

	return &Result{
		Width:  rgba.Width,
		Height: rgba.Height,
		Image:  rgba.RGBA(),
		Data:   encoded,
	}, nil
}

// ConvertFile reads inPath, converts it and writes the result into outDir,
// or next to the input when outDir is empty.
func ConvertFile(ctx context.Context, inPath, outDir string, opts ...func(o *Options)) (*Result, error) {
	name := filepath.Base(inPath)
	if _, err := OutputName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(inPath))
	if err != nil {
		return nil, err
	}

	res, err := Convert(ctx, data, name, opts...)
	if err != nil {
		return nil, err
	}

	if outDir == "" {
		outDir = filepath.Dir(inPath)
	}

	if err := os.WriteFile(filepath.Join(outDir, res.OutputName), res.Data, 0o644); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	return res, nil
}
