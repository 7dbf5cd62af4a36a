package main

import (
	"context"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vearutop/cheese"
	"golang.org/x/sync/errgroup"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert .jpg files to .cheese and .cheese files to .jpg",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("out-dir", "o", "", "Output directory (defaults to the input directory)")
	convertCmd.Flags().Int("quality", cheese.DefaultQuality, "JPEG quality (1-100)")
	convertCmd.Flags().Duration("timeout", cheese.DefaultTimeout, "Per-file image codec timeout (0 disables)")
	convertCmd.Flags().Int("max-pixels", cheese.DefaultMaxPixels, "Reject images with more pixels (0 disables)")
	convertCmd.Flags().IntP("jobs", "j", 4, "Files converted in parallel")
	convertCmd.Flags().Uint("preview", 0, "Also write a <name>.preview.jpg thumbnail of this size")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	quality, _ := cmd.Flags().GetInt("quality")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	maxPixels, _ := cmd.Flags().GetInt("max-pixels")
	jobs, _ := cmd.Flags().GetInt("jobs")
	previewSize, _ := cmd.Flags().GetUint("preview")

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	opts := func(o *cheese.Options) {
		o.Quality = quality
		o.Timeout = timeout
		o.MaxPixels = maxPixels
		o.PreviewMaxSize = previewSize
		o.Logger = logger
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for _, inPath := range args {
		inPath := inPath

		g.Go(func() error {
			return convertOne(ctx, inPath, outDir, previewSize, opts)
		})
	}

	return g.Wait()
}

func convertOne(ctx context.Context, inPath, outDir string, previewSize uint, opts func(o *cheese.Options)) error {
	start := time.Now()

	res, err := cheese.ConvertFile(ctx, inPath, outDir, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	if outDir == "" {
		outDir = filepath.Dir(inPath)
	}

	fields := logrus.Fields{
		"in":      inPath,
		"out":     filepath.Join(outDir, res.OutputName),
		"width":   res.Width,
		"height":  res.Height,
		"bytes":   len(res.Data),
		"elapsed": time.Since(start).String(),
	}

	if previewSize > 0 && res.Preview != nil {
		previewPath := filepath.Join(outDir, previewName(res.OutputName))
		if err := writePreview(previewPath, res); err != nil {
			return fmt.Errorf("%s: writing preview: %w", inPath, err)
		}

		fields["preview"] = previewPath
	}

	logger.WithFields(fields).Info("converted " + res.Direction.String())

	return nil
}

func previewName(outName string) string {
	return strings.TrimSuffix(outName, filepath.Ext(outName)) + ".preview.jpg"
}

func writePreview(path string, res *cheese.Result) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}

	if err := jpeg.Encode(f, res.Preview, &jpeg.Options{Quality: 85}); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
