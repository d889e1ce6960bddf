package compose

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// ImageCompositor flattens an overlay PNG onto a base photo.
type ImageCompositor struct{}

// CombineImage composites overlayPath onto basePath and writes a JPEG at
// the given quality to outputPath, replacing any existing file. The base's
// EXIF block, when present, is carried over unchanged.
func (ImageCompositor) CombineImage(basePath, overlayPath, outputPath string, quality int) Result {
	if quality < 1 || quality > 100 {
		return Result{Detail: fmt.Sprintf("invalid JPEG quality %d", quality)}
	}

	raw, err := os.ReadFile(basePath)
	if err != nil {
		return failed("read base image", err)
	}
	data, err := combineImage(raw, overlayPath, quality)
	if err != nil {
		return failed("combine image", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return failed("write output", err)
	}
	return succeeded(int64(len(data)))
}

// combineImage returns the encoded JPEG for base bytes raw with the overlay
// at overlayPath on top.
func combineImage(raw []byte, overlayPath string, quality int) ([]byte, error) {
	base, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode base: %w", err)
	}
	overlay, err := imaging.Open(overlayPath)
	if err != nil {
		return nil, fmt.Errorf("decode overlay: %w", err)
	}

	canvas := flatten(base)
	out := imaging.Overlay(canvas, fitOverlay(overlay, canvas.Bounds().Size()), image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	encoded := buf.Bytes()
	if exif := extractEXIF(raw); exif != nil {
		encoded = insertSegment(encoded, exif)
	}
	return encoded, nil
}

// flatten copies img into an NRGBA canvas with every pixel fully opaque.
// Existing alpha is discarded, not blended against a background.
func flatten(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

// fitOverlay stretches the overlay to exactly size with a Lanczos filter.
// Aspect ratio is not preserved and nothing is cropped.
func fitOverlay(overlay image.Image, size image.Point) *image.NRGBA {
	if overlay.Bounds().Size() == size {
		return imaging.Clone(overlay)
	}
	return imaging.Resize(overlay, size.X, size.Y, imaging.Lanczos)
}
