// Package raster holds grayscale page rasters and locates the bounding box
// of non-background content in them.
package raster

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

// ErrNotGrayscale reports a buffer that is not single-channel. The detector
// only understands one byte per pixel, so hitting this means the rendering
// side broke its contract.
var ErrNotGrayscale = errors.New("raster buffer must be single-channel grayscale")

// Buffer is an immutable grayscale pixel matrix in row-major order, one byte
// per pixel, 0 = black, 255 = white, no alpha.
type Buffer struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// FromImage converts a rendered page image into a single-channel Buffer.
// Color input is collapsed to luminance.
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return &Buffer{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 1,
		Pix:      gray.Pix,
	}
}

// BBox is an inclusive pixel-space bounding box:
// 0 <= Left <= Right < width, 0 <= Top <= Bottom < height.
type BBox struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// FindContentBBox scans the buffer for the bounding box of content pixels.
// A pixel is content iff its value is strictly below threshold; a pixel at
// exactly threshold counts as background. The second return value is false
// when no pixel qualifies (an apparently blank page).
//
// The scan is a single O(w*h) pass with constant extra space, and the result
// is a min/max reduction, so it does not depend on scan order.
func FindContentBBox(buf *Buffer, threshold int) (BBox, bool, error) {
	if buf.Channels != 1 {
		return BBox{}, false, ErrNotGrayscale
	}

	w, h := buf.Width, buf.Height
	left, top := w, h
	right, bottom := -1, -1

	for y := 0; y < h; y++ {
		row := buf.Pix[y*w : (y+1)*w]
		for x, v := range row {
			if int(v) >= threshold {
				continue
			}
			if x < left {
				left = x
			}
			if x > right {
				right = x
			}
			if y < top {
				top = y
			}
			bottom = y
		}
	}

	if right < 0 {
		return BBox{}, false, nil
	}
	return BBox{Left: left, Top: top, Right: right, Bottom: bottom}, true, nil
}
