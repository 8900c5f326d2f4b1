// Package document declares the capabilities the crop pipeline needs from a
// PDF engine. The pipeline depends only on these interfaces, never on a
// concrete backend.
package document

import (
	"github.com/menta2k/pdf-autocrop/pkg/cropper"
	"github.com/menta2k/pdf-autocrop/pkg/raster"
)

// Document is an open, finite, index-ordered paged document.
type Document interface {
	PageCount() int
	Page(i int) Page

	// Save persists the document, including any rectangle changes, to path.
	Save(path string) error
	Close() error
}

// Page is a single page of a Document.
type Page interface {
	// Rasterize renders the page at the given dpi as a single-channel
	// grayscale buffer without alpha.
	Rasterize(dpi int) (*raster.Buffer, error)

	// Bounds returns the page's visible width and height in points.
	Bounds() (width, height float64)

	// SetVisibleRect replaces the page's visible rectangle. Coordinates are
	// points with a top-left origin, relative to the current bounds.
	SetVisibleRect(r cropper.Rect) error
}
