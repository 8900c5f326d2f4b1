// Package mupdf is the PDF backend for the crop pipeline. Pages are rendered
// through MuPDF (go-fitz) while page geometry, crop box rewriting and
// persistence go through pdfcpu, which also compacts the document on write.
package mupdf

import (
	"fmt"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/menta2k/pdf-autocrop/pkg/cropper"
	"github.com/menta2k/pdf-autocrop/pkg/document"
	"github.com/menta2k/pdf-autocrop/pkg/raster"
)

// Document implements document.Document for PDF files.
type Document struct {
	fz  *fitz.Document
	ctx *model.Context
}

var _ document.Document = (*Document)(nil)

// Open loads the PDF at path.
func Open(path string) (*Document, error) {
	fz, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for rendering: %w", path, err)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		fz.Close()
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if fz.NumPage() != ctx.PageCount {
		fz.Close()
		return nil, fmt.Errorf("page count mismatch for %s: renderer sees %d, parser sees %d",
			path, fz.NumPage(), ctx.PageCount)
	}

	return &Document{fz: fz, ctx: ctx}, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Page returns the i-th page (0-based).
func (d *Document) Page(i int) document.Page {
	return &page{doc: d, index: i}
}

// Save writes the document, with any rewritten crop boxes, to path.
func (d *Document) Save(path string) error {
	if err := api.WriteContextFile(d.ctx, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Close releases the renderer. The parser context needs no teardown.
func (d *Document) Close() error {
	return d.fz.Close()
}

// visibleBox returns the page dict and the page's effective visible box
// (CropBox when present, MediaBox otherwise) in PDF user space.
func (d *Document) visibleBox(index int) (types.Dict, *types.Rectangle, error) {
	pageDict, _, inh, err := d.ctx.PageDict(index+1, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve page %d: %w", index+1, err)
	}
	box := inh.MediaBox
	if inh.CropBox != nil {
		box = inh.CropBox
	}
	if box == nil {
		return nil, nil, fmt.Errorf("page %d has no media box", index+1)
	}
	return pageDict, box, nil
}

type page struct {
	doc   *Document
	index int
}

// Rasterize renders the page at dpi and collapses it to grayscale.
func (p *page) Rasterize(dpi int) (*raster.Buffer, error) {
	img, err := p.doc.fz.ImageDPI(p.index, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d at %d dpi: %w", p.index+1, dpi, err)
	}
	return raster.FromImage(img), nil
}

// Bounds returns the visible page size in points.
func (p *page) Bounds() (float64, float64) {
	_, box, err := p.doc.visibleBox(p.index)
	if err != nil {
		return 0, 0
	}
	return box.Width(), box.Height()
}

// SetVisibleRect rewrites the page's CropBox. The incoming rectangle uses a
// top-left origin relative to the visible box; PDF user space has a
// bottom-left origin, so the y axis flips against the box's top edge.
func (p *page) SetVisibleRect(r cropper.Rect) error {
	pageDict, box, err := p.doc.visibleBox(p.index)
	if err != nil {
		return err
	}

	x0 := box.LL.X + r.X0
	x1 := box.LL.X + r.X1
	y0 := box.UR.Y - r.Y1
	y1 := box.UR.Y - r.Y0

	pageDict.Update("CropBox", types.NewNumberArray(x0, y0, x1, y1))
	return nil
}
