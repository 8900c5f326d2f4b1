package autocrop

import (
	"math"
	"testing"

	"github.com/menta2k/pdf-autocrop/pkg/cropper"
	"github.com/menta2k/pdf-autocrop/pkg/document"
	"github.com/menta2k/pdf-autocrop/pkg/processing"
	"github.com/menta2k/pdf-autocrop/pkg/raster"
	"github.com/menta2k/pdf-autocrop/pkg/units"
)

// memPage is an in-memory page for end-to-end tests.
type memPage struct {
	buf     *raster.Buffer
	w, h    float64
	setRect *cropper.Rect
}

func (p *memPage) Rasterize(dpi int) (*raster.Buffer, error) { return p.buf, nil }
func (p *memPage) Bounds() (float64, float64) { return p.w, p.h }
func (p *memPage) SetVisibleRect(r cropper.Rect) error {
	p.setRect = &r
	return nil
}

type memDoc struct {
	pages []*memPage
	saved []string
}

func (d *memDoc) PageCount() int { return len(d.pages) }
func (d *memDoc) Page(i int) document.Page { return d.pages[i] }
func (d *memDoc) Close() error { return nil }
func (d *memDoc) Save(path string) error {
	d.saved = append(d.saved, path)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields ...interface{}) {}
func (nopLogger) Info(msg string, fields ...interface{}) {}
func (nopLogger) Warn(msg string, fields ...interface{}) {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}

// newMemPage creates a page whose raster is white except for an optional
// content block given in inclusive pixel coordinates.
func newMemPage(w, h int, pageW, pageH float64, block *raster.BBox) *memPage {
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = 255
	}
	if block != nil {
		for y := block.Top; y <= block.Bottom; y++ {
			for x := block.Left; x <= block.Right; x++ {
				pix[y*w+x] = 0
			}
		}
	}
	return &memPage{
		buf: &raster.Buffer{Width: w, Height: h, Channels: 1, Pix: pix},
		w:   pageW,
		h:   pageH,
	}
}

func TestProcessDocumentBlankDocument(t *testing.T) {
	doc := &memDoc{pages: []*memPage{newMemPage(1700, 2200, 612, 792, nil)}}

	summary, err := ProcessDocument(doc, "out.pdf", processing.Options{DPI: 200, Threshold: 245}, nopLogger{})
	if err != nil {
		t.Fatalf("ProcessDocument failed: %v", err)
	}

	if summary.Cropped != 0 {
		t.Errorf("expected zero cropped pages, got %d", summary.Cropped)
	}
	if doc.pages[0].setRect != nil {
		t.Error("blank page bounds must stay unmodified")
	}
	if len(doc.saved) != 1 {
		t.Error("output must still be produced for a blank document")
	}
}

func TestProcessDocumentContentBlock(t *testing.T) {
	// Content block at known pixel coordinates, dpi=200, threshold=245,
	// margin=4mm. The applied rectangle must match the crop formula with
	// scale = 72/200 and margin ~ 11.34pt.
	block := raster.BBox{Left: 200, Top: 300, Right: 1200, Bottom: 1800}
	doc := &memDoc{pages: []*memPage{newMemPage(1700, 2200, 612, 792, &block)}}

	marginPt, err := units.ToPoints("4mm", 200)
	if err != nil {
		t.Fatal(err)
	}

	summary, err := ProcessDocument(doc, "out.pdf",
		processing.Options{DPI: 200, Threshold: 245, MarginPt: marginPt}, nopLogger{})
	if err != nil {
		t.Fatalf("ProcessDocument failed: %v", err)
	}
	if summary.Cropped != 1 {
		t.Fatalf("expected 1 cropped page, got %d", summary.Cropped)
	}

	got := doc.pages[0].setRect
	if got == nil {
		t.Fatal("expected the page rectangle to be rewritten")
	}

	const scale = 72.0 / 200.0
	want := cropper.Rect{
		X0: math.Max(0, 200*scale-marginPt),
		Y0: math.Max(0, 300*scale-marginPt),
		X1: math.Min(612, 1201*scale+marginPt),
		Y1: math.Min(792, 1801*scale+marginPt),
	}
	if math.Abs(got.X0-want.X0) > 1e-6 || math.Abs(got.Y0-want.Y0) > 1e-6 ||
		math.Abs(got.X1-want.X1) > 1e-6 || math.Abs(got.Y1-want.Y1) > 1e-6 {
		t.Errorf("rect = %v, want %v", got, want)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	if got := DefaultOutputPath("scan.pdf"); got != "scan_cropped.pdf" {
		t.Errorf("DefaultOutputPath = %q, want scan_cropped.pdf", got)
	}
}
