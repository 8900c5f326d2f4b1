package processing

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/menta2k/pdf-autocrop/pkg/cropper"
	"github.com/menta2k/pdf-autocrop/pkg/raster"
)

// saveOverlay writes the rendered page with the detected bounding box
// (green) and the applied crop rectangle (gold) drawn on top.
func (p *Processor) saveOverlay(pageNum int, buf *raster.Buffer, bbox raster.BBox, rect cropper.Rect, scale float64) error {
	img := overlayImage(buf, bbox, rect, scale)

	path := filepath.Join(p.opts.DebugDir, fmt.Sprintf("page_%03d.webp", pageNum))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return webp.Encode(f, img, &webp.Options{Quality: 90})
}

// overlayImage rebuilds the grayscale raster as NRGBA and draws both boxes
// in pixel space. The crop rectangle comes back from point space through the
// same scale used to leave it.
func overlayImage(buf *raster.Buffer, bbox raster.BBox, rect cropper.Rect, scale float64) *image.NRGBA {
	gray := &image.Gray{
		Pix:    buf.Pix,
		Stride: buf.Width,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
	img := imaging.Clone(gray)

	green := color.NRGBA{0, 255, 0, 255}
	gold := color.NRGBA{255, 204, 0, 255}

	stroke := minInt(buf.Width, buf.Height) / 250
	if stroke < 2 {
		stroke = 2
	}
	drawBox(img, bbox.Left, bbox.Top, bbox.Right+1, bbox.Bottom+1, green, stroke)

	drawBox(img,
		int(rect.X0/scale+0.5), int(rect.Y0/scale+0.5),
		int(rect.X1/scale+0.5), int(rect.Y1/scale+0.5),
		gold, stroke)

	return img
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func drawBox(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA, stroke int) {
	for s := 0; s < stroke; s++ {
		drawHLine(img, y0+s, x0, x1, c)
		drawHLine(img, y1-1-s, x0, x1, c)
		drawVLine(img, x0+s, y0, y1, c)
		drawVLine(img, x1-1-s, y0, y1, c)
	}
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 <= 0 || x0 >= img.Bounds().Dx() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 <= 0 || y0 >= img.Bounds().Dy() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}
