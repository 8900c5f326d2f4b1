package processing

import (
	"image/color"
	"testing"

	"github.com/menta2k/pdf-autocrop/pkg/cropper"
	"github.com/menta2k/pdf-autocrop/pkg/raster"
)

func TestOverlayImage(t *testing.T) {
	pix := make([]uint8, 200*100)
	for i := range pix {
		pix[i] = 255
	}
	buf := &raster.Buffer{Width: 200, Height: 100, Channels: 1, Pix: pix}
	bbox := raster.BBox{Left: 50, Top: 20, Right: 150, Bottom: 80}
	rect := cropper.Rect{X0: 40, Y0: 10, X1: 160, Y1: 90}

	img := overlayImage(buf, bbox, rect, 1.0)

	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Fatalf("overlay size = %v, want 200x100", img.Bounds())
	}

	// Top-left corner of the content bbox should be green.
	if got := img.NRGBAAt(50, 20); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("bbox corner pixel = %v, want green", got)
	}
	// Top-left corner of the crop rectangle should be gold.
	if got := img.NRGBAAt(40, 10); got != (color.NRGBA{255, 204, 0, 255}) {
		t.Errorf("crop corner pixel = %v, want gold", got)
	}
	// Far corner away from both boxes stays white.
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel = %v, want white", got)
	}
}
