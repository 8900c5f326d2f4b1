// Package autocrop trims blank margins from the pages of a PDF document.
//
// Each page is rendered to a grayscale raster at a configurable resolution,
// the bounding box of all pixels darker than a threshold is located, and the
// page's visible rectangle is rewritten to that box plus a configurable
// margin. Blank pages and pages whose padded rectangle would collapse are
// left untouched.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		autocrop "github.com/menta2k/pdf-autocrop"
//		"github.com/menta2k/pdf-autocrop/pkg/logger"
//		"github.com/menta2k/pdf-autocrop/pkg/processing"
//		"github.com/menta2k/pdf-autocrop/pkg/units"
//	)
//
//	func main() {
//		marginPt, err := units.ToPoints("4mm", 200)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		opts := processing.Options{DPI: 200, Threshold: 245, MarginPt: marginPt}
//		summary, err := autocrop.ProcessFile("scan.pdf", "scan_cropped.pdf", opts, logger.New("info"))
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("cropped %d of %d pages", summary.Cropped, len(summary.Results))
//	}
//
// The package consists of four main components:
//
// 1. Units (pkg/units): Parses length expressions like "4mm" into points
// 2. Raster (pkg/raster): Grayscale buffers and content bounding-box detection
// 3. Cropper (pkg/cropper): Pixel bbox to clamped page rectangle conversion
// 4. Processing (pkg/processing): The per-page crop pipeline
//
// PDF access goes through the capability interfaces in pkg/document; the
// bundled backend in pkg/mupdf renders with MuPDF and rewrites crop boxes
// with pdfcpu.
package autocrop

import (
	"github.com/menta2k/pdf-autocrop/internal/utils"
	"github.com/menta2k/pdf-autocrop/pkg/document"
	"github.com/menta2k/pdf-autocrop/pkg/mupdf"
	"github.com/menta2k/pdf-autocrop/pkg/processing"
)

// Version of the pdf-autocrop library
const Version = "1.0.0"

// ProcessDocument crops every page of an already opened document and saves
// the result to outputPath. The caller keeps ownership of doc.
func ProcessDocument(doc document.Document, outputPath string, opts processing.Options, log processing.Logger) (processing.Summary, error) {
	return processing.New(opts, log).Run(doc, outputPath)
}

// ProcessFile opens the PDF at inputPath, crops it, and writes the result to
// outputPath.
func ProcessFile(inputPath, outputPath string, opts processing.Options, log processing.Logger) (processing.Summary, error) {
	doc, err := mupdf.Open(inputPath)
	if err != nil {
		return processing.Summary{}, err
	}
	defer doc.Close()

	return ProcessDocument(doc, outputPath, opts, log)
}

// DefaultOutputPath derives the conventional output path for an input file:
// "scan.pdf" becomes "scan_cropped.pdf".
func DefaultOutputPath(inputPath string) string {
	return utils.DefaultOutputPath(inputPath)
}
