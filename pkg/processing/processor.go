// Package processing drives the per-page crop pipeline: rasterize, detect
// content, compute the crop rectangle, apply it, and persist the document.
package processing

import (
	"fmt"

	"github.com/menta2k/pdf-autocrop/internal/utils"
	"github.com/menta2k/pdf-autocrop/pkg/cropper"
	"github.com/menta2k/pdf-autocrop/pkg/document"
	"github.com/menta2k/pdf-autocrop/pkg/raster"
)

// Logger is the logging surface the processor needs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
}

// Options is the resolved, immutable configuration for one run. The margin
// is already converted to points; no parsing happens past this point.
type Options struct {
	DPI       int
	Threshold int
	MarginPt  float64

	// DebugDir, when non-empty, receives per-page overlay images showing the
	// detected bounding box and the applied crop rectangle.
	DebugDir string
}

// Outcome is the terminal state of one page. Every page reaches exactly one
// outcome and never leaves it.
type Outcome int

const (
	// OutcomeCropped means the page's visible rectangle was rewritten.
	OutcomeCropped Outcome = iota
	// OutcomeBlank means no content pixel was found; the page is untouched.
	OutcomeBlank
	// OutcomeDegenerate means the padded rectangle collapsed; the page is
	// untouched.
	OutcomeDegenerate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCropped:
		return "cropped"
	case OutcomeBlank:
		return "blank"
	case OutcomeDegenerate:
		return "degenerate"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// PageResult records the outcome for one page. Rect is only meaningful for
// OutcomeCropped.
type PageResult struct {
	Page    int
	Outcome Outcome
	Rect    cropper.Rect
}

// Summary aggregates a whole run.
type Summary struct {
	Results    []PageResult
	Cropped    int
	OutputPath string
}

// Processor crops all pages of a document.
type Processor struct {
	opts Options
	log  Logger
}

// New creates a Processor.
func New(opts Options, log Logger) *Processor {
	return &Processor{opts: opts, log: log}
}

// Run processes every page of doc in order and saves the result to
// outputPath. Blank and degenerate pages are skipped and recorded, never
// errors. Any rasterization or persistence failure aborts the run; there are
// no retries.
func (p *Processor) Run(doc document.Document, outputPath string) (Summary, error) {
	if p.opts.DebugDir != "" {
		if err := utils.EnsureDir(p.opts.DebugDir); err != nil {
			return Summary{}, fmt.Errorf("failed to create debug dir: %w", err)
		}
	}

	n := doc.PageCount()
	scale := 72.0 / float64(p.opts.DPI)
	summary := Summary{Results: make([]PageResult, 0, n)}

	for i := 0; i < n; i++ {
		page := doc.Page(i)

		buf, err := page.Rasterize(p.opts.DPI)
		if err != nil {
			return summary, err
		}

		bbox, found, err := raster.FindContentBBox(buf, p.opts.Threshold)
		if err != nil {
			return summary, fmt.Errorf("page %d: %w", i+1, err)
		}
		if !found {
			p.log.Info("apparent blank page: no crop", "page", i+1, "total", n)
			summary.Results = append(summary.Results, PageResult{Page: i + 1, Outcome: OutcomeBlank})
			continue
		}

		pageW, pageH := page.Bounds()
		rect, ok := cropper.Compute(bbox, scale, p.opts.MarginPt, pageW, pageH)
		if !ok {
			p.log.Info("degenerate bounding box, skipped", "page", i+1, "total", n)
			summary.Results = append(summary.Results, PageResult{Page: i + 1, Outcome: OutcomeDegenerate})
			continue
		}

		if err := page.SetVisibleRect(rect); err != nil {
			return summary, err
		}
		summary.Cropped++
		summary.Results = append(summary.Results, PageResult{Page: i + 1, Outcome: OutcomeCropped, Rect: rect})
		p.log.Info("cropped", "page", i+1, "total", n,
			"rect", rect.String(), "margin_pt", fmt.Sprintf("%.2f", p.opts.MarginPt))

		if p.opts.DebugDir != "" {
			if err := p.saveOverlay(i+1, buf, bbox, rect, scale); err != nil {
				p.log.Warn("debug overlay failed", "page", i+1, "error", err)
			}
		}
	}

	if summary.Cropped == 0 {
		p.log.Warn("no crops applied; threshold may be miscalibrated or all pages are blank")
	}

	if err := doc.Save(outputPath); err != nil {
		return summary, err
	}
	summary.OutputPath = outputPath
	p.log.Info("saved", "output", outputPath)

	return summary, nil
}
