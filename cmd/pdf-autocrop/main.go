// Command pdf-autocrop trims blank margins from every page of a PDF.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	autocrop "github.com/menta2k/pdf-autocrop"
	"github.com/menta2k/pdf-autocrop/internal/config"
	"github.com/menta2k/pdf-autocrop/pkg/logger"
	"github.com/menta2k/pdf-autocrop/pkg/processing"
	"github.com/menta2k/pdf-autocrop/pkg/units"
)

func main() {
	def := config.Default()

	var (
		output    string
		cfgPath   string
		dpi       int
		threshold int
		margin    string
		quiet     bool
		debugDir  string
	)

	flag.StringVar(&output, "o", "", "output PDF (default: input with _cropped suffix)")
	flag.StringVar(&output, "output", "", "output PDF (default: input with _cropped suffix)")
	flag.StringVar(&cfgPath, "config", "", "JSON config file with default settings")
	flag.IntVar(&dpi, "dpi", def.DPI, "render resolution in dots per inch")
	flag.IntVar(&threshold, "threshold", def.Threshold, "intensity threshold 0-255; pixels below it count as content")
	flag.StringVar(&margin, "margin", def.Margin, "extra margin to keep (pt, mm, cm, in, px)")
	flag.BoolVar(&quiet, "quiet", def.Quiet, "suppress per-page and summary progress output")
	flag.StringVar(&debugDir, "debug-dir", "", "write per-page overlay images to this directory")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [options] input.pdf\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)

	cfg := def
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dpi":
			cfg.DPI = dpi
		case "threshold":
			cfg.Threshold = threshold
		case "margin":
			cfg.Margin = margin
		case "quiet":
			cfg.Quiet = quiet
		case "debug-dir":
			cfg.DebugDir = debugDir
		}
	})

	// All validation happens before the document is opened.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	marginPt, err := units.ToPoints(cfg.Margin, cfg.DPI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error in -margin: %v\n", err)
		os.Exit(2)
	}

	if output == "" {
		output = autocrop.DefaultOutputPath(input)
	}

	level := "info"
	if cfg.Quiet {
		level = "error"
	}
	log := logger.New(level)

	opts := processing.Options{
		DPI:       cfg.DPI,
		Threshold: cfg.Threshold,
		MarginPt:  marginPt,
		DebugDir:  cfg.DebugDir,
	}
	if _, err := autocrop.ProcessFile(input, output, opts, log); err != nil {
		log.Error("crop run failed", err, "input", input)
		os.Exit(1)
	}
}
