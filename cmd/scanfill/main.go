// seehuhn.de/go/scanfill - scan-line polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command scanfill draws a polygon and fills it with the scan-line
// algorithm.
//
// Usage:
//
//	scanfill [flags] [coordinates...]
//	scanfill version
//
// The coordinates are given as text containing pairs "(x, y)" in the
// logical window; everything else is ignored.  Use "-" to read the text
// from standard input.  Without coordinates a default pentagon is drawn.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/scanfill"
	"seehuhn.de/go/scanfill/canvas"
	"seehuhn.de/go/scanfill/internal/config"
	applog "seehuhn.de/go/scanfill/internal/log"
	"seehuhn.de/go/scanfill/internal/version"
	"seehuhn.de/go/scanfill/pdfsurface"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println("scanfill", version.String())
			return
		}
	}

	if err := run(os.Args[1:], os.Stdin); err != nil {
		applog.L().Error("scanfill failed", slog.Any("err", err))
		applog.Close()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader) (err error) {
	fs := flag.NewFlagSet("scanfill", flag.ContinueOnError)
	configFile := fs.String("config", "", "YAML configuration `file`")
	pngFile := fs.String("png", "", "write the raster to this PNG `file`")
	pdfFile := fs.String("pdf", "", "write the drawing to this PDF `file`")
	scale := fs.Int("scale", 0, "enlarge the PNG output by this factor")
	width := fs.Int("width", 0, "raster width in pixels")
	height := fs.Int("height", 0, "raster height in pixels")
	noFill := fs.Bool("no-fill", false, "only draw the boundary")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	applyFlags(&cfg, *pngFile, *pdfFile, *scale, *width, *height)
	if err := cfg.Validate(); err != nil {
		return err
	}

	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	defer func() {
		if cerr := applog.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close log: %w", cerr))
		}
	}()
	l := applog.WithComponent("cli")
	scanfill.SetLogger(applog.WithComponent("scanfill"))

	text, err := inputText(fs.Args(), stdin)
	if err != nil {
		return err
	}

	c := canvas.New(cfg.Raster.Width, cfg.Raster.Height)
	surfaces := []scanfill.Surface{c}
	var doc *pdfsurface.Surface
	if cfg.Output.PDF != "" {
		doc, err = pdfsurface.Create(cfg.Output.PDF, cfg.Raster.Width, cfg.Raster.Height)
		if err != nil {
			return fmt.Errorf("create pdf: %w", err)
		}
		defer func() {
			if cerr := doc.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("write pdf: %w", cerr))
			}
		}()
		surfaces = append(surfaces, doc)
	}

	s := scanfill.NewSession(teeSurface(surfaces))
	s.Viewport = scanfill.Viewport{
		Width:         cfg.Raster.Width,
		Height:        cfg.Raster.Height,
		LogicalWidth:  cfg.Logical.Width,
		LogicalHeight: cfg.Logical.Height,
		Snap:          cfg.Raster.Snap,
	}
	s.StrokeWidth = cfg.Render.StrokeWidth
	s.Ink = color.Gray{Y: cfg.Render.Ink}
	s.FillInk = color.Gray{Y: cfg.Render.FillInk}

	var drawn bool
	if strings.TrimSpace(text) == "" {
		drawn = s.RequestBoundary(s.Viewport.ToRaster(scanfill.DefaultShape()))
	} else {
		drawn = s.Draw(text)
	}
	if !drawn {
		l.Info("fewer than three coordinate pairs, nothing drawn")
	} else if !*noFill {
		s.RequestFill()
	}
	l.Info("polygon rendered",
		slog.Int("edges", len(s.Boundary())),
		slog.Bool("filled", s.Filled()))

	if cfg.Output.PNG != "" {
		if err := c.SavePNG(cfg.Output.PNG, cfg.Render.Scale); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		l.Info("wrote png", slog.String("file", cfg.Output.PNG))
	}
	return nil
}

// applyFlags overrides configuration values with the non-zero flags.
func applyFlags(cfg *config.Config, pngFile, pdfFile string, scale, width, height int) {
	if pngFile != "" {
		cfg.Output.PNG = pngFile
	}
	if pdfFile != "" {
		cfg.Output.PDF = pdfFile
	}
	if scale != 0 {
		cfg.Render.Scale = scale
	}
	if width != 0 {
		cfg.Raster.Width = width
	}
	if height != 0 {
		cfg.Raster.Height = height
	}
}

// inputText returns the coordinate text given on the command line.
// A single "-" reads the text from stdin.
func inputText(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
