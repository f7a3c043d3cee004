// SPDX-License-Identifier: MIT

package static

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps" // eps
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg, tiff
	_ "gonum.org/v1/plot/vg/vgpdf" // pdf
	_ "gonum.org/v1/plot/vg/vgsvg" // svg
)

// ErrEmptyFigure indicates a figure without plots.
var ErrEmptyFigure = errors.New("static: figure has no plots")

// Figure is a rectangular grid of plots drawn onto one canvas.
type Figure struct {
	Plots         [][]*plot.Plot // rows of equal length
	Width, Height vg.Length
}

func singleFigure(p *plot.Plot, w, h vg.Length) *Figure {
	return &Figure{Plots: [][]*plot.Plot{{p}}, Width: w, Height: h}
}

// WriterTo lays the grid out on a canvas of the given format
// ("png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps").
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	if len(f.Plots) == 0 || len(f.Plots[0]) == 0 {
		return nil, fmt.Errorf("Figure.WriterTo: %w", ErrEmptyFigure)
	}
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, strings.ToLower(format))
	if err != nil {
		return nil, fmt.Errorf("Figure.WriterTo: %w", err)
	}

	tiles := draw.Tiles{
		Rows: len(f.Plots),
		Cols: len(f.Plots[0]),
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(f.Plots, tiles, draw.New(c))
	for i, row := range f.Plots {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	return c, nil
}

// Save writes the figure to path; the extension picks the format.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	w, err := f.WriterTo(format)
	if err != nil {
		return fmt.Errorf("Figure.Save %s: %w", path, err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Figure.Save: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Figure.Save: %w", cerr)
		}
	}()
	if _, err = w.WriteTo(out); err != nil {
		return fmt.Errorf("Figure.Save %s: %w", path, err)
	}

	return nil
}

// SaveAll writes figs as <stem>-<n>.<ext> (n from 1) or as path itself
// when there is a single figure. It returns the written paths.
func SaveAll(figs []*Figure, path string) ([]string, error) {
	if len(figs) == 1 {
		return []string{path}, figs[0].Save(path)
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	paths := make([]string, 0, len(figs))
	for i, f := range figs {
		p := fmt.Sprintf("%s-%d%s", stem, i+1, ext)
		if err := f.Save(p); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
