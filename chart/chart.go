// Package chart draws demand and supply curves to an image file.
package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/zones/zones"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Options controls the rendered image.
type Options struct {
	Title    string
	WidthCM  float64
	HeightCM float64
}

func DefaultOptions() Options {
	return Options{
		Title:    "Demand and Supply",
		WidthCM:  16,
		HeightCM: 10,
	}
}

var formats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true,
	".pdf": true, ".eps": true, ".tif": true, ".tiff": true,
}

// New builds the line chart. Each curve is drawn against its sample index.
func New(demand, supply []float64, opts Options) (*plot.Plot, error) {
	if err := zones.ValidateCurves(demand, supply); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Price"
	p.Y.Label.Text = "Quantity"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if err := plotutil.AddLines(p,
		"Demand", points(demand),
		"Supply", points(supply),
	); err != nil {
		return nil, fmt.Errorf("add lines: %w", err)
	}
	return p, nil
}

// Render draws demand and supply and saves the chart to path. The image
// format follows the file extension.
func Render(path string, demand, supply []float64, opts Options) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !formats[ext] {
		return fmt.Errorf("unsupported chart format %q", ext)
	}
	if opts.WidthCM <= 0 || opts.HeightCM <= 0 {
		d := DefaultOptions()
		opts.WidthCM, opts.HeightCM = d.WidthCM, d.HeightCM
	}

	p, err := New(demand, supply, opts)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(opts.WidthCM)*vg.Centimeter, vg.Length(opts.HeightCM)*vg.Centimeter, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}

func points(ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(i)
		pts[i].Y = y
	}
	return pts
}
