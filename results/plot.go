package results

import (
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultPlotFormat is the file extension used when SavePlots gets none.
const DefaultPlotFormat = "png"

// SavePlots writes one figure per observable column of t, plotted against
// temperature, into dir as <column>.<ext>. ext selects the gonum/plot
// backend (png, svg, pdf, ...). Non-finite values are left out of the figure.
// It returns the written paths in column order.
func SavePlots(t *Table, dir, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultPlotFormat
	}
	temps, ok := t.Column(ColTemperature)
	if !ok {
		return nil, errors.Wrap(ErrMalformed, "no temperature column")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "results: plot dir")
	}

	var paths []string
	for _, col := range t.Columns {
		if col == ColTemperature {
			continue
		}
		ys, _ := t.Column(col)
		pts := make(plotter.XYs, 0, len(ys))
		for i, y := range ys {
			if math.IsNaN(y) || math.IsInf(y, 0) {
				continue
			}
			pts = append(pts, plotter.XY{X: temps[i], Y: y})
		}

		p := plot.New()
		p.Title.Text = col
		p.X.Label.Text = ColTemperature
		p.Y.Label.Text = col
		p.Add(plotter.NewGrid())

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return paths, errors.Wrapf(err, "results: plot %s", col)
		}
		points.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(line, points)

		path := filepath.Join(dir, col+"."+ext)
		if err = p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return paths, errors.Wrapf(err, "results: save %s", path)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
