package transmission

import (
	"fmt"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultOutput = "transmission.png"
	Title         = "Transmission Rates Over SRM Scale"

	figureSize = 4 * vg.Inch
)

var palette = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728"}

func mustParseHex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("mustParseHex: " + err.Error())
	}
	return c
}

// Figure is a transmission chart ready to be encoded.
type Figure struct {
	plot *hplot.Plot
}

// NewFigure lays out curves on a single labelled chart.
func NewFigure(curves []Curve) (*Figure, error) {
	p := hplot.New()
	p.Title.Text = Title
	p.X.Label.Text = "SRM"
	p.Y.Label.Text = "T%"
	p.X.Min, p.X.Max = 0, MaxSRM
	p.Y.Min, p.Y.Max = 0, 100
	p.X.Tick.Marker = linearTicks(0, MaxSRM, 5)
	p.Y.Tick.Marker = linearTicks(0, 100, 10)
	p.Legend.Top = true
	p.Add(hplot.NewGrid())

	for i, c := range curves {
		l, err := plotter.NewLine(c.Points)
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", c.Label, err)
		}
		l.LineStyle.Color = mustParseHex(palette[i%len(palette)])
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(c.Label, l)
	}
	return &Figure{plot: p}, nil
}

func linearTicks(from, to, step int) plot.ConstantTicks {
	var ticks plot.ConstantTicks
	for v := from; v <= to; v += step {
		ticks = append(ticks, plot.Tick{Value: float64(v), Label: fmt.Sprint(v)})
	}
	return ticks
}

// WriteTo encodes the figure as PNG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	wt, err := f.plot.WriterTo(figureSize, figureSize, "png")
	if err != nil {
		return 0, fmt.Errorf("could not create png writer: %w", err)
	}
	return wt.WriteTo(w)
}

// Save writes the figure to path. The format follows the file extension.
func (f *Figure) Save(path string) error {
	if err := hplot.Save(f.plot, figureSize, figureSize, path); err != nil {
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	return nil
}
