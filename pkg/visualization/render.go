package visualization

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderOptions controls the drawing
type RenderOptions struct {
	WidthInches float64
	Title       string
	NodeArea    float64 // Marker area in pt^2
	NodeColor   color.Color
	EdgeColor   color.Color
	Alpha       float64
	EdgeWidth   vg.Length
}

// DefaultRenderOptions returns the options for the subset figure
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		WidthInches: 12,
		Title:       "Subset of Nodes Visualization from Wiki-Vote Dataset",
		NodeArea:    5,
		NodeColor:   color.RGBA{R: 135, G: 206, B: 235, A: 255}, // skyblue
		EdgeColor:   color.RGBA{R: 128, G: 128, B: 128, A: 255}, // gray
		Alpha:       0.7,
		EdgeWidth:   vg.Points(0.5),
	}
}

// Render writes the visualization to path; the extension picks the format
func Render(v *Visualization, path string, opts RenderOptions) error {
	p, err := buildPlot(v, opts)
	if err != nil {
		return err
	}

	side := vg.Length(opts.WidthInches) * vg.Inch
	if err := p.Save(side, side, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// RenderTo writes the visualization to w in the given format (png, svg, pdf)
func RenderTo(w io.Writer, v *Visualization, format string, opts RenderOptions) error {
	p, err := buildPlot(v, opts)
	if err != nil {
		return err
	}

	side := vg.Length(opts.WidthInches) * vg.Inch
	wt, err := p.WriterTo(side, side, strings.TrimPrefix(format, "."))
	if err != nil {
		return fmt.Errorf("failed to create %s writer: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	return nil
}

func buildPlot(v *Visualization, opts RenderOptions) (*plot.Plot, error) {
	if len(v.Nodes) == 0 {
		return nil, ErrEmptyVisualization
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.HideAxes()

	points := make(plotter.XYs, 0, len(v.Nodes))
	for _, id := range v.Nodes {
		pos := v.Positions[id]
		points = append(points, plotter.XY{X: pos.X, Y: pos.Y})
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("failed to build node scatter: %w", err)
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  withAlpha(opts.NodeColor, opts.Alpha),
		Radius: vg.Points(math.Sqrt(opts.NodeArea / math.Pi)),
		Shape:  draw.CircleGlyph{},
	}

	edges := &edgeLines{
		viz: v,
		style: draw.LineStyle{
			Color: withAlpha(opts.EdgeColor, opts.Alpha),
			Width: opts.EdgeWidth,
		},
	}

	// Edges first so nodes are drawn on top
	p.Add(edges, scatter)
	return p, nil
}

// edgeLines draws every edge as a straight segment in one plotter
type edgeLines struct {
	viz   *Visualization
	style draw.LineStyle
}

// Plot implements plot.Plotter
func (e *edgeLines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, edge := range e.viz.Edges {
		from, ok := e.viz.Positions[edge.FromNodeID]
		if !ok {
			continue
		}
		to, ok := e.viz.Positions[edge.ToNodeID]
		if !ok {
			continue
		}
		c.StrokeLine2(e.style, trX(from.X), trY(from.Y), trX(to.X), trY(to.Y))
	}
}

func withAlpha(c color.Color, alpha float64) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(math.Round(alpha * 255)),
	}
}
