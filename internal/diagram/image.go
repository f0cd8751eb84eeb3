package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	envelopeFill = color.RGBA{R: 100, G: 149, B: 237, A: 90}
	envelopeEdge = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	keyPointRed  = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	insideGreen  = color.RGBA{R: 0, G: 150, B: 60, A: 255}
	outsideRed   = color.RGBA{R: 220, G: 0, B: 0, A: 255}
)

// ExportInteractionDiagram exports the M-N interaction diagram to an image
// file. The format follows the extension (.png, .svg, .pdf); anything else
// is saved as PNG.
func ExportInteractionDiagram(data InteractionDiagramData, filename string) error {
	if data.Envelope == nil || len(data.Envelope.Points) < 3 {
		return ErrNoEnvelope
	}

	p := plot.New()
	p.Title.Text = "M-N Interaction Diagram"
	if data.Title != "" {
		p.Title.Text = data.Title
	}
	p.X.Label.Text = "M (kNm)"
	p.Y.Label.Text = "N (kN)"
	p.Add(plotter.NewGrid())

	// Envelope polygon, closed back to the first sweep point
	pts := make(plotter.XYs, len(data.Envelope.Points))
	for i, pt := range data.Envelope.Points {
		pts[i] = plotter.XY{X: pt.M, Y: pt.N}
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return err
	}
	poly.Color = envelopeFill
	poly.LineStyle.Color = envelopeEdge
	poly.LineStyle.Width = vg.Points(1.5)
	p.Add(poly)

	// Zero axial force reference
	_, maxM, _, _ := data.bounds()
	zeroLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: maxM * 1.05, Y: 0}})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	// Key points
	keyPoints := data.Envelope.KeyPoints()
	keyXYs := make(plotter.XYs, len(keyPoints))
	keyLabels := make([]string, len(keyPoints))
	for i, kp := range keyPoints {
		keyXYs[i] = plotter.XY{X: kp.Point.M, Y: kp.Point.N}
		keyLabels[i] = fmt.Sprintf("%s (%.0f, %.0f)", kp.Label, kp.Point.M, kp.Point.N)
	}
	keyScatter, err := plotter.NewScatter(keyXYs)
	if err != nil {
		return err
	}
	keyScatter.GlyphStyle.Color = keyPointRed
	keyScatter.GlyphStyle.Radius = vg.Points(4)
	keyScatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(keyScatter)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: keyXYs, Labels: keyLabels})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XLeft
	}
	labels.Offset.X = vg.Points(6)
	p.Add(labels)

	// Design point
	if data.Design != nil {
		design, err := plotter.NewScatter(plotter.XYs{{X: data.Design.M, Y: data.Design.N}})
		if err != nil {
			return err
		}
		design.GlyphStyle.Radius = vg.Points(5)
		design.GlyphStyle.Shape = draw.CrossGlyph{}
		verdict := "outside"
		design.GlyphStyle.Color = outsideRed
		if data.Inside() {
			verdict = "inside"
			design.GlyphStyle.Color = insideGreen
		}
		p.Add(design)
		p.Legend.Add(fmt.Sprintf("Design point (%s)", verdict), design)
	}
	p.Legend.Add("Envelope", poly)
	p.Legend.Top = true

	width := 8 * vg.Inch
	height := 8 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
