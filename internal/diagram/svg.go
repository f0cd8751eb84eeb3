package diagram

import (
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// ErrNoEnvelope is returned when there is nothing to draw
var ErrNoEnvelope = errors.New("envelope has too few points to draw")

// SVGOptions controls the size and decoration of WriteSVG output
type SVGOptions struct {
	Width  int // px
	Height int // px
	Ticks  int // Approximate number of ticks per axis

	ShowLabels bool // Label the key points with their coordinates
}

// DefaultSVGOptions returns the settings used by the CLI and the API
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 640, Height: 640, Ticks: 8, ShowLabels: true}
}

const (
	marginLeft   = 70
	marginRight  = 30
	marginTop    = 40
	marginBottom = 50
)

// canvasMap converts (M, N) to pixel coordinates; N grows upwards
type canvasMap struct {
	x0, y0, w, h float64
	mMin, mMax   float64
	nMin, nMax   float64
}

func (c canvasMap) x(m float64) int {
	return int(math.Round(c.x0 + (m-c.mMin)/(c.mMax-c.mMin)*c.w))
}

func (c canvasMap) y(n float64) int {
	return int(math.Round(c.y0 + c.h - (n-c.nMin)/(c.nMax-c.nMin)*c.h))
}

// WriteSVG renders the interaction diagram as a standalone SVG document:
// M on the horizontal axis, N on the vertical axis, compression up
func WriteSVG(w io.Writer, data InteractionDiagramData, opts SVGOptions) error {
	if data.Envelope == nil || len(data.Envelope.Points) < 3 {
		return ErrNoEnvelope
	}
	def := DefaultSVGOptions()
	if opts.Width <= marginLeft+marginRight {
		opts.Width = def.Width
	}
	if opts.Height <= marginTop+marginBottom {
		opts.Height = def.Height
	}
	if opts.Ticks < 2 {
		opts.Ticks = def.Ticks
	}

	minM, maxM, minN, maxN := data.bounds()
	mFrom, mTo, mTicks := niceRange(minM, maxM, opts.Ticks)
	nFrom, nTo, nTicks := niceRange(minN, maxN, opts.Ticks)

	cm := canvasMap{
		x0:   marginLeft,
		y0:   marginTop,
		w:    float64(opts.Width - marginLeft - marginRight),
		h:    float64(opts.Height - marginTop - marginBottom),
		mMin: mFrom,
		mMax: mTo,
		nMin: nFrom,
		nMax: nTo,
	}

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	title := data.Title
	if title == "" {
		title = "M-N Interaction Diagram"
	}
	canvas.Title(title)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:white")

	// Grid and tick labels
	canvas.Gstyle("stroke:#dddddd;stroke-width:1")
	for _, m := range mTicks {
		canvas.Line(cm.x(m), cm.y(nFrom), cm.x(m), cm.y(nTo))
	}
	for _, n := range nTicks {
		canvas.Line(cm.x(mFrom), cm.y(n), cm.x(mTo), cm.y(n))
	}
	canvas.Gend()

	canvas.Gstyle("font-family:sans-serif;font-size:11px;fill:#333333")
	for _, m := range mTicks {
		canvas.Text(cm.x(m), cm.y(nFrom)+16, formatTick(m), "text-anchor:middle")
	}
	for _, n := range nTicks {
		canvas.Text(cm.x(mFrom)-6, cm.y(n)+4, formatTick(n), "text-anchor:end")
	}
	canvas.Gend()

	// Axes; the N = 0 line is drawn when it is in range
	canvas.Gstyle("stroke:#333333;stroke-width:1.5")
	canvas.Line(cm.x(mFrom), cm.y(nFrom), cm.x(mTo), cm.y(nFrom))
	canvas.Line(cm.x(mFrom), cm.y(nFrom), cm.x(mFrom), cm.y(nTo))
	canvas.Gend()
	if nFrom < 0 && nTo > 0 {
		canvas.Line(cm.x(mFrom), cm.y(0), cm.x(mTo), cm.y(0), "stroke:#888888;stroke-dasharray:4,3")
	}

	canvas.Text(marginLeft+int(cm.w/2), opts.Height-12, "M (kNm)", "font-family:sans-serif;font-size:13px;text-anchor:middle")
	canvas.TranslateRotate(18, marginTop+int(cm.h/2), -90)
	canvas.Text(0, 0, "N (kN)", "font-family:sans-serif;font-size:13px;text-anchor:middle")
	canvas.Gend()
	canvas.Text(opts.Width/2, 24, title, "font-family:sans-serif;font-size:15px;font-weight:bold;text-anchor:middle")

	// Envelope
	xs := make([]int, len(data.Envelope.Points))
	ys := make([]int, len(data.Envelope.Points))
	for i, p := range data.Envelope.Points {
		xs[i], ys[i] = cm.x(p.M), cm.y(p.N)
	}
	canvas.Polygon(xs, ys, "fill:#6495ed;fill-opacity:0.35;stroke:#00008b;stroke-width:2")

	// Key points
	for _, kp := range data.Envelope.KeyPoints() {
		px, py := cm.x(kp.Point.M), cm.y(kp.Point.N)
		canvas.Circle(px, py, 4, "fill:#c81e1e")
		if opts.ShowLabels {
			canvas.Text(px+7, py-5, fmt.Sprintf("%s (%.0f; %.0f)", kp.Label, kp.Point.M, kp.Point.N),
				"font-family:sans-serif;font-size:10px;fill:#7a0000")
		}
	}

	// Design point
	if data.Design != nil {
		fill, verdict := "#dc0000", "outside"
		if data.Inside() {
			fill, verdict = "#00963c", "inside"
		}
		px, py := cm.x(data.Design.M), cm.y(data.Design.N)
		canvas.Circle(px, py, 6, fmt.Sprintf("fill:%s;stroke:black;stroke-width:1", fill))
		canvas.Text(px+9, py+4, fmt.Sprintf("Ed (%.0f; %.0f) %s", data.Design.M, data.Design.N, verdict),
			fmt.Sprintf("font-family:sans-serif;font-size:11px;font-weight:bold;fill:%s", fill))
	}

	canvas.End()
	return nil
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}
