package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gorcc/internal/interaction"
)

// Columns of the ASCII chart; one MRd sample per column
const asciiWidth = 60

// DrawASCIIInteractionDiagram plots MRd against N, from pure tension on the
// left to pure compression on the right
func DrawASCIIInteractionDiagram(data InteractionDiagramData) string {
	if data.Envelope == nil || len(data.Envelope.Points) < 3 {
		return "  (no envelope to draw)\n"
	}

	ns, ms := interaction.Resample(data.Envelope, asciiWidth)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  M-N INTERACTION DIAGRAM (MRd vs N)\n")
	sb.WriteString("  ──────────────────────────────────\n\n")

	graph := asciigraph.Plot(ms,
		asciigraph.Height(15),
		asciigraph.Width(asciiWidth),
		asciigraph.Precision(0),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("N from %.0f kN (tension) to %.0f kN (compression)", ns[0], ns[len(ns)-1])),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")

	if data.Design != nil {
		mRd, ok := interaction.MomentCapacity(data.Envelope, data.Design.N)
		verdict := "OUTSIDE"
		if data.Inside() {
			verdict = "INSIDE"
		}
		sb.WriteString("\n")
		if ok {
			sb.WriteString(fmt.Sprintf("  Design point NEd = %.1f kN, MEd = %.1f kNm → %s (MRd = %.1f kNm)\n",
				data.Design.N, data.Design.M, verdict, mRd))
		} else {
			sb.WriteString(fmt.Sprintf("  Design point NEd = %.1f kN, MEd = %.1f kNm → %s (NEd beyond axial capacity)\n",
				data.Design.N, data.Design.M, verdict))
		}
	}

	return sb.String()
}

// DrawKeyPointTable lists the four reference points of an envelope
func DrawKeyPointTable(env *interaction.Envelope) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %-20s %12s %12s\n", "Point", "N (kN)", "M (kNm)"))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", 46)))
	for _, kp := range env.KeyPoints() {
		sb.WriteString(fmt.Sprintf("  %-20s %12.1f %12.1f\n", kp.Label, kp.Point.N, kp.Point.M))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := len([]rune(title))
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4

	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, width-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, width-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-fills s to n runes; %-*s counts bytes and skews on ε or ²
func pad(s string, n int) string {
	if l := len([]rune(s)); l < n {
		return s + strings.Repeat(" ", n-l)
	}
	return s
}
