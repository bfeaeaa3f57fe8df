package export

import (
	"fmt"
	"strings"

	"github.com/hanbyul-kim/laborsim/internal/sim"
)

// strokes cycles per run so overlapping trajectories stay distinguishable.
var strokes = []string{"#00ff00", "#00cc88", "#44aaff", "#ffaa00", "#ff4488"}

// ReportSVG renders every trajectory in the report as a wage-over-step
// polyline. Returns "" when there is nothing to plot.
func ReportSVG(rep *sim.Report, width, height int) string {
	if rep == nil || len(rep.Trajectories) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	// Find bounds
	var minX, maxX, minY, maxY float64
	first := true
	for _, traj := range rep.Trajectories {
		for _, p := range traj {
			x, y := float64(p.Step), p.Wage
			if first {
				minX, maxX = x, x
				minY, maxY = y, y
				first = false
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if first {
		return ""
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, traj := range rep.Trajectories {
		if len(traj) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokes[i%len(strokes)]))
		for j, p := range traj {
			x := (float64(p.Step) - minX) / rangeX * float64(width)
			y := float64(height) - (p.Wage-minY)/rangeY*float64(height)
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
