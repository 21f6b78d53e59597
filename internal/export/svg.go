// Package export renders recorded trajectories as SVG plots.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/bibber/internal/trajectory"
)

var pathColors = []string{
	"#00ff00", "#00d7ff", "#ff5fd7", "#ffd700",
	"#ff8700", "#87ff5f", "#d787ff", "#5fafff",
}

// PathsSVG projects every particle's path across the frames onto the
// XY plane and renders one polyline per particle, scaled to the
// trajectory's bounding box.
func PathsSVG(t *trajectory.Trajectory, width, height int) string {
	if len(t.Frames) < 2 || t.NumParticles == 0 {
		return ""
	}

	// The box is origin-centered, so its half-extents bound the plot.
	halfX := t.BoundingBox.X / 2
	halfY := t.BoundingBox.Y / 2
	if halfX == 0 {
		halfX = 1
	}
	if halfY == 0 {
		halfY = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i := 0; i < t.NumParticles; i++ {
		color := pathColors[i%len(pathColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for f, frame := range t.Frames {
			pos := frame.Particles[i].Pos
			x := (pos.X/halfX + 1) / 2 * float64(width)
			y := float64(height) - (pos.Y/halfY+1)/2*float64(height)
			if f == 0 {
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

// SeriesSVG renders a single value series (typically temperature over
// time) as one polyline, auto-scaled to the data with padding.
func SeriesSVG(values []float64, width, height int, stroke string) string {
	if len(values) < 2 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	span := maxV - minV
	if span == 0 {
		span = 1
	}
	minV -= span * 0.1
	maxV += span * 0.1
	span = maxV - minV

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, stroke))

	for i, v := range values {
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - (v-minV)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
