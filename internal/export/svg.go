package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/chargesim/internal/engine"
)

// palette cycles across particles, roughly matching the preset colors of
// the live view.
var palette = []string{
	"#ffcc00", "#0080ff", "#ff3333", "#33cc33",
	"#9933cc", "#ff8800", "#00cccc", "#ff66cc",
}

// TrailsToSVG renders the XY projection of every particle trajectory as one
// polyline per particle. Each trail is split into segments of increasing
// stroke opacity so older positions fade out, matching the live renderer.
func TrailsToSVG(rec *engine.Recording, width, height int) string {
	if len(rec.Positions) < 2 {
		return ""
	}
	n := len(rec.Positions[0])

	minX, maxX := rec.Positions[0][0].X, rec.Positions[0][0].X
	minY, maxY := rec.Positions[0][0].Y, rec.Positions[0][0].Y
	for step := range rec.Positions {
		for i := 0; i < n; i++ {
			if !rec.Active[step][i] {
				continue
			}
			p := rec.Positions[step][i]
			minX, maxX = minMax(minX, maxX, p.X)
			minY, maxY = minMax(minY, maxY, p.Y)
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	toScreen := func(p engine.Vec3) (float64, float64) {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#070724"/>
`, width, height, width, height))

	const fadeSegments = 4
	steps := len(rec.Positions)

	for i := 0; i < n; i++ {
		color := palette[i%len(palette)]
		for seg := 0; seg < fadeSegments; seg++ {
			lo := steps * seg / fadeSegments
			hi := steps * (seg + 1) / fadeSegments
			if hi < steps {
				hi++ // overlap one point so segments join
			}
			opacity := 0.1 + 0.5*float64(seg+1)/fadeSegments
			writeSegment(&sb, rec, i, lo, hi, color, opacity, toScreen)
		}

		// Final position marker.
		last := steps - 1
		if rec.Active[last][i] {
			x, y := toScreen(rec.Positions[last][i])
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"%s\"/>\n", x, y, color))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writeSegment(sb *strings.Builder, rec *engine.Recording, i, lo, hi int, color string, opacity float64, toScreen func(engine.Vec3) (float64, float64)) {
	var path strings.Builder
	drawn := 0
	for step := lo; step < hi; step++ {
		if !rec.Active[step][i] {
			break // trajectory is frozen from the first inactive step
		}
		x, y := toScreen(rec.Positions[step][i])
		if drawn == 0 {
			fmt.Fprintf(&path, "M%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&path, " L%.1f,%.1f", x, y)
		}
		drawn++
	}
	if drawn < 2 {
		return
	}
	fmt.Fprintf(sb, "<path fill=\"none\" stroke=\"%s\" stroke-opacity=\"%.2f\" stroke-width=\"1.5\" d=\"%s\"/>\n",
		color, opacity, path.String())
}

func minMax(lo, hi, v float64) (float64, float64) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}
