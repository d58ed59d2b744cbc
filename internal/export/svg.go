// Package export renders simulated trajectories to static images.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

const margin = 20.0

// Track is one particle's recorded path plus its display color (linear RGB,
// 0..1 per channel).
type Track struct {
	Points []mgl32.Vec3
	Color  mgl32.Vec3
}

// TrajectorySVG projects the tracks onto the x-z plane and renders them as
// SVG polylines on a dark background. All tracks share one scale so their
// relative geometry is preserved.
func TrajectorySVG(tracks []Track, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, tr := range tracks {
		for _, p := range tr.Points {
			minX = math.Min(minX, float64(p.X()))
			maxX = math.Max(maxX, float64(p.X()))
			minZ = math.Min(minZ, float64(p.Z()))
			maxZ = math.Max(maxZ, float64(p.Z()))
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	spanX := maxX - minX
	spanZ := maxZ - minZ
	if spanX <= 0 || spanZ <= 0 || math.IsInf(spanX, 0) || math.IsInf(spanZ, 0) {
		sb.WriteString("</svg>\n")
		return sb.String()
	}

	scale := math.Min(
		(float64(width)-2*margin)/spanX,
		(float64(height)-2*margin)/spanZ,
	)

	for _, tr := range tracks {
		if len(tr.Points) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1" points="`, hexColor(tr.Color)))
		for i, p := range tr.Points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			px := margin + (float64(p.X())-minX)*scale
			// SVG y grows downward; flip z so the attractor sits upright.
			py := float64(height) - margin - (float64(p.Z())-minZ)*scale
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func hexColor(c mgl32.Vec3) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.X()), channel(c.Y()), channel(c.Z()))
}

func channel(v float32) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}
