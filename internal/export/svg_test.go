package export

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTrajectorySVGRendersPolylines(t *testing.T) {
	tracks := []Track{
		{
			Points: []mgl32.Vec3{{0, 0, 0}, {1, 0, 1}, {2, 0, 0}},
			Color:  mgl32.Vec3{1, 0, 0},
		},
		{
			Points: []mgl32.Vec3{{0, 0, 2}, {2, 0, 2}},
			Color:  mgl32.Vec3{0, 1, 0},
		},
	}

	svg := TrajectorySVG(tracks, 800, 600)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Fatal("missing xml header")
	}
	if got := strings.Count(svg, "<polyline"); got != 2 {
		t.Fatalf("polylines = %d, want 2", got)
	}
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Fatal("missing red track stroke")
	}
	if !strings.Contains(svg, `stroke="#00ff00"`) {
		t.Fatal("missing green track stroke")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Fatal("unterminated svg document")
	}
}

func TestTrajectorySVGEmptyTracks(t *testing.T) {
	svg := TrajectorySVG(nil, 400, 400)
	if strings.Contains(svg, "<polyline") {
		t.Fatal("no tracks given, polylines rendered anyway")
	}
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Fatal("document must still be well formed")
	}
}

func TestTrajectorySVGSkipsDegenerateTracks(t *testing.T) {
	tracks := []Track{
		{Points: []mgl32.Vec3{{1, 0, 1}, {2, 0, 3}}, Color: mgl32.Vec3{1, 1, 1}},
		{Points: []mgl32.Vec3{{5, 0, 5}}, Color: mgl32.Vec3{1, 1, 1}},
	}
	svg := TrajectorySVG(tracks, 400, 400)
	if got := strings.Count(svg, "<polyline"); got != 1 {
		t.Fatalf("polylines = %d, single-point track must be skipped", got)
	}
}

func TestHexColorClamps(t *testing.T) {
	if got := hexColor(mgl32.Vec3{-1, 2, 0.5}); got != "#00ff80" {
		t.Fatalf("hexColor = %s, want #00ff80", got)
	}
}
