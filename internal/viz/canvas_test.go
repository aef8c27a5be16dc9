package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/chargesim/internal/engine"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	blank := c.String()
	if strings.ContainsFunc(blank, func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("fresh canvas should be all blank cells")
	}

	c.Set(0, 0)
	if c.String() == blank {
		t.Error("Set had no effect")
	}

	c.Clear()
	if c.String() != blank {
		t.Error("Clear did not restore the blank canvas")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(2, 2)
	blank := c.String()

	c.Set(-1, 0)
	c.Set(0, -3)
	c.Set(4, 0) // sub-pixel width is 4, so x=4 is past the edge
	c.Set(0, 8)

	if c.String() != blank {
		t.Error("out-of-range Set modified the canvas")
	}
}

func TestCanvasSubPixelPacking(t *testing.T) {
	c := NewCanvas(2, 1)
	// All eight dots of the first character cell.
	for y := 0; y < 4; y++ {
		c.Set(0, y)
		c.Set(1, y)
	}
	line := strings.TrimRight(c.String(), "\n")
	if []rune(line)[0] != 0x28FF {
		t.Errorf("fully lit cell = %U, want U+28FF", []rune(line)[0])
	}
	if []rune(line)[1] != 0x2800 {
		t.Error("neighboring cell should stay blank")
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	lit := func(x, y int) bool {
		return c.cells[y/4][x/2]&brailleBits[y%4][x%2] != 0
	}
	if !lit(0, 0) || !lit(19, 39) {
		t.Error("line endpoints not drawn")
	}
}

func TestCameraProjectCenter(t *testing.T) {
	center := engine.Vec3{X: 5, Y: 5, Z: 5}
	cam := NewCamera(center)
	cv := NewCanvas(40, 20)

	x, y, _, ok := cam.Project(center, cv)
	if !ok {
		t.Fatal("view center should project onto the canvas")
	}
	if x != cv.Width || y != cv.Height*2 {
		t.Errorf("center projected to (%d, %d), want canvas middle (%d, %d)",
			x, y, cv.Width, cv.Height*2)
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := NewCamera(engine.Vec3{})
	cv := NewCanvas(40, 20)

	// Past the camera plane along +Z after rotation (none applied).
	if _, _, _, ok := cam.Project(engine.Vec3{Z: 30}, cv); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraZoomClamped(t *testing.T) {
	cam := NewCamera(engine.Vec3{})
	for i := 0; i < 100; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Errorf("zoom in unclamped: %g", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Errorf("zoom out unclamped: %g", cam.Zoom)
	}
}
