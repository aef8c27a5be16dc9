package viz

import (
	"math"

	"github.com/san-kum/chargesim/internal/engine"
)

// Camera projects simulation space onto the canvas: translate to the view
// center, rotate around X then Y, then apply a simple perspective divide.
type Camera struct {
	Center     engine.Vec3
	Distance   float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera(center engine.Vec3) *Camera {
	return &Camera{Center: center, Distance: 25, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p engine.Vec3) engine.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project maps a world point to canvas sub-pixel coordinates. The returned
// depth orders points back to front; ok is false when the point falls
// behind the camera or outside the canvas.
func (c *Camera) Project(p engine.Vec3, cv *Canvas) (x, y int, depth float64, ok bool) {
	rot := c.rotate(p.Sub(c.Center)).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)

	sw, sh := cv.Width*2, cv.Height*4
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 14.0

	x = int(rot.X*scale*pScale) + sw/2
	y = int(-rot.Y*scale*pScale) + sh/2
	return x, y, rot.Z, x >= 0 && x < sw && y >= 0 && y < sh
}
