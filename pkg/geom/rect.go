package geom

// Rect is an axis-aligned rectangle described by its top-left corner and size
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a rectangle of the given size centred on c
func RectAround(c Vector2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// OverlapsCircle reports whether the circle at c with the given radius
// intersects r
func (r Rect) OverlapsCircle(c Vector2, radius float64) bool {
	nearestX := clamp(c.X, r.X, r.X+r.W)
	nearestY := clamp(c.Y, r.Y, r.Y+r.H)
	dx, dy := c.X-nearestX, c.Y-nearestY
	return dx*dx+dy*dy < radius*radius
}

// Center returns the centre point of r
func (r Rect) Center() Vector2 {
	return Vector2{r.X + r.W/2, r.Y + r.H/2}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
