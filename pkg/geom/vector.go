package geom

import "math"

// Vector2 is a 2D vector in screen space (Y grows downward)
type Vector2 struct {
	X, Y float64
}

// Vec returns a Vector2 with the given components
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by factor
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{v.X * factor, v.Y * factor}
}

// Length returns the euclidean length of v
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// A zero vector has no direction and is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vector2{v.X / length, v.Y / length}
}

// Rotate returns v rotated by degrees using the standard rotation matrix
func (v Vector2) Rotate(degrees float64) Vector2 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ScaleToLength returns v rescaled to the given length.
// A zero vector cannot be rescaled and is returned unchanged.
func (v Vector2) ScaleToLength(length float64) Vector2 {
	current := v.Length()
	if current == 0 {
		return v
	}
	return v.Scale(length / current)
}

// ClampLength caps the length of v at max, keeping its direction
func (v Vector2) ClampLength(max float64) Vector2 {
	if v.Length() > max {
		return v.ScaleToLength(max)
	}
	return v
}
