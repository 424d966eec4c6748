// Package vmath provides the 2D vector math used by the particle engine.
//
// Angle convention: positive angles rotate counter-clockwise in the standard
// mathematical orientation (x right, y up). The angular fan-out in the
// particle package depends on this sign convention.
package vmath

import (
	"errors"
	"math"
)

// ErrUndefinedDirection is returned when an operation needs a direction
// and the input is the zero vector.
var ErrUndefinedDirection = errors.New("vmath: zero vector has no direction")

// Vector2 is a 2D vector. The zero vector is a valid value but carries
// no direction; Normalize and Rotate reject it.
type Vector2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by a scalar factor
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{v.X * factor, v.Y * factor}
}

// Dot returns the dot product of v and o
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the vector magnitude
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns the squared magnitude without sqrt
func (v Vector2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are exactly zero
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector parallel to v.
// Returns ErrUndefinedDirection for the zero vector instead of dividing by zero.
func Normalize(v Vector2) (Vector2, error) {
	if v.IsZero() {
		return Vector2{}, ErrUndefinedDirection
	}
	n := v.Length()
	return Vector2{v.X / n, v.Y / n}, nil
}

// Rotate returns v rotated by angle radians (counter-clockwise positive),
// preserving the magnitude of v exactly: the unit direction is rotated with
// the standard 2D rotation matrix and rescaled by |v|.
// Returns ErrUndefinedDirection for the zero vector.
func Rotate(v Vector2, angle float64) (Vector2, error) {
	unit, err := Normalize(v)
	if err != nil {
		return Vector2{}, err
	}
	length := v.Length()
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: (unit.X*cos - unit.Y*sin) * length,
		Y: (unit.X*sin + unit.Y*cos) * length,
	}, nil
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
