// Package vec provides small generic 2D and 3D vectors for grid and space puzzles.
//
// Vectors are plain comparable values: the zero value is the origin, == is
// component-wise equality and a vector can be used directly as a map key.
package vec

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/zjrosen/aoc/aocerr"
	"github.com/zjrosen/aoc/parse"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a two component vector.
type Vec2[T Number] struct {
	X, Y T
}

// New2 returns the vector (x, y).
func New2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X * b.X, a.Y * b.Y} }

// Div divides component-wise. Integer division by a zero component panics.
func (a Vec2[T]) Div(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X / b.X, a.Y / b.Y} }

// Scale multiplies both components by k.
func (a Vec2[T]) Scale(k T) Vec2[T] { return Vec2[T]{a.X * k, a.Y * k} }

// ManhattanTo returns the manhattan distance between a and b.
func (a Vec2[T]) ManhattanTo(b Vec2[T]) T {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func (a Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", a.X, a.Y)
}

// Mod2 returns the component-wise remainder a % b.
func Mod2[T constraints.Integer](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X % b.X, a.Y % b.Y}
}

// ParseVec2 parses "x,y". Exactly two components are required.
func ParseVec2[T Number](s string) (Vec2[T], error) {
	c, err := components[T](s, 2)
	if err != nil {
		return Vec2[T]{}, err
	}
	return Vec2[T]{c[0], c[1]}, nil
}

// components converts the first n comma-separated parts in order, so an
// invalid component is reported before a missing one.
func components[T Number](s string, n int) ([]T, error) {
	parts := strings.Split(s, ",")

	out := make([]T, n)
	for i := range n {
		if i >= len(parts) {
			return nil, aocerr.New("missing component")
		}
		v, err := parse.Value[T](strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, aocerr.Parsef("invalid component %q", parts[i])
		}
		out[i] = v
	}
	if len(parts) > n {
		return nil, aocerr.Parse("too many parts")
	}
	return out, nil
}

func abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
