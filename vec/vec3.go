package vec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vec3 is a three component vector.
type Vec3[T Number] struct {
	X, Y, Z T
}

// New3 returns the vector (x, y, z).
func New3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3[T]) Div(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z} }

// Scale multiplies every component by k.
func (a Vec3[T]) Scale(k T) Vec3[T] { return Vec3[T]{a.X * k, a.Y * k, a.Z * k} }

// ManhattanTo returns the manhattan distance between a and b.
func (a Vec3[T]) ManhattanTo(b Vec3[T]) T {
	return abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)
}

func (a Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", a.X, a.Y, a.Z)
}

// Mod3 returns the component-wise remainder a % b.
func Mod3[T constraints.Integer](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X % b.X, a.Y % b.Y, a.Z % b.Z}
}

// ParseVec3 parses "x,y,z". Exactly three components are required.
func ParseVec3[T Number](s string) (Vec3[T], error) {
	c, err := components[T](s, 3)
	if err != nil {
		return Vec3[T]{}, err
	}
	return Vec3[T]{c[0], c[1], c[2]}, nil
}
