package zoompan

import "fmt"

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

type Size struct {
	Width, Height float64
}

func (s Size) positive() bool {
	return s.Width > 0 && s.Height > 0
}

// Rect is an axis aligned rectangle given by its upper left corner and size.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Transform maps content coordinates to viewport coordinates:
// the content is scaled first and translated second.
type Transform struct {
	ScaleX, ScaleY         float64
	TranslateX, TranslateY float64
}

func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

func (t Transform) Translate() Point {
	return Point{t.TranslateX, t.TranslateY}
}

// Apply returns the viewport position of a content point.
func (t Transform) Apply(p Point) Point {
	return Point{p.X*t.ScaleX + t.TranslateX, p.Y*t.ScaleY + t.TranslateY}
}

// Inverse returns the content point rendered at viewport position p.
// A zero scale maps everything onto the content origin. Controller never
// produces one; it can only arrive through WithTransform.
func (t Transform) Inverse(p Point) Point {
	if t.ScaleX == 0 || t.ScaleY == 0 {
		return Point{}
	}
	return Point{(p.X - t.TranslateX) / t.ScaleX, (p.Y - t.TranslateY) / t.ScaleY}
}

// Bounds returns the viewport rectangle covered by content of the given size.
// Negative scales are normalized so the rectangle always has a positive size.
func (t Transform) Bounds(content Size) Rect {
	r := Rect{t.TranslateX, t.TranslateY, content.Width * t.ScaleX, content.Height * t.ScaleY}
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Contains reports whether viewport position p lies over the transformed content.
func (t Transform) Contains(p Point, content Size) bool {
	return t.Bounds(content).Contains(p)
}

func (t Transform) String() string {
	return fmt.Sprintf("scale=%.4g translate=(%.4g, %.4g)", t.ScaleX, t.TranslateX, t.TranslateY)
}
