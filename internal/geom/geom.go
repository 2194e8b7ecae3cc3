// Package geom holds the integer geometry used by the preview layout.
// Rects are stored as origin plus size; Right and Bottom are exclusive.
package geom

import "image"

type Point struct {
	X int
	Y int
}

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Neg() Point        { return Point{X: -p.X, Y: -p.Y} }
func (p Point) Mul(k int) Point   { return Point{X: p.X * k, Y: p.Y * k} }

type Size struct {
	W int
	H int
}

func (s Size) Empty() bool    { return s.W <= 0 || s.H <= 0 }
func (s Size) Mul(k int) Size { return Size{W: s.W * k, H: s.H * k} }

type Margins struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (m Margins) Add(o Margins) Margins {
	return Margins{
		Left:   m.Left + o.Left,
		Top:    m.Top + o.Top,
		Right:  m.Right + o.Right,
		Bottom: m.Bottom + o.Bottom,
	}
}

type Rect struct {
	X int
	Y int
	W int
	H int
}

func R(x, y, w, h int) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func FromPointSize(p Point, s Size) Rect { return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H} }

func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Size() Size     { return Size{W: r.W, H: r.H} }
func (r Rect) Right() int     { return r.X + r.W }
func (r Rect) Bottom() int    { return r.Y + r.H }
func (r Rect) Empty() bool    { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// ContainsRect reports whether o lies entirely inside r. Empty rects are
// contained everywhere.
func (r Rect) ContainsRect(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

func (r Rect) Translated(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

func (r Rect) MovedTo(p Point) Rect {
	r.X = p.X
	r.Y = p.Y
	return r
}

func (r Rect) MovedLeft(x int) Rect {
	r.X = x
	return r
}

func (r Rect) MovedTop(y int) Rect {
	r.Y = y
	return r
}

func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (r Rect) Intersects(o Rect) bool { return !r.Intersect(o).Empty() }

// Grow returns r extended outwards by m.
func (r Rect) Grow(m Margins) Rect {
	return Rect{
		X: r.X - m.Left,
		Y: r.Y - m.Top,
		W: r.W + m.Left + m.Right,
		H: r.H + m.Top + m.Bottom,
	}
}

func (r Rect) Scaled(k int) Rect {
	return Rect{X: r.X * k, Y: r.Y * k, W: r.W * k, H: r.H * k}
}

func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func FromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}
