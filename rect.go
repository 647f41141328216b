package textmeasure

import (
	"math"

	"github.com/gogpu/textmeasure/shape"
)

// IRect is an integer rectangle in a y-down coordinate space.
type IRect struct {
	Left, Top, Right, Bottom int
}

// Width returns the rectangle width.
func (r IRect) Width() int { return r.Right - r.Left }

// Height returns the rectangle height.
func (r IRect) Height() int { return r.Bottom - r.Top }

// Empty reports whether the rectangle encloses no area.
func (r IRect) Empty() bool { return r.Left >= r.Right || r.Top >= r.Bottom }

// roundOut returns the smallest integer rectangle containing r.
func roundOut(r shape.Rect) IRect {
	return IRect{
		Left:   int(math.Floor(r.MinX)),
		Top:    int(math.Floor(r.MinY)),
		Right:  int(math.Ceil(r.MaxX)),
		Bottom: int(math.Ceil(r.MaxY)),
	}
}
