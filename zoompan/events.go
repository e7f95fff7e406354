package zoompan

import "fmt"

type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// Cursor is the pointer affordance the controller asks the host to show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
)

func (c Cursor) String() string {
	if c == CursorGrab {
		return "grab"
	}
	return "default"
}

// Event is one input delivered by the host.
type Event interface {
	event()
}

// WheelEvent carries a position in content coordinates, that is the content
// point under the cursor before any transform is applied.
type WheelEvent struct {
	Position Point
	DeltaY   float64
}

// Pointer events carry viewport positions.
type PointerDownEvent struct {
	Position Point
}

type PointerMoveEvent struct {
	Position    Point
	OverContent bool
}

type PointerUpEvent struct {
	Position Point
	Button   Button
}

// ResetEvent requests a fit of the content to the viewport.
type ResetEvent struct{}

func (WheelEvent) event()       {}
func (PointerDownEvent) event() {}
func (PointerMoveEvent) event() {}
func (PointerUpEvent) event()   {}
func (ResetEvent) event()       {}
