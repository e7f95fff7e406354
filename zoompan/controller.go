// Package zoompan keeps the scale and translation of a single content
// element inside a viewport in step with pointer input: the wheel zooms
// around the cursor, a drag pans and a middle button release fits the content
// back into the viewport.
package zoompan

import (
	log "github.com/sirupsen/logrus"
)

// Layout is asked for fresh measurements right before the view is reset.
type Layout interface {
	Measure() (content, viewport Size)
}

// CursorSetter receives cursor affordance requests. Hosts may ignore them.
type CursorSetter interface {
	SetCursor(Cursor)
}

type dragSession struct {
	start  Point
	origin Point
}

// Controller is driven from one goroutine at a time. Hosts rendering from
// another goroutine must serialize through their event thread.
type Controller struct {
	transform Transform
	config    Config

	drag      *dragSession
	isPanning bool
	cursor    Cursor

	content, viewport Size
	bound             bool

	layout       Layout
	cursorSetter CursorSetter
}

type Option func(*Controller)

// WithConfig replaces the default configuration. It is not validated.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.config = cfg }
}

func WithLayout(l Layout) Option {
	return func(c *Controller) { c.layout = l }
}

func WithCursorSetter(s CursorSetter) Option {
	return func(c *Controller) { c.cursorSetter = s }
}

func WithTransform(t Transform) Option {
	return func(c *Controller) { c.transform = t }
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		transform: Identity(),
		config:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Transform() Transform {
	return c.transform
}

func (c *Controller) Config() Config {
	return c.config
}

// SetConfig installs cfg for the following events.
// An invalid cfg is rejected and the current configuration stays in place.
func (c *Controller) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Debugf("Config changed: %+v", cfg)
	c.config = cfg
	return nil
}

func (c *Controller) IsPanning() bool {
	return c.isPanning
}

// Dragging reports whether a drag session is open.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

func (c *Controller) Cursor() Cursor {
	return c.cursor
}

// Bind records the content natural size and the viewport size.
func (c *Controller) Bind(content, viewport Size) {
	c.content = content
	c.viewport = viewport
	c.bound = true
}

func (c *Controller) Dispatch(e Event) {
	switch e := e.(type) {
	case WheelEvent:
		c.Wheel(e.Position, e.DeltaY)
	case PointerDownEvent:
		c.PointerDown(e.Position)
	case PointerMoveEvent:
		c.PointerMove(e.Position, e.OverContent)
	case PointerUpEvent:
		c.PointerUp(e.Button)
	case ResetEvent:
		c.ResetView()
	default:
		log.Warnf("Unsupported event %T", e)
	}
}

// Wheel zooms by one step keeping the content point p, given in content
// coordinates, under the cursor. Positive deltaY zooms in.
//
// Zooming out is refused once the scale is at or below MaxZoomOut. The check
// uses the scale before the step, so a scale just above the floor still gets
// one more step down past it. A step that would leave the scale at zero or
// below is refused as well, so the transform stays invertible.
func (c *Controller) Wheel(p Point, deltaY float64) {
	if !c.config.ZoomEnabled {
		return
	}
	zoom := -c.config.ZoomSpeed
	if deltaY > 0 {
		zoom = c.config.ZoomSpeed
	} else if c.transform.ScaleX <= c.config.MaxZoomOut || c.transform.ScaleY <= c.config.MaxZoomOut {
		log.Tracef("Zoom out refused at scale %v", c.transform.ScaleX)
		return
	}
	if zoom < 0 && (c.transform.ScaleX+zoom <= 0 || c.transform.ScaleY+zoom <= 0) {
		log.Tracef("Zoom out refused, scale %v would collapse", c.transform.ScaleX)
		return
	}

	t := c.transform
	absolute := t.Apply(p)
	t.ScaleX += zoom
	t.ScaleY += zoom
	t.TranslateX = absolute.X - p.X*t.ScaleX
	t.TranslateY = absolute.Y - p.Y*t.ScaleY

	log.Tracef("Zoom at %v: %v", p, t)
	c.transform = t
}

// PointerDown starts a pan gesture at viewport position p. The panning flag is
// raised even when panning is disabled; only the drag session depends on it.
func (c *Controller) PointerDown(p Point) {
	c.isPanning = true
	if !c.config.PanEnabled {
		return
	}
	c.drag = &dragSession{start: p, origin: c.transform.Translate()}
	log.Debugf("Drag started at %v from %v", p, c.drag.origin)
	c.setCursor(CursorGrab)
}

// PointerMove moves the content with the pointer. Translation is always
// computed from the session origin, never accumulated.
func (c *Controller) PointerMove(p Point, overContent bool) {
	if !c.isPanning || !overContent || c.drag == nil {
		return
	}
	t := c.transform
	v := c.drag.start.Sub(p)
	t.TranslateX = c.drag.origin.X - v.X
	t.TranslateY = c.drag.origin.Y - v.Y
	log.Tracef("Pan to %v: %v", p, t)
	c.transform = t
}

// PointerUp ends the gesture. Releasing the middle button resets the view
// whatever the zoom and pan settings are.
func (c *Controller) PointerUp(b Button) {
	if c.drag != nil {
		log.Debugf("Drag finished with %v", c.transform)
	}
	c.isPanning = false
	c.drag = nil
	c.setCursor(CursorDefault)

	if b == ButtonMiddle {
		c.ResetView()
	}
}

// ResetView fits the content using the horizontal ratio of content and
// viewport width and centres it. The vertical axis reuses that same scale.
func (c *Controller) ResetView() {
	if c.layout != nil {
		c.Bind(c.layout.Measure())
	}
	if !c.bound || !c.content.positive() || !c.viewport.positive() {
		log.Tracef("Reset skipped, content %v viewport %v", c.content, c.viewport)
		return
	}

	scale := c.content.Width / c.viewport.Width
	c.transform = Transform{
		ScaleX:     scale,
		ScaleY:     scale,
		TranslateX: (c.content.Width - c.viewport.Width*scale) / 2,
		TranslateY: (c.content.Height - c.viewport.Height*scale) / 2,
	}
	log.Debugf("View reset: %v", c.transform)
}

func (c *Controller) setCursor(cur Cursor) {
	c.cursor = cur
	if c.cursorSetter != nil {
		c.cursorSetter.SetCursor(cur)
	}
}
