// Package script replays recorded gestures through a zoompan.Controller.
package script

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/VictorDenisov/zoompan/zoompan"
)

var ErrUnknownEvent = errors.New("unknown event")

type Dimensions struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (d Dimensions) Size() zoompan.Size {
	return zoompan.Size{Width: d.Width, Height: d.Height}
}

// Entry is one event as written in a script file.
type Entry struct {
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Delta  float64 `yaml:"delta"`
	Button string  `yaml:"button"`
	Over   *bool   `yaml:"over"`
}

// Event converts the entry into a controller event. Move entries are over
// the content unless they say otherwise.
func (e Entry) Event() (zoompan.Event, error) {
	p := zoompan.Point{X: e.X, Y: e.Y}
	switch e.Type {
	case "wheel":
		return zoompan.WheelEvent{Position: p, DeltaY: e.Delta}, nil
	case "down":
		return zoompan.PointerDownEvent{Position: p}, nil
	case "move":
		over := true
		if e.Over != nil {
			over = *e.Over
		}
		return zoompan.PointerMoveEvent{Position: p, OverContent: over}, nil
	case "up":
		b, err := parseButton(e.Button)
		if err != nil {
			return nil, err
		}
		return zoompan.PointerUpEvent{Position: p, Button: b}, nil
	case "reset":
		return zoompan.ResetEvent{}, nil
	}
	return nil, fmt.Errorf("%w: type %q", ErrUnknownEvent, e.Type)
}

func parseButton(s string) (zoompan.Button, error) {
	switch s {
	case "", "left":
		return zoompan.ButtonLeft, nil
	case "middle":
		return zoompan.ButtonMiddle, nil
	case "right":
		return zoompan.ButtonRight, nil
	}
	return 0, fmt.Errorf("%w: button %q", ErrUnknownEvent, s)
}

type Script struct {
	Content  Dimensions     `yaml:"content"`
	Viewport Dimensions     `yaml:"viewport"`
	Config   zoompan.Config `yaml:"config"`
	Events   []Entry        `yaml:"events"`

	events []zoompan.Event
}

func Parse(data []byte) (*Script, error) {
	s := &Script{Config: zoompan.DefaultConfig()}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}
	s.events = make([]zoompan.Event, len(s.Events))
	for i, e := range s.Events {
		ev, err := e.Event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		s.events[i] = ev
	}
	return s, nil
}

func Load(fileName string) (*Script, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", fileName, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", fileName, err)
	}
	return s, nil
}

// Step is the state of the view after one scripted event.
type Step struct {
	Index     int
	Event     zoompan.Event
	Transform zoompan.Transform
	Panning   bool
}

// Replay feeds every event to a fresh controller bound to the script geometry.
func (s *Script) Replay(opts ...zoompan.Option) []Step {
	opts = append([]zoompan.Option{zoompan.WithConfig(s.Config)}, opts...)
	c := zoompan.NewController(opts...)
	c.Bind(s.Content.Size(), s.Viewport.Size())

	steps := make([]Step, 0, len(s.events))
	for i, e := range s.events {
		c.Dispatch(e)
		steps = append(steps, Step{Index: i, Event: e, Transform: c.Transform(), Panning: c.IsPanning()})
		log.Tracef("Step %d %T: %v", i, e, c.Transform())
	}
	return steps
}
