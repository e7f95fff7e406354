package script

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VictorDenisov/zoompan/zoompan"
)

const gesture = `
content: {width: 400, height: 200}
viewport: {width: 100, height: 100}
config: {zoom_speed: 0.05}
events:
  - {type: wheel, x: 50, y: 50, delta: 1}
  - {type: down, x: 10, y: 10}
  - {type: move, x: 20, y: 15}
  - {type: move, x: 90, y: 90, over: false}
  - {type: move, x: 30, y: 30}
  - {type: up}
  - {type: up, button: middle}
`

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(gesture))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Content.Size() != (zoompan.Size{Width: 400, Height: 200}) {
		t.Errorf("Unexpected content %v", s.Content)
	}
	if s.Config.MaxZoomOut != zoompan.DefaultMaxZoomOut || !s.Config.ZoomEnabled || !s.Config.PanEnabled {
		t.Errorf("Expected defaults to survive, got %+v", s.Config)
	}
	if len(s.events) != 7 {
		t.Fatalf("Expected 7 events, got %d", len(s.events))
	}
	if mv, ok := s.events[3].(zoompan.PointerMoveEvent); !ok || mv.OverContent {
		t.Errorf("Expected move outside content, got %#v", s.events[3])
	}
	if mv, ok := s.events[2].(zoompan.PointerMoveEvent); !ok || !mv.OverContent {
		t.Errorf("Expected move over content by default, got %#v", s.events[2])
	}
	if up, ok := s.events[6].(zoompan.PointerUpEvent); !ok || up.Button != zoompan.ButtonMiddle {
		t.Errorf("Expected middle button release, got %#v", s.events[6])
	}
}

func TestParseUnknown(t *testing.T) {
	cases := []string{
		"events:\n  - {type: pinch}\n",
		"events:\n  - {type: up, button: fourth}\n",
	}
	for _, c := range cases {
		if _, err := Parse([]byte(c)); !errors.Is(err, ErrUnknownEvent) {
			t.Errorf("Expected ErrUnknownEvent for %q, got %v", c, err)
		}
	}
}

func TestParseInvalidConfig(t *testing.T) {
	if _, err := Parse([]byte("config: {zoom_speed: 3}\n")); !errors.Is(err, zoompan.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestReplay(t *testing.T) {
	s, err := Parse([]byte(gesture))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	steps := s.Replay()
	if len(steps) != 7 {
		t.Fatalf("Expected 7 steps, got %d", len(steps))
	}

	zoomed := steps[0].Transform
	if !near(zoomed.ScaleX, 1.05) || !near(zoomed.TranslateX, -2.5) || !near(zoomed.TranslateY, -2.5) {
		t.Errorf("Unexpected zoom step %v", zoomed)
	}
	if !steps[1].Panning {
		t.Errorf("Expected panning after press")
	}

	// Frozen while outside, then relative to the press position.
	if steps[3].Transform != steps[2].Transform {
		t.Errorf("Expected translate to freeze outside content")
	}
	panned := steps[4].Transform
	if !near(panned.TranslateX, 17.5) || !near(panned.TranslateY, 17.5) {
		t.Errorf("Expected translate (17.5, 17.5), got %v", panned)
	}
	if steps[5].Panning {
		t.Errorf("Expected panning to stop on release")
	}

	want := zoompan.Transform{ScaleX: 4, ScaleY: 4, TranslateX: 0, TranslateY: -100}
	if got := steps[6].Transform; got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	s, err := Parse([]byte(gesture))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	a, b := s.Replay(), s.Replay()
	for i := range a {
		if a[i].Transform != b[i].Transform {
			t.Errorf("Step %d differs: %v vs %v", i, a[i].Transform, b[i].Transform)
		}
	}
}

func TestLoadAndReport(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "gesture.yaml")
	if err := os.WriteFile(fileName, []byte(gesture), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(fileName)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := RenderReport(&buf, "gesture", s.Replay()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "translate x") {
		t.Errorf("Expected series names in report")
	}

	out := filepath.Join(dir, "gesture.html")
	if err := WriteReport(out, "gesture", s.Replay()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		t.Errorf("Expected non-empty report, got %v", err)
	}
}
