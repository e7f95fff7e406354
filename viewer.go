package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VictorDenisov/zoompan/zoompan"
)

const (
	checkerSize  = 32
	checkerCells = 16
)

// Viewer shows one content texture in a window and routes mouse input to a
// zoompan controller. It is also the controller's layout and cursor host.
type Viewer struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	content zoompan.Size
	cursors map[zoompan.Cursor]*sdl.Cursor

	ctrl *zoompan.Controller
}

func (this *Viewer) Measure() (content, viewport zoompan.Size) {
	w, h := this.window.GetSize()
	return this.content, zoompan.Size{Width: float64(w), Height: float64(h)}
}

func (this *Viewer) SetCursor(c zoompan.Cursor) {
	if cursor, ok := this.cursors[c]; ok {
		sdl.SetCursor(cursor)
	}
}

func (this *Viewer) mousePosition() zoompan.Point {
	mx, my, _ := sdl.GetMouseState()
	return zoompan.Point{X: float64(mx), Y: float64(my)}
}

func (this *Viewer) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			log.Debugf("Window resized to %vx%v", e.Data1, e.Data2)
			this.ctrl.Bind(this.Measure())
		}
	case *sdl.MouseMotionEvent:
		p := zoompan.Point{X: float64(e.X), Y: float64(e.Y)}
		log.Tracef("Mouse position: %v", p)
		this.ctrl.PointerMove(p, this.ctrl.Transform().Contains(p, this.content))

	case *sdl.MouseWheelEvent:
		dy := float64(e.Y)
		if e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED) {
			dy = -dy
		}
		// Wheel positions are handed over in content coordinates.
		p := this.ctrl.Transform().Inverse(this.mousePosition())
		this.ctrl.Wheel(p, dy)
		log.Tracef("Scale factor: %v", this.ctrl.Transform().ScaleX)

	case *sdl.MouseButtonEvent:
		p := zoompan.Point{X: float64(e.X), Y: float64(e.Y)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			this.ctrl.PointerDown(p)
		} else if e.Type == sdl.MOUSEBUTTONUP {
			this.ctrl.PointerUp(sdlButton(e.Button))
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_r {
			this.ctrl.ResetView()
		}
	}
}

func sdlButton(b uint8) zoompan.Button {
	switch b {
	case sdl.BUTTON_MIDDLE:
		return zoompan.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return zoompan.ButtonRight
	}
	return zoompan.ButtonLeft
}

func loadSurface(fileName string) (*sdl.Surface, error) {
	if fileName != "" {
		return sdl.LoadBMP(fileName)
	}
	side := int32(checkerSize * checkerCells)
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, side, side, 32, uint32(sdl.PIXELFORMAT_RGBA8888))
	if err != nil {
		return nil, err
	}
	light := sdl.MapRGB(surface.Format, 242, 242, 242)
	dark := sdl.MapRGB(surface.Format, 0, 160, 0)
	for i := int32(0); i < checkerCells; i++ {
		for j := int32(0); j < checkerCells; j++ {
			color := light
			if (i+j)%2 == 0 {
				color = dark
			}
			rect := &sdl.Rect{i * checkerSize, j * checkerSize, checkerSize, checkerSize}
			if err := surface.FillRect(rect, color); err != nil {
				log.Warnf("Fill of checker cell %v failed: %v", rect, err)
			}
		}
	}
	return surface, nil
}

// newViewer must run on the SDL thread.
func newViewer(fileName string, windowSize WindowSize, cfg zoompan.Config) *Viewer {
	title := fileName
	if title == "" {
		title = "zoompan"
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowSize.Width, windowSize.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		panic(err)
	}

	surface, err := loadSurface(fileName)
	if err != nil {
		panic(err)
	}
	defer surface.Free()
	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		panic(err)
	}

	viewer := &Viewer{
		window:   window,
		renderer: renderer,
		texture:  texture,
		content:  zoompan.Size{Width: float64(surface.W), Height: float64(surface.H)},
		cursors: map[zoompan.Cursor]*sdl.Cursor{
			zoompan.CursorDefault: sdl.CreateSystemCursor(sdl.SystemCursor(sdl.SYSTEM_CURSOR_ARROW)),
			zoompan.CursorGrab:    sdl.CreateSystemCursor(sdl.SystemCursor(sdl.SYSTEM_CURSOR_HAND)),
		},
	}
	viewer.ctrl = zoompan.NewController(
		zoompan.WithConfig(cfg),
		zoompan.WithLayout(viewer),
		zoompan.WithCursorSetter(viewer),
	)
	viewer.ctrl.Bind(viewer.Measure())
	log.Infof("Viewing %v content in %vx%v window", viewer.content, windowSize.Width, windowSize.Height)
	return viewer
}

func (this *Viewer) Render() {
	this.renderer.SetDrawColor(64, 64, 64, 255)
	this.renderer.Clear()

	b := this.ctrl.Transform().Bounds(this.content)
	dst := &sdl.FRect{X: float32(b.X), Y: float32(b.Y), W: float32(b.W), H: float32(b.H)}
	if err := this.renderer.CopyF(this.texture, nil, dst); err != nil {
		log.Warnf("Copy failed: %v", err)
	}

	this.renderer.Present()
}

func (this *Viewer) Destroy() {
	for _, c := range this.cursors {
		sdl.FreeCursor(c)
	}
	this.texture.Destroy()
	this.renderer.Destroy()
	this.window.Destroy()
}
