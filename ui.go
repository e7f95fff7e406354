package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VictorDenisov/zoompan/internal/watch"
	"github.com/VictorDenisov/zoompan/zoompan"
)

type WindowSize struct {
	Width, Height int32
}

const (
	Fps = 60

	// Keeps the SDL thread free for sdl.Do calls from the render and config loops.
	eventWaitMs = 10
)

func MainLoop(fileName string, windowSize WindowSize, cfg zoompan.Config, configFile string) {
	done := make(chan struct{})
	renderLoopComplete := make(chan struct{})
	sdl.Main(func() {
		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				panic(err)
			}
		})
		defer sdl.Do(func() { sdl.Quit() })

		var viewer *Viewer
		sdl.Do(func() {
			viewer = newViewer(fileName, windowSize, cfg)
		})
		defer sdl.Do(func() { viewer.Destroy() })

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if configFile != "" {
			go WatchConfig(ctx, configFile, viewer)
		}

		go RenderLoop(viewer, done, renderLoopComplete)
		EventLoop(viewer, done)
		log.Info("Waiting for render loop")
		<-renderLoopComplete
	})
}

func EventLoop(viewer *Viewer, done chan struct{}) {
	for {
		var event sdl.Event
		sdl.Do(func() {
			event = sdl.WaitEventTimeout(eventWaitMs)
		})
		for event != nil {
			if _, ok := event.(*sdl.QuitEvent); ok {
				log.Info("Quit")
				close(done)
				return
			}
			sdl.Do(func() {
				viewer.handleEvent(event)
				event = sdl.PollEvent()
			})
		}
	}
}

func RenderLoop(viewer *Viewer, done, complete chan struct{}) {
	ticker := time.NewTicker(1000 / Fps * time.Millisecond)
	defer ticker.Stop()
outer:
	for {
		select {
		case <-ticker.C:
			sdl.Do(func() { viewer.Render() })
		case <-done:
			break outer
		}
	}
	complete <- struct{}{}
}

// WatchConfig applies reloaded configurations on the SDL thread, so they land
// between events like any other input.
func WatchConfig(ctx context.Context, configFile string, viewer *Viewer) {
	w, err := watch.NewConfigWatcher(configFile, func(cfg zoompan.Config) {
		// sdl.Do blocks forever once sdl.Main has returned.
		if ctx.Err() != nil {
			return
		}
		sdl.Do(func() {
			if err := viewer.ctrl.SetConfig(cfg); err != nil {
				log.Warnf("Ignoring config: %v", err)
			}
		})
	})
	if err != nil {
		log.Warnf("Config reload disabled: %v", err)
		return
	}
	if err := w.Run(ctx); err != nil {
		log.Warnf("Config watcher stopped: %v", err)
	}
}
