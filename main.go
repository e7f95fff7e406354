package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/VictorDenisov/zoompan/internal/script"
	"github.com/VictorDenisov/zoompan/internal/tui"
	"github.com/VictorDenisov/zoompan/internal/watch"
	"github.com/VictorDenisov/zoompan/zoompan"
)

// Controls:
//
//	wheel                 zoom around the cursor
//	press and drag        pan
//	middle button release reset the view
func main() {

	var logLevel, configFile string
	var watchConfig bool
	var maxZoomOut, zoomSpeed float64
	var zoomEnabled, panEnabled bool

	var fileName string
	var width, height int64

	var logFile string
	var contentWidth, contentHeight float64

	var scriptFile, reportFile string

	app := &cli.App{
		Name:                 "zoompan",
		Usage:                "Zoom and pan a single content element with the mouse",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Logging level: trace, debug, info, warn, error",
				Value:       "info",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "YAML configuration file",
				Destination: &configFile,
			},
			&cli.BoolFlag{
				Name:        "watch",
				Usage:       "Reload the configuration file when it changes",
				Destination: &watchConfig,
			},
			&cli.Float64Flag{
				Name:        "max-zoom-out",
				Usage:       "Scale below which zooming out stops, in (0, 1]",
				Value:       zoompan.DefaultMaxZoomOut,
				Destination: &maxZoomOut,
			},
			&cli.Float64Flag{
				Name:        "zoom-speed",
				Usage:       "Scale change per wheel step, in (0, 1]",
				Value:       zoompan.DefaultZoomSpeed,
				Destination: &zoomSpeed,
			},
			&cli.BoolFlag{
				Name:        "zoom",
				Usage:       "Enable wheel zoom",
				Value:       true,
				Destination: &zoomEnabled,
			},
			&cli.BoolFlag{
				Name:        "pan",
				Usage:       "Enable drag pan",
				Value:       true,
				Destination: &panEnabled,
			},
		},
		Before: func(cCtx *cli.Context) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "view",
				Aliases: []string{"v"},
				Usage:   "Show a BMP image, or a checkerboard, in a window",
				Action: func(cCtx *cli.Context) error {
					cfg, err := loadConfig(cCtx, configFile, maxZoomOut, zoomSpeed, zoomEnabled, panEnabled)
					if err != nil {
						return err
					}
					watched := ""
					if watchConfig {
						watched = configFile
					}
					MainLoop(fileName, WindowSize{int32(width), int32(height)}, cfg, watched)
					return nil
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "file",
						Aliases:     []string{"f"},
						Usage:       "BMP file to view",
						Destination: &fileName,
					},
					&cli.Int64Flag{
						Name:        "width",
						Usage:       "Initial window width",
						Value:       800,
						Destination: &width,
					},
					&cli.Int64Flag{
						Name:        "height",
						Usage:       "Initial window height",
						Value:       600,
						Destination: &height,
					},
				},
			},
			{
				Name:    "tui",
				Aliases: []string{"t"},
				Usage:   "Zoom and pan a checkerboard in the terminal",
				Action: func(cCtx *cli.Context) error {
					cfg, err := loadConfig(cCtx, configFile, maxZoomOut, zoomSpeed, zoomEnabled, panEnabled)
					if err != nil {
						return err
					}
					if logFile != "" {
						f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
						if err != nil {
							return fmt.Errorf("open log file: %w", err)
						}
						defer f.Close()
						log.SetOutput(f)
					} else {
						log.SetOutput(io.Discard)
					}
					return runTui(zoompan.Size{Width: contentWidth, Height: contentHeight}, cfg, watchConfig, configFile)
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "log-file",
						Usage:       "Write logs to this file instead of discarding them",
						Destination: &logFile,
					},
					&cli.Float64Flag{
						Name:        "content-width",
						Usage:       "Content width in cells",
						Value:       64,
						Destination: &contentWidth,
					},
					&cli.Float64Flag{
						Name:        "content-height",
						Usage:       "Content height in cells",
						Value:       32,
						Destination: &contentHeight,
					},
				},
			},
			{
				Name:    "replay",
				Aliases: []string{"r"},
				Usage:   "Replay a gesture script and chart the transform",
				Action: func(cCtx *cli.Context) error {
					s, err := script.Load(scriptFile)
					if err != nil {
						return err
					}
					steps := s.Replay()
					for _, step := range steps {
						fmt.Printf("%3d %-28T %v\n", step.Index, step.Event, step.Transform)
					}
					if reportFile == "" {
						return nil
					}
					if err := script.WriteReport(reportFile, scriptFile, steps); err != nil {
						return err
					}
					log.Infof("Report written to %s", reportFile)
					return nil
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "script",
						Aliases:     []string{"s"},
						Usage:       "YAML gesture script",
						Destination: &scriptFile,
						Required:    true,
					},
					&cli.StringFlag{
						Name:        "report",
						Usage:       "HTML chart of the transform per event, empty to skip",
						Value:       "trace.html",
						Destination: &reportFile,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig starts from the configuration file, if any, and lets flags given
// on the command line override it.
func loadConfig(cCtx *cli.Context, configFile string, maxZoomOut, zoomSpeed float64, zoomEnabled, panEnabled bool) (zoompan.Config, error) {
	cfg := zoompan.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = zoompan.LoadConfig(configFile); err != nil {
			return zoompan.Config{}, err
		}
	}
	if cCtx.IsSet("max-zoom-out") || configFile == "" {
		cfg.MaxZoomOut = maxZoomOut
	}
	if cCtx.IsSet("zoom-speed") || configFile == "" {
		cfg.ZoomSpeed = zoomSpeed
	}
	if cCtx.IsSet("zoom") || configFile == "" {
		cfg.ZoomEnabled = zoomEnabled
	}
	if cCtx.IsSet("pan") || configFile == "" {
		cfg.PanEnabled = panEnabled
	}
	if err := cfg.Validate(); err != nil {
		return zoompan.Config{}, err
	}
	log.Debugf("Config: %+v", cfg)
	return cfg, nil
}

func runTui(content zoompan.Size, cfg zoompan.Config, watchConfig bool, configFile string) error {
	p := tui.NewProgram(tui.New(content, cfg))

	if watchConfig && configFile != "" {
		w, err := watch.NewConfigWatcher(configFile, func(cfg zoompan.Config) {
			p.Send(tui.ConfigMsg{Config: cfg})
		})
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.Run(ctx)
	}

	_, err := p.Run()
	return err
}
