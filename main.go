package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-mazeviz/api"
	api_i "github.com/beka-birhanu/vinom-mazeviz/api/i"
	mazeapi "github.com/beka-birhanu/vinom-mazeviz/api/maze"
	"github.com/beka-birhanu/vinom-mazeviz/config"
	"github.com/beka-birhanu/vinom-mazeviz/generator"
	logger "github.com/beka-birhanu/vinom-mazeviz/infrastruture/log"
	"github.com/beka-birhanu/vinom-mazeviz/pathfind"
	"github.com/beka-birhanu/vinom-mazeviz/render"
	"github.com/beka-birhanu/vinom-mazeviz/service"
	"github.com/beka-birhanu/vinom-mazeviz/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	cfg            config.Config
	mazeAlgorithm  generator.Algorithm
	pathAlgorithm  pathfind.Algorithm
	raster         *render.Raster
	frameDumper    *render.FrameDumper
	frameRenderer  i.Renderer
	visualizer     *service.Visualizer
	mazeBuilder    i.MazeBuilder
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading config: %v", err))
		os.Exit(1)
	}

	mazeAlgorithm, err = generator.ParseAlgorithm(cfg.MazeAlgorithm)
	if err != nil {
		appLogger.Error(fmt.Sprintf("MAZE_ALGORITHM: %v", err))
		os.Exit(1)
	}
	pathAlgorithm, err = pathfind.ParseAlgorithm(cfg.PathAlgorithm)
	if err != nil {
		appLogger.Error(fmt.Sprintf("PATH_ALGORITHM: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Config loaded")
}

func initRaster() {
	var err error
	raster, err = render.NewRaster(render.Config{CellSize: cfg.CellSize, Palette: render.DefaultPalette})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating raster renderer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Raster renderer initialized")
}

func initFrameRenderer() {
	renderers := []i.Renderer{render.NewTerminal(os.Stdout, true)}

	if cfg.FrameDir != "" {
		var err error
		frameDumper, err = render.NewFrameDumper(raster, cfg.FrameDir)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating frame dumper: %v", err))
			os.Exit(1)
		}
		renderers = append(renderers, frameDumper)
		appLogger.Info(fmt.Sprintf("Dumping frames to %s", cfg.FrameDir))
	}

	frameRenderer = service.Tee(renderers...)
}

func initVisualizer() {
	// Frames go to stdout, so the visualizer logs to stderr.
	visualizerLogger, err := logger.New("VISUALIZER", config.ColorCyan, os.Stderr)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating visualizer logger: %v", err))
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	visualizer, err = service.NewVisualizer(service.Config{
		Cols:          cfg.Cols,
		Rows:          cfg.Rows,
		MazeAlgorithm: mazeAlgorithm,
		PathAlgorithm: pathAlgorithm,
		Rand:          rand.New(rand.NewSource(seed)),
		Renderer:      frameRenderer,
		Logger:        visualizerLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating visualizer: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Visualizer initialized with seed %d", seed))
}

func initMazeBuilder() {
	builderLogger, err := logger.New("MAZE-BUILDER", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze builder logger: %v", err))
		os.Exit(1)
	}

	mazeBuilder, err = service.NewBuilder(service.BuilderConfig{
		MaxDimension:  cfg.MaxDimension,
		MazeAlgorithm: mazeAlgorithm,
		PathAlgorithm: pathAlgorithm,
		Logger:        builderLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze builder: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze builder initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeBuilder, raster)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(cfg.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

// playUntilIdle feeds ticks to the visualizer until its current run is over.
func playUntilIdle(ctx context.Context, ticker *time.Ticker) error {
	ticks := make(chan time.Time)
	done := make(chan error, 1)
	go func() {
		done <- visualizer.Run(ctx, ticks)
	}()

	for visualizer.Busy() {
		select {
		case err := <-done:
			return err
		case t := <-ticker.C:
			select {
			case ticks <- t:
			case err := <-done:
				return err
			}
		}
	}

	close(ticks)
	return <-done
}

func runTerminal(ctx context.Context) error {
	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	if err := visualizer.TriggerGeneration(); err != nil {
		return err
	}
	if err := playUntilIdle(ctx, ticker); err != nil {
		return err
	}

	if err := visualizer.TriggerPathfinding(); err != nil {
		return err
	}
	if err := playUntilIdle(ctx, ticker); err != nil {
		return err
	}

	appLogger.Info(fmt.Sprintf("Path length: %d", pathfind.Length(visualizer.Path())))
	if frameDumper != nil {
		appLogger.Info(fmt.Sprintf("Wrote %d frames to %s", frameDumper.Frames(), cfg.FrameDir))
	}

	if cfg.OutputPNG != "" {
		start, end := visualizer.Start(), visualizer.End()
		frame := render.Frame{Grid: visualizer.Grid(), Start: &start, End: &end, Path: visualizer.Path()}
		if err := raster.WriteFile(cfg.OutputPNG, frame); err != nil {
			return err
		}
		appLogger.Info(fmt.Sprintf("Saved maze to %s", cfg.OutputPNG))
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initConfig()
	initRaster()

	switch cfg.Mode {
	case config.ModeHTTP:
		initMazeBuilder()
		initMazeController()
		initRouter()

		// Run HTTP server
		if err := router.Run(); err != nil {
			appLogger.Error(fmt.Sprintf("Starting server: %v", err))
			os.Exit(1)
		}

	default:
		initFrameRenderer()
		initVisualizer()

		if err := runTerminal(ctx); err != nil {
			appLogger.Error(fmt.Sprintf("Running visualizer: %v", err))
			os.Exit(1)
		}
	}
}
