package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Run modes.
const (
	ModeTerminal = "terminal"
	ModeHTTP     = "http"
)

// Config holds the application's configuration values.
type Config struct {
	Mode          string // terminal animation or http server
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	Cols          int    // Maze width in cells
	Rows          int    // Maze height in cells
	MazeAlgorithm string // Generator used in terminal mode
	PathAlgorithm string // Path finder used in terminal mode
	Seed          int64  // Random seed; 0 picks one from the clock
	TickRate      int    // Frames per second
	CellSize      int    // Pixels per cell side in PNG output
	OutputPNG     string // Where to save the final frame, empty to skip
	FrameDir      string // Where to dump every frame as PNG, empty to skip
	MaxDimension  int    // Largest width or height the HTTP API accepts
}

// TickInterval converts the tick rate into the delay between frames.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Load initializes and returns the application configuration.
// It loads environment variables from a .env file when one exists.
func Load() (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		Mode:          getEnvWithDefault("MODE", ModeTerminal),
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		MazeAlgorithm: getEnvWithDefault("MAZE_ALGORITHM", "dfs"),
		PathAlgorithm: getEnvWithDefault("PATH_ALGORITHM", "astar"),
		OutputPNG:     getEnvWithDefault("OUTPUT_PNG", ""),
		FrameDir:      getEnvWithDefault("FRAME_DIR", ""),
	}

	ints := []struct {
		key   string
		def   int
		value *int
	}{
		{"REST_PORT", 8080, &cfg.RESTPort},
		{"MAZE_COLS", 25, &cfg.Cols},
		{"MAZE_ROWS", 15, &cfg.Rows},
		{"TICK_RATE", 30, &cfg.TickRate},
		{"CELL_SIZE", 20, &cfg.CellSize},
		{"MAX_DIMENSION", 100, &cfg.MaxDimension},
	}
	for _, i := range ints {
		v, err := getEnvAsIntWithDefault(i.key, i.def)
		if err != nil {
			return Config{}, err
		}
		*i.value = v
	}

	seed, err := getEnvAsIntWithDefault("MAZE_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Mode != ModeTerminal && c.Mode != ModeHTTP {
		return fmt.Errorf("MODE must be %q or %q, got %q", ModeTerminal, ModeHTTP, c.Mode)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("TICK_RATE must be positive, got %d", c.TickRate)
	}
	if c.MaxDimension <= 0 {
		return fmt.Errorf("MAX_DIMENSION must be positive, got %d", c.MaxDimension)
	}
	return nil
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer, or a
// default value if not set. A value that cannot be parsed is an error.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
