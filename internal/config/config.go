package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/overlay-player-control/internal/app"
	"github.com/atomicstack/overlay-player-control/internal/menu"
	"github.com/atomicstack/overlay-player-control/internal/settings"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigDir  = "OVERLAY_PLAYER_CONFIG_DIR"
	envVideosDir  = "OVERLAY_PLAYER_VIDEOS_DIR"
	envPlatform   = "OVERLAY_PLAYER_PLATFORM"
	envWidth      = "OVERLAY_PLAYER_WIDTH"
	envHeight     = "OVERLAY_PLAYER_HEIGHT"
	envShowFooter = "OVERLAY_PLAYER_FOOTER"
	envTrace      = "OVERLAY_PLAYER_TRACE"
	envLogFile    = "OVERLAY_PLAYER_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("overlay-player-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configDir := fs.String("config-dir", env.stringValue(envConfigDir, ""), "directory holding config.json (defaults to the per-user config directory)")
	videosDir := fs.String("videos-dir", env.stringValue(envVideosDir, ""), "bundled video folder used until a folder is chosen")
	platform := fs.String("platform", env.stringValue(envPlatform, string(menu.Current())), "menu layout to build: darwin, linux or windows")
	width := fs.Int("width", env.intValue(envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", env.intValue(envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", env.boolValue(envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", env.boolValue(envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", env.stringValue(envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	dir := *configDir
	if dir == "" {
		resolved, err := settings.DefaultDir()
		if err != nil {
			return Config{}, err
		}
		dir = resolved
	}
	videos := *videosDir
	if videos == "" {
		videos = defaultVideosDir()
	}

	cfg := Config{
		App: app.Config{
			ConfigDir:  dir,
			VideosDir:  videos,
			Platform:   menu.Platform(strings.ToLower(strings.TrimSpace(*platform))),
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"configDir": dir,
			"videosDir": videos,
			"platform":  *platform,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// defaultVideosDir is the "videos" folder next to the executable.
func defaultVideosDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "videos"
	}
	return filepath.Join(filepath.Dir(exe), "videos")
}

// environment is the process environment keyed by variable name. Empty and
// unparsable values fall back to the flag default.
type environment map[string]string

func parseEnv(environ []string) environment {
	env := make(environment, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = strings.TrimSpace(value)
	}
	return env
}

func (e environment) stringValue(key, fallback string) string {
	if v := e[key]; v != "" {
		return v
	}
	return fallback
}

func (e environment) intValue(key string, fallback int) int {
	if parsed, err := strconv.Atoi(e[key]); err == nil {
		return parsed
	}
	return fallback
}

func (e environment) boolValue(key string, fallback bool) bool {
	if parsed, err := strconv.ParseBool(e[key]); err == nil {
		return parsed
	}
	return fallback
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects an unknown menu platform and a relative config directory.
func Validate(cfg Config) error {
	if !cfg.App.Platform.Valid() {
		return fmt.Errorf("unknown platform %q (want darwin, linux or windows)", cfg.App.Platform)
	}
	if !filepath.IsAbs(cfg.App.ConfigDir) {
		return fmt.Errorf("config dir must be absolute (got %q)", cfg.App.ConfigDir)
	}
	return nil
}
