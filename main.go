package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/overlay-player-control/internal/app"
	"github.com/atomicstack/overlay-player-control/internal/config"
	"github.com/atomicstack/overlay-player-control/internal/logging"
	"github.com/atomicstack/overlay-player-control/internal/logging/events"
	"github.com/atomicstack/overlay-player-control/internal/settings"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "overlay-player-control: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles the resolved configuration with process and
// terminal details for the app.start trace.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":         cfg.Args,
		"flags":        flags,
		"config":       cfg,
		"platform":     string(cfg.App.Platform),
		"settingsFile": settings.NewStore(cfg.App.ConfigDir).Path(),
		"tty":          collectTTYDetails(),
	}
	record(payload, "executable", os.Executable)
	record(payload, "cwd", os.Getwd)
	return payload
}

// record stores lookup's value under key, or its error under key+"Error".
func record(payload map[string]interface{}, key string, lookup func() (string, error)) {
	value, err := lookup()
	if err != nil {
		payload[key+"Error"] = err.Error()
		return
	}
	payload[key] = value
}

type ttyDetails struct {
	Detected *ttySize   `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

var stdDescriptors = []struct {
	name string
	file *os.File
}{
	{"stdin", os.Stdin},
	{"stdout", os.Stdout},
	{"stderr", os.Stderr},
}

// collectTTYDetails probes the standard descriptors. The first one with a
// known size is reported as the detected console size.
func collectTTYDetails() ttyDetails {
	details := ttyDetails{Probes: make([]ttyProbe, 0, len(stdDescriptors))}
	for _, d := range stdDescriptors {
		probe := probeTTY(d.name, int(d.file.Fd()))
		if details.Detected == nil && probe.Width > 0 {
			details.Detected = &ttySize{Source: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func probeTTY(name string, fd int) ttyProbe {
	probe := ttyProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width = width
	probe.Height = height
	return probe
}
