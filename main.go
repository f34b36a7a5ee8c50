package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"griddle/internal/config"
	"griddle/internal/eventbus"
	"griddle/internal/loader"
	"griddle/internal/logutil"
	"griddle/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		dataFile   string
		configPath string
		debug      bool
	)
	flag.StringVar(&dataFile, "f", "", "Data file to load (.csv, .tsv or .json)")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	// A bare positional argument also names the data file
	if dataFile == "" && flag.NArg() > 0 {
		dataFile = flag.Arg(0)
	}

	// The TUI owns the terminal, so logs go to a file
	syncLogs := logutil.Setup("griddle.log", debug)
	defer syncLogs()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	// The config file can name the data file when the flag doesn't
	if dataFile == "" {
		dataFile = cfg.DataFile
	}
	if dataFile != "" {
		if abs, err := filepath.Abs(dataFile); err == nil {
			dataFile = abs
		}
	}

	// Loader service subscribes to load requests automatically
	_ = loader.NewService(bus)

	// Create UI model and the Bubble Tea program
	uiModel := ui.NewModel(cfg, bus, dataFile)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logutil.Warnf("event channel full, dropping %s", e.Type())
		}
	}
	for _, et := range []eventbus.EventType{
		eventbus.EventLoadStarted,
		eventbus.EventDataLoaded,
		eventbus.EventLoadFailed,
		eventbus.EventError,
	} {
		bus.Subscribe(et, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Kick off the initial load
	if dataFile != "" {
		bus.Publish(eventbus.LoadRequestedEvent{Path: dataFile})
	}

	// Readiness marker for the e2e harness
	if os.Getenv("GRIDDLE_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	// Run the UI
	logutil.Infof("starting UI (data file: %q)", dataFile)
	if _, err := p.Run(); err != nil {
		logutil.Errorf("program exited with error: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logutil.Infof("UI exited normally")

	// Cleanup
	close(eventChan)
}

// loadConfig resolves the configuration in precedence order: the explicit
// -config path, .griddle.toml in the working directory, then the user
// config directory. Missing files fall back to defaults.
func loadConfig(configSvc config.ConfigService, explicit string) *config.Config {
	if explicit != "" {
		cfg, err := configSvc.LoadFromPath(explicit)
		if err != nil {
			fmt.Printf("Error loading config %s: %v\n", explicit, err)
			os.Exit(1)
		}
		return cfg
	}

	if _, err := os.Stat(".griddle.toml"); err == nil {
		if cfg, err := configSvc.LoadFromPath(".griddle.toml"); err == nil {
			logutil.Infof("loaded config from .griddle.toml")
			return cfg
		} else {
			logutil.Warnf("ignoring .griddle.toml: %v", err)
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		logutil.Warnf("falling back to default config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
