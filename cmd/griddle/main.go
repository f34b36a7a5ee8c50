package main

import (
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

// Slim entry point: no flags, the data file comes from the config.
// The root main.go is the full-featured binary.
func main() {
	syncLogs := logutil.Setup("griddle.log", false)
	defer syncLogs()

	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := resolveConfig(configSvc)

	dataFile := cfg.DataFile
	if dataFile != "" {
		if abs, err := filepath.Abs(dataFile); err == nil {
			dataFile = abs
		}
	}

	_ = loader.NewService(bus)

	uiModel := ui.NewModel(cfg, bus, dataFile)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

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

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if dataFile != "" {
		bus.Publish(eventbus.LoadRequestedEvent{Path: dataFile})
	}

	if _, err := p.Run(); err != nil {
		logutil.Errorf("program exited with error: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}

// resolveConfig checks the working directory before the user config dir.
func resolveConfig(configSvc config.ConfigService) *config.Config {
	if _, err := os.Stat(".griddle.toml"); err == nil {
		if cfg, err := configSvc.LoadFromPath(".griddle.toml"); err == nil {
			return cfg
		}
	}
	cfg, err := configSvc.Load()
	if err != nil {
		logutil.Warnf("falling back to default config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}
