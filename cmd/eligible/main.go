package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"eligible/internal/config"
	"eligible/internal/eventbus"
	"eligible/internal/ui"
)

func main() {
	// Parse command line arguments
	var targetDir string
	var startInGrid bool
	flag.StringVar(&targetDir, "dir", "", "Directory holding "+config.FileName)
	flag.StringVar(&targetDir, "d", "", "Directory holding "+config.FileName+" (shorthand)")
	flag.BoolVar(&startInGrid, "grid", false, "Start in the grid instead of the list")
	flag.Parse()

	// If no directory specified, check for remaining args
	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}

	// If still no directory, use current directory
	if targetDir == "" {
		var err error
		targetDir, err = os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
	}

	// Resolve to absolute path
	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logFile, err := os.OpenFile("eligible.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(absDir, bus)
	cfg, err := loadOrCreateConfig(configSvc, absDir)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if startInGrid {
		cfg.UI.StartInGrid = true
	}

	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(cfg, bus)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

func loadOrCreateConfig(configSvc config.ConfigService, targetDir string) (*config.Config, error) {
	configPath := filepath.Join(targetDir, config.FileName)

	// Check if config exists
	if _, err := os.Stat(configPath); err == nil {
		cfg, err := configSvc.Load()
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", configPath)
		return cfg, nil
	}

	// No config - write the defaults so they can be edited
	log.Printf("Creating new config in %s", targetDir)
	cfg := config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	return cfg, nil
}
