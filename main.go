// hookchat TUI - A terminal chat client for webhook-backed assistants.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hookchat-tui/internal/config"
	"github.com/jeranaias/hookchat-tui/internal/ui/chat"
	"github.com/jeranaias/hookchat-tui/internal/ui/styles"
	"github.com/jeranaias/hookchat-tui/internal/webhook"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to a config file (default ~/.hookchat/config.toml)")
		endpoint    = flag.String("webhook", "", "webhook URL (overrides config)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("hookchat %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// Load configuration at startup
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// CLI args override config
	if *endpoint != "" {
		cfg.WebhookURL = *endpoint
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	config.SetGlobal(cfg)

	// Debug logging goes to a file; the terminal belongs to the TUI
	if cfg.UI.DebugLog {
		f, err := tea.LogToFile("hookchat-debug.log", "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	// Initialize the theme
	theme := styles.NewTheme()

	// Create the webhook client with config values
	client := webhook.NewClientWithConfig(&webhook.ClientConfig{
		Endpoint: cfg.WebhookURL,
		Timeout:  cfg.Timeout(),
	})

	m := chat.NewWithClient(theme, client)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support for viewport scrolling
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running hookchat: %v\n", err)
		os.Exit(1)
	}
}
