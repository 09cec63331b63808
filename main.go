package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maiconbre/barbershop/app"
	"github.com/maiconbre/barbershop/client"
	"github.com/maiconbre/barbershop/config"
	"github.com/maiconbre/barbershop/style"
)

var version = "dev"

func main() {
	profileFlag := flag.String("profile", "", "Named profile for state isolation (~/.barbershop/profiles/<name>)")
	urlFlag := flag.String("url", "", "Backend base URL (overrides "+config.EnvURL+")")
	shopFlag := flag.String("shop", "", "Barbershop ID to browse (overrides "+config.EnvID+")")
	themeFlag := flag.String("theme", "", "Color theme: dark, light or pole")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(showVersion, "V", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("barbershop %s\n", version)
		os.Exit(0)
	}

	if *noColor {
		os.Setenv("NO_COLOR", "1")
	}

	dir := config.ProfileDir(*profileFlag)
	cfg := config.Resolve(dir, os.Getenv, config.Flags{
		BackendURL:   *urlFlag,
		BarbershopID: *shopFlag,
		Theme:        *themeFlag,
	})

	if cfg.Debug {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			if f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "barbershop"); err == nil {
				defer f.Close()
			}
		}
	} else {
		log.SetOutput(io.Discard)
	}

	// Pick a theme before any rendering. An unknown name from the config
	// file falls back to terminal detection.
	if cfg.Theme == "" || !style.SetTheme(cfg.Theme) {
		if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
			style.SetTheme("dark")
		} else {
			style.SetTheme("light")
		}
	}

	c := client.New(cfg.BackendURL, cfg.BarbershopID)
	if cfg.Token != "" {
		c.SetToken(cfg.Token)
	}

	m, err := app.New(client.NewCachedClient(c, cfg.CacheTTL.Duration), cfg, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "barbershop: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "barbershop: %v\n", err)
		os.Exit(1)
	}
}
