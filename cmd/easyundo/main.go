package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Zaphoood/easyundo/src/config"
	"github.com/Zaphoood/easyundo/src/tui"
	"github.com/Zaphoood/easyundo/src/util"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath, err := util.ParseCommandLineArgs(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}

	if len(cfg.DebugLog) > 0 {
		f, err := tea.LogToFile(cfg.DebugLog, "easyundo")
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		// The terminal belongs to the TUI
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(tui.NewEditor(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("ERROR: %s\n", err)
		fmt.Printf("Error: %s\n", err)
		os.Exit(1)
	}
}
