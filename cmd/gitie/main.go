package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/huchen/gitie/internal/config"
	"github.com/huchen/gitie/internal/intent"
	"github.com/huchen/gitie/internal/ui"
)

var version = "dev"

func main() {
	configureLogging()

	args := os.Args[1:]
	switch {
	case len(args) == 1 && args[0] == "--version":
		fmt.Println("gitie " + version)
		return
	case len(args) == 1 && args[0] == "setup":
		os.Exit(runSetup())
	}

	scan := intent.NewScan(args)
	resolved := intent.Resolve(scan)
	log.Debug("resolved invocation",
		"action", resolved.Action,
		"subcommand", resolved.Subcommand,
		"activations", len(scan.ActivationPositions),
	)

	d := newDispatcher(os.Stdout, os.Stderr)
	os.Exit(d.Dispatch(context.Background(), resolved))
}

// configureLogging reads GITIE_LOG (debug|info|warn|error). Logging stays at
// warn by default so passthrough output is byte-for-byte git's own.
func configureLogging() {
	log.SetReportTimestamp(false)
	log.SetLevel(log.WarnLevel)
	raw := strings.TrimSpace(os.Getenv("GITIE_LOG"))
	if raw == "" {
		return
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		log.Warn("ignoring invalid GITIE_LOG value", "value", raw)
		return
	}
	log.SetLevel(level)
}

// runSetup walks the user through the AI endpoint settings and persists them.
// `setup` is not a git subcommand, so intercepting the bare invocation does
// not shadow anything git could do.
func runSetup() int {
	cfg, path, err := config.LoadOrCreate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitie: could not load config: %v\n", err)
		return exitGeneralError
	}

	answers, handled, err := ui.RunSetup(cfg.UI.Backend, ui.SetupAnswers{
		APIURL:    cfg.AI.APIURL,
		ModelName: cfg.AI.ModelName,
		APIKey:    cfg.AI.APIKey,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitie: setup ui failed: %v\n", err)
		return exitGeneralError
	}
	if !handled {
		fmt.Printf("Edit the config file directly: %s\n", path)
		return exitOK
	}
	if !answers.Accepted {
		fmt.Println("Setup cancelled; nothing saved.")
		return exitOK
	}

	if answers.APIURL != "" {
		cfg.AI.APIURL = answers.APIURL
	}
	if answers.ModelName != "" {
		cfg.AI.ModelName = answers.ModelName
	}
	if answers.APIKey != "" {
		cfg.AI.APIKey = answers.APIKey
	}
	if err := config.Save(path, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "gitie: could not save config: %v\n", err)
		return exitGeneralError
	}
	fmt.Printf("Saved settings to %s\n", path)
	return exitOK
}
