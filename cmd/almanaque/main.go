package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/javiermolinar/almanaque/internal/config"
	"github.com/javiermolinar/almanaque/internal/ui"
)

func main() {
	if err := run(); err != nil {
		// A cancelled pick exits nonzero but prints nothing, so shell
		// substitutions can tell "no choice" from an empty result.
		if !errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
