package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/communiteer/welcomehub/internal/form"
	"github.com/communiteer/welcomehub/internal/kiosk"
	"github.com/communiteer/welcomehub/internal/pkg/i18n"
)

func main() {
	app := &cli.App{
		Name:  "kiosk",
		Usage: "run the Welcome Hub check-in desk in a terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "endpoint",
				Usage:   "base URL of the submission server",
				Value:   "http://localhost:8080",
				EnvVars: []string{"KIOSK_ENDPOINT"},
			},
			&cli.StringFlag{
				Name:    "lang",
				Usage:   "form language (en, es, zh, vi, ar)",
				Value:   i18n.BaseLocale,
				EnvVars: []string{"KIOSK_LANG"},
			},
			&cli.StringFlag{
				Name:  "form",
				Usage: "which form to show: checkin or eoi",
				Value: "checkin",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "request timeout",
				Value: 15 * time.Second,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error running kiosk: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	endpoint := form.NewHTTPEndpoint(c.String("endpoint"), c.Duration("timeout"))
	opts := form.Options{Lang: c.String("lang")}

	var model tea.Model
	switch c.String("form") {
	case "checkin":
		model = kiosk.NewCheckinApp(form.NewCheckinForm(endpoint, opts), kiosk.WithContext(c.Context))
	case "eoi":
		model = kiosk.NewEoiApp(form.NewEoiForm(endpoint, opts), kiosk.WithContext(c.Context))
	default:
		return fmt.Errorf("unknown form %q (want checkin or eoi)", c.String("form"))
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
