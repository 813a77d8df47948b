package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"halalfull-support/internal/config"
	"halalfull-support/internal/logging"
	"halalfull-support/internal/support"
	"halalfull-support/internal/tui"
	"halalfull-support/internal/web"
)

var fatalStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("9")).
	Bold(true)

// configError marks failures that happen before any UI is shown
type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }

func (e configError) Unwrap() error { return e.err }

func main() {
	root := &cobra.Command{
		Use:          "halalfull-support",
		Short:        config.AppTitle,
		Long:         "Customer support assistant for the HalalFull meat delivery store.\nRuns the terminal UI by default; use `serve` for the embeddable web widget.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the support widget and its JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return runServer(cmd.Context(), addr)
		},
	}
	serveCmd.Flags().String("addr", "", "Listen address (overrides SUPPORT_LISTEN_ADDR)")
	root.AddCommand(serveCmd)
	root.SilenceErrors = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()

	if err != nil {
		var cerr configError
		if errors.As(err, &cerr) {
			fmt.Fprintln(os.Stderr, fatalStyle.Render("ERROR: "+cerr.Error()))
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		}
		os.Exit(1)
	}
}

// newService builds the support service for cfg
func newService(ctx context.Context, cfg *config.Config) (*support.Service, error) {
	client, err := cfg.NewCompletionClient(ctx)
	if err != nil {
		return nil, configError{err}
	}

	log.Info().
		Str("provider", cfg.Provider).
		Str("model", client.Model()).
		Msg("completion client ready")
	return support.NewService(client), nil
}

func runTUI(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return configError{err}
	}

	// The terminal belongs to the TUI, so logs go to a file or nowhere
	w, closeLog, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return configError{err}
	}
	defer closeLog()
	logging.Setup(cfg.LogLevel, w)

	svc, err := newService(ctx, cfg)
	if err != nil {
		return err
	}

	return tui.Start(ctx, svc, config.LoadPreferences())
}

func runServer(ctx context.Context, addr string) error {
	cfg, err := config.Load()
	if err != nil {
		return configError{err}
	}
	logging.Setup(cfg.LogLevel, os.Stderr)

	svc, err := newService(ctx, cfg)
	if err != nil {
		return err
	}

	if addr == "" {
		addr = cfg.ListenAddr
	}
	return web.NewServer(svc).ListenAndServe(ctx, addr)
}
