package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"eventroster/config"
	"eventroster/internal/domain"
	"eventroster/internal/services"
	"eventroster/internal/tui"
)

func newViewCmd() *cobra.Command {
	var (
		viewer string
		email  string
		roles  []string
	)
	cmd := &cobra.Command{
		Use:   "view <eventID>",
		Short: "Show an event and its roster in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(viewer) == "" {
				return fmt.Errorf("--viewer is required")
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// The terminal belongs to the UI; keep logs out of it.
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			// Query the background color before the program owns stdin.
			_ = lipgloss.HasDarkBackground()

			nav := &services.RecordingNavigator{}
			view := a.detailView(domain.Viewer{Username: viewer, Email: email, Roles: roles}, nav)
			defer view.Close()

			final, err := tea.NewProgram(tui.New(cmd.Context(), view, nav.Take, args[0])).Run()
			if err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			if m, ok := final.(tui.Model); ok && m.NavigatedTo() != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Returning to the event list (%s)\n", m.NavigatedTo())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&viewer, "viewer", "", "username of the person viewing the event")
	cmd.Flags().StringVar(&email, "email", "", "viewer email, used for cancellation notices")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "viewer role (repeatable)")
	return cmd
}
