package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pcremote/internal/app"
	"pcremote/internal/config"
	"pcremote/internal/format"
	"pcremote/internal/logging"
)

var boxStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#10B981")).
	Padding(0, 1)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds a one-shot tool that queries the same upstreams as the
// bot and prints the rendered messages to the terminal.
func newRootCmd() *cobra.Command {
	var configPath string
	var timeout time.Duration
	var upstreams app.Upstreams

	root := &cobra.Command{
		Use:          "fetch",
		Short:        "Print the financial digest or a weather report without starting the bot",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log := logging.New(cfg.Log.Level, cfg.Log.Format)
			upstreams = app.Build(cfg, log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to a config file (optional)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 20*time.Second, "overall deadline")

	root.AddCommand(&cobra.Command{
		Use:   "digest",
		Short: "Fetch Bitcoin, gold, oil and USD to BRL quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			fmt.Fprintln(cmd.OutOrStdout(), boxStyle.Render(format.Digest(upstreams.Digest.Build(ctx))))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "dolar",
		Short: "Fetch the current USD to BRL exchange rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			q := upstreams.FX.Fetch(ctx)
			text, ok := format.Rate(q)
			if !ok {
				return fmt.Errorf("exchange rate unavailable: %v", q.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), boxStyle.Render(text))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "weather [CITY]",
		Short: "Fetch current weather for a city",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			city := strings.Join(args, " ")
			rep, err := upstreams.Weather.Fetch(ctx, city)
			if err != nil {
				return fmt.Errorf("%s: %w", format.WeatherError(err, city), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), boxStyle.Render(format.Weather(rep)))
			return nil
		},
	})

	return root
}
