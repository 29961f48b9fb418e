package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phrazzld/rollcall/internal/cli"
	"github.com/phrazzld/rollcall/internal/service"
)

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "rollcall",
		Short:        "Track students, courses and enrollments in CSV files",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApplication(commandContext(cmd), configFile, cmd.Flags())
			if err != nil {
				return err
			}
			defer app.close()

			return cli.New(app.service, cmd.InOrStdin(), cmd.OutOrStdout(), app.logger).Run(app.ctx)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./rollcall.yaml when present)")
	flags.String("data-dir", ".", "directory holding the CSV files")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(newReportCmd(&configFile))
	return cmd
}

func newReportCmd(configFile *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the course enrollment summary and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unsupported report format %q: want text or yaml", format)
			}

			app, err := newApplication(commandContext(cmd), *configFile, cmd.Flags())
			if err != nil {
				return err
			}
			defer app.close()

			return writeReport(cmd.OutOrStdout(), app.service.Summary(app.ctx), format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func writeReport(w io.Writer, report *service.SummaryReport, format string) error {
	if format != "yaml" {
		return cli.WriteSummary(w, report)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
