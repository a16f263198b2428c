package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		FormatError(os.Stderr, err, ShouldUseColor(a.noColor))
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zsh-ssh-hosts",
		Short: "List SSH host aliases with their resolved hostnames and descriptions",
		Long: `Reads an ssh_config style file and prints one line per Host alias:

    alias|->|hostname|[description]

Descriptions come from "#_desc <text>" comment lines inside a Host block.
A Hostname line before any Host line is used for every host without its own.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&a.file, "file", "f", "", "Path to ssh config ('-' for stdin; default: piped stdin or ~/.ssh/config)")
	flags.StringVar(&a.filter, "filter", "", "Only list hosts whose alias or hostname fuzzy-matches this query")
	flags.StringVar(&a.format, "format", formatText, "Output format: 'text' or 'yaml'")
	flags.BoolVar(&a.watch, "watch", false, "Re-print the host list whenever the config file changes")
	flags.BoolVar(&a.noDiagnostics, "no-diagnostics", false, "Do not write per-host diagnostics to stderr")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug output")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	return rootCmd
}
