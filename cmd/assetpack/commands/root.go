// Package commands implements the CLI commands for assetpack.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/assetpack/internal/app"
	"go.trai.ch/assetpack/internal/build"
	"go.trai.ch/assetpack/internal/core/domain"
)

// CLI represents the command line interface for assetpack.
type CLI struct {
	app     Application
	logs    LogFormatter
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) (*domain.BuildReport, error)
	Watch(ctx context.Context, opts app.GenerateOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// LogFormatter switches the logger between human and JSON output.
type LogFormatter interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogFormatter) *CLI {
	c := &CLI{app: a, logs: logs}

	rootCmd := &cobra.Command{
		Use:   "assetpack",
		Short: "Embed web sources into a firmware header",
		Long: "assetpack minifies, cache-busts and gzips the web UI sources and writes them\n" +
			"as byte arrays into a C/C++ header. Without a subcommand it runs generate.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if jsonLogs, _ := cmd.Flags().GetBool("log-json"); jsonLogs && c.logs != nil {
				c.logs.SetJSON(true)
			}
		},
		RunE: c.runGenerate,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: discover assetpack.yaml, .jsonc or .json)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write log lines as JSON")
	addNoCacheFlag(rootCmd)

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func addNoCacheFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("no-cache", "n", false, "Regenerate even when the sources are unchanged")
}

func generateOptions(cmd *cobra.Command) app.GenerateOptions {
	configPath, _ := cmd.Flags().GetString("config")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	return app.GenerateOptions{ConfigPath: configPath, NoCache: noCache}
}
