package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the header once",
		Args:  cobra.NoArgs,
		RunE:  c.runGenerate,
	}
	addNoCacheFlag(cmd)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, _ []string) error {
	_, err := c.app.Generate(cmd.Context(), generateOptions(cmd))
	return err
}
