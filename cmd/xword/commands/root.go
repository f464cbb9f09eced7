package commands

import (
	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:          "xword",
		Short:        "Crossword format converter and checker",
		SilenceUsage: true,
	}
	root.AddCommand(convertCmd(), checkCmd())
	return root.Execute()
}
