package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xword/internal/format/ipuz"
	"xword/internal/puzzle"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check IN.ipuz",
		Short: "Validate an ipuz puzzle's structure and numbering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			_, err = ipuz.Decode(data)
			var multi *puzzle.MultiError
			if errors.As(err, &multi) {
				for _, section := range multi.SectionNames() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", section, multi.Section(section))
				}
				return fmt.Errorf("found %d problem(s)", multi.Len())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}
