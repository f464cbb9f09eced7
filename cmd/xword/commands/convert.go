package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xword/internal/format/ipuz"
	"xword/internal/format/puz"
)

func convertCmd() *cobra.Command {
	var puzVersion string

	cmd := &cobra.Command{
		Use:   "convert IN.ipuz OUT.puz",
		Short: "Convert an ipuz puzzle to the legacy binary format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cw, err := ipuz.Decode(data)
			if err != nil {
				return err
			}

			var version puz.Version
			switch puzVersion {
			case "1.2":
				version = puz.V12
			case "2.0":
				version = puz.V20
			default:
				return fmt.Errorf("unsupported binary format version %q (want 1.2 or 2.0)", puzVersion)
			}

			out, err := puz.Encode(cw, version)
			if err != nil {
				return err
			}
			return os.WriteFile(args[1], out, 0o644)
		},
	}
	cmd.Flags().StringVar(&puzVersion, "puz-version", "2.0", "binary format version: 1.2 (Windows-1252) or 2.0 (UTF-8)")
	return cmd
}
