package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themecore/internal/css"
)

func newMinifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minify [file]",
		Short: "Minify a stylesheet the way generated inline CSS is minified",
		Long:  "Minify reads CSS from the given file, or from stdin when no file is given, and prints the minified result.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read stylesheet: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), css.Minify(string(data)))
			return nil
		},
	}
}
