package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type componentsOptions struct {
	jsonOutput bool
}

type componentJSON struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases,omitempty"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
}

func newComponentsCmd(v *viper.Viper) *cobra.Command {
	opts := &componentsOptions{}

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the components a configuration can name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(loadSettings(v), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			regs := app.Registry.Registrations()
			if opts.jsonOutput {
				payload := make([]componentJSON, 0, len(regs))
				for _, r := range regs {
					payload = append(payload, componentJSON{
						Name:        r.Name,
						Aliases:     r.Aliases,
						Version:     r.Version,
						Description: r.Description,
					})
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(payload)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tALIASES\tVERSION\tDESCRIPTION")
			for _, r := range regs {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", r.Name, strings.Join(r.Aliases, ","), r.Version, r.Description)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
