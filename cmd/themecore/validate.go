package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
)

func newValidateCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Decode and validate every configured component without registering anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(loadSettings(v), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runValidate(cmd.Context(), cmd.OutOrStdout(), app, args[0])
		},
	}
}

func runValidate(ctx context.Context, out io.Writer, app *appContext, path string) error {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return err
	}
	env, err := memory.NewEnvironment(ctx, memory.Request{}, memory.WithLogger(app.Log))
	if err != nil {
		return err
	}
	result, err := app.Theme.Validate(ctx, cfg, env.Services())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d components valid\n", path, len(result.Components))
	if len(result.Skipped) > 0 {
		fmt.Fprintf(out, "skipped (not registered): %s\n", strings.Join(result.Skipped, ", "))
	}
	return nil
}
