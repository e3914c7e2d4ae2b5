package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	themeerrors "github.com/alexisbeaulieu97/themecore/pkg/errors"
)

// envPrefix namespaces environment overrides, e.g. THEMECORE_LOG_LEVEL.
const envPrefix = "THEMECORE"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "themecore",
		Short:         "themecore sets up a theme from a declarative component configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "Log format: console or json (default: console on a terminal)")
	_ = v.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log-format", cmd.PersistentFlags().Lookup("log-format"))

	cmd.AddCommand(newSetupCmd(v))
	cmd.AddCommand(newValidateCmd(v))
	cmd.AddCommand(newComponentsCmd(v))
	cmd.AddCommand(newMinifyCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Exit codes: 2 for configuration problems, 1 for everything else.
func exitCode(err error) int {
	var (
		parseErr      *themeerrors.ParseError
		validationErr *themeerrors.ValidationError
		componentErr  *themeerrors.ComponentError
	)
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) || errors.As(err, &componentErr) {
		return 2
	}
	return 1
}
