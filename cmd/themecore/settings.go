package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themecore/internal/app/theme"
	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/components"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
)

// settings are the resolved CLI options: flags first, then THEMECORE_*
// environment variables, then defaults.
type settings struct {
	LogLevel    string
	LogFormat   string
	Request     string
	State       string
	Watch       bool
	Interactive bool
}

func loadSettings(v *viper.Viper) settings {
	s := settings{
		LogLevel:    v.GetString("log-level"),
		LogFormat:   strings.ToLower(v.GetString("log-format")),
		Request:     v.GetString("request"),
		State:       v.GetString("state"),
		Watch:       v.GetBool("watch"),
		Interactive: v.GetBool("interactive"),
	}
	if v.GetBool("verbose") {
		s.LogLevel = "debug"
	}
	return s
}

func (s settings) loggerOptions(w io.Writer) (logger.Options, error) {
	opts := logger.Options{
		Level:   s.LogLevel,
		Writer:  w,
		NoColor: !isTerminal(w),
		Fields:  map[string]any{"app": "themecore"},
	}
	switch s.LogFormat {
	case "":
		opts.HumanReadable = isTerminal(w)
	case "console":
		opts.HumanReadable = true
	case "json":
	default:
		return opts, fmt.Errorf("unknown log format %q (expected console or json)", s.LogFormat)
	}
	return opts, nil
}

func isTerminal(w any) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// appContext bundles the long-lived services one command needs.
type appContext struct {
	Log      *logger.Logger
	Registry *component.Registry
	Theme    *theme.Service
}

func newAppContext(s settings, logOut io.Writer) (*appContext, error) {
	opts, err := s.loggerOptions(logOut)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	reg, err := components.NewRegistry(log)
	if err != nil {
		return nil, fmt.Errorf("register components: %w", err)
	}
	return &appContext{
		Log:      log,
		Registry: reg,
		Theme:    theme.NewService(reg, log),
	}, nil
}
