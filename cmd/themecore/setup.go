package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/memory"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/sqlite"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/watcher"
	"github.com/alexisbeaulieu97/themecore/internal/tui"
	"github.com/alexisbeaulieu97/themecore/pkg/diff"
)

// runInteractive is swapped in tests.
var runInteractive = func(ctx context.Context, data tui.Data) error {
	return tui.Run(ctx, data)
}

func newSetupCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup <config-file>",
		Short: "Initialize every configured component and fire one simulated request",
		Long: `Setup constructs and initializes each component named in the configuration
against an in-memory host, fires the events of one page request and reports
every host call the components made.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := loadSettings(v)
			if s.Watch && s.Interactive {
				return fmt.Errorf("--watch and --interactive cannot be combined")
			}
			app, err := newAppContext(s, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if s.Watch {
				return watchSetup(cmd.Context(), cmd.OutOrStdout(), app, args[0], s)
			}
			return setupOnce(cmd.Context(), cmd.OutOrStdout(), app, args[0], s)
		},
	}

	cmd.Flags().StringP("request", "r", "", "Request document describing the simulated page")
	cmd.Flags().String("state", "", "SQLite file persisting options, theme mods and post meta between runs")
	cmd.Flags().BoolP("watch", "w", false, "Run again whenever the configuration or request changes")
	cmd.Flags().BoolP("interactive", "i", false, "Browse the recorded host calls")
	_ = v.BindPFlag("request", cmd.Flags().Lookup("request"))
	_ = v.BindPFlag("state", cmd.Flags().Lookup("state"))
	_ = v.BindPFlag("watch", cmd.Flags().Lookup("watch"))
	_ = v.BindPFlag("interactive", cmd.Flags().Lookup("interactive"))

	return cmd
}

func setupOnce(ctx context.Context, out io.Writer, app *appContext, path string, s settings) error {
	data, err := runSetup(ctx, app, path, s)
	if err != nil {
		return err
	}
	if s.Interactive {
		return runInteractive(ctx, *data)
	}
	fmt.Fprintln(out, tui.Report(*data))
	return nil
}

func watchSetup(ctx context.Context, out io.Writer, app *appContext, path string, s settings) error {
	w, err := watcher.New(watcher.Config{Paths: []string{path, s.Request}, Logger: app.Log})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()
	if err := w.Start(ctx); err != nil {
		return err
	}

	var previous string
	for {
		data, err := runSetup(ctx, app, path, s)
		if err != nil {
			app.Log.Error(err, "setup failed")
		} else {
			previous = printChanges(out, previous, *data)
		}
		app.Log.With("config", path).Info("watching for changes")

		select {
		case <-ctx.Done():
			return nil
		case <-w.Changes():
		}
	}
}

// printChanges prints the full report on the first run and a line diff
// against the previous report afterwards. It returns the report printed.
func printChanges(out io.Writer, previous string, data tui.Data) string {
	if data.Result != nil {
		data.Result.Duration = 0
	}
	current := tui.Report(data)
	if previous == "" {
		fmt.Fprintln(out, current)
		return current
	}

	changes, stats := diff.Lines(previous, current, "previous run", "this run")
	if changes == "" {
		fmt.Fprintln(out, "no changes since the previous run")
		return current
	}
	fmt.Fprintf(out, "%s(%s lines)\n", changes, stats)
	return current
}

func runSetup(ctx context.Context, app *appContext, path string, s settings) (*tui.Data, error) {
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, err
	}
	req, err := loadRequest(s.Request)
	if err != nil {
		return nil, err
	}

	opts := []memory.Option{memory.WithLogger(app.Log)}
	if s.State != "" {
		store, err := sqlite.Open(ctx, s.State, app.Log)
		if err != nil {
			return nil, err
		}
		defer func() { _ = store.Close() }()
		opts = append(opts, memory.WithStore(store))
	}

	env, err := memory.NewEnvironment(ctx, req, opts...)
	if err != nil {
		return nil, err
	}

	result, err := app.Theme.Setup(ctx, cfg, env.Services())
	if err != nil {
		return nil, err
	}
	report, err := memory.NewLifecycle(env).Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("fire request events: %w", err)
	}
	for _, hookErr := range report.Errors {
		app.Log.Error(hookErr, "callback failed")
	}

	return &tui.Data{
		Title:  path,
		Result: result,
		Report: report,
		Calls:  env.Trace.Calls(),
	}, nil
}

// loadRequest reads the request document; a relative stylesheet directory is
// taken relative to the document.
func loadRequest(path string) (memory.Request, error) {
	req, err := memory.LoadRequest(path)
	if err != nil {
		return req, err
	}
	dir := req.Theme.StylesheetDir
	if path != "" && dir != "" && !filepath.IsAbs(dir) {
		req.Theme.StylesheetDir = filepath.Join(filepath.Dir(path), dir)
	}
	return req, nil
}
