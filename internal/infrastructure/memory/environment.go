package memory

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/alexisbeaulieu97/themecore/internal/guard"
	"github.com/alexisbeaulieu97/themecore/internal/infrastructure/hooks"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
	"github.com/alexisbeaulieu97/themecore/internal/trace"
)

// Environment wires a dispatcher, a host and its storage around one trace.
type Environment struct {
	Request    Request
	Trace      *trace.Trace
	Hooks      *hooks.Dispatcher
	Host       *Host
	Customizer *Customizer
	Callables  *Callables
	Options    ports.Options
	Resolver   *guard.Table
	Files      fs.FS
}

type envOptions struct {
	logger *logger.Logger
	store  ports.Options
	files  fs.FS
	strict bool
}

// Option configures NewEnvironment.
type Option func(*envOptions)

// WithLogger sets the logger used by the dispatcher.
func WithLogger(log *logger.Logger) Option {
	return func(o *envOptions) { o.logger = log }
}

// WithStore replaces the in-memory option storage.
func WithStore(store ports.Options) Option {
	return func(o *envOptions) { o.store = store }
}

// WithFiles sets the filesystem rooted at the stylesheet directory.
func WithFiles(files fs.FS) Option {
	return func(o *envOptions) { o.files = files }
}

// WithStrictCallables makes unknown callback names fail to resolve instead of
// resolving to recording stubs.
func WithStrictCallables() Option {
	return func(o *envOptions) { o.strict = true }
}

// NewEnvironment builds a host for req and seeds its storage.
func NewEnvironment(ctx context.Context, req Request, opts ...Option) (*Environment, error) {
	var o envOptions
	for _, opt := range opts {
		opt(&o)
	}

	tr := trace.New()
	dispatcher := hooks.NewDispatcher(o.logger, tr)
	host := NewHost(req, dispatcher, tr)

	store := o.store
	if store == nil {
		store = NewOptions()
	}
	if err := seedOptions(ctx, store, req); err != nil {
		return nil, fmt.Errorf("seed stored state: %w", err)
	}

	files := o.files
	if files == nil {
		files = stylesheetFS(req.Theme.StylesheetDir)
	}

	env := &Environment{
		Request:    req,
		Trace:      tr,
		Hooks:      dispatcher,
		Host:       host,
		Customizer: NewCustomizer(tr),
		Callables:  NewCallables(tr, !o.strict),
		Options:    recordingOptions{inner: store, trace: tr},
		Resolver:   resolverTable(req, host.conds),
		Files:      files,
	}
	env.defineHostFunctions()
	return env, nil
}

// Services returns the surfaces handed to components.
func (e *Environment) Services() ports.Services {
	return ports.Services{
		Hooks:        e.Hooks,
		Callables:    e.Callables,
		Assets:       e.Host,
		Constants:    e.Host,
		Kirki:        e.Host,
		Options:      e.Options,
		Content:      e.Host,
		Features:     e.Host,
		Layouts:      e.Host,
		Sidebars:     e.Host,
		Widgets:      e.Host,
		Translations: e.Host,
		Query:        e.Host,
		Output:       e.Host,
		MetaBoxes:    e.Host,
		Request:      e.Host,
		Files:        e.Files,
		Conditions:   e.Resolver,
		Values:       e.Resolver,
	}
}

// defineHostFunctions gives a few framework template functions real output so
// a rendered page shows where they ran.
func (e *Environment) defineHostFunctions() {
	e.Callables.Define("genesis_do_post_title", func(ctx context.Context, _ ...any) any {
		post, ok := e.Host.Post(e.Host.CurrentPostID())
		if !ok {
			return nil
		}
		e.Host.Markup(ctx, ports.MarkupArgs{
			Open:    "<h1 %s>",
			Close:   "</h1>",
			Content: post.Title,
			Context: "entry-title",
		})
		return nil
	})
	e.Callables.Define("woocommerce_result_count", func(context.Context, ...any) any {
		e.Host.Write(`<p class="woocommerce-result-count">`)
		e.Host.Write("</p>")
		return nil
	})
	e.Callables.Define("flush_rewrite_rules", func(_ context.Context, args ...any) any {
		e.Trace.Record("rewrite", "flush_rewrite_rules")
		if len(args) > 0 {
			return args[0]
		}
		return nil
	})
}
