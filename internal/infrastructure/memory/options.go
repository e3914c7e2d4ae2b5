package memory

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/themecore/internal/ports"
	"github.com/alexisbeaulieu97/themecore/internal/trace"
)

// Options is a map-backed ports.Options.
type Options struct {
	mu        sync.RWMutex
	options   map[string]any
	themeMods map[string]any
	postMeta  map[int]map[string]any
}

// NewOptions returns empty storage.
func NewOptions() *Options {
	return &Options{
		options:   make(map[string]any),
		themeMods: make(map[string]any),
		postMeta:  make(map[int]map[string]any),
	}
}

// GetOption implements ports.Options.
func (o *Options) GetOption(_ context.Context, name string) (any, bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.options[name]
	return v, ok, nil
}

// UpdateOption implements ports.Options.
func (o *Options) UpdateOption(_ context.Context, name string, value any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.options[name] = value
	return nil
}

// GetThemeMod implements ports.Options.
func (o *Options) GetThemeMod(_ context.Context, name string) (any, bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.themeMods[name]
	return v, ok, nil
}

// SetThemeMod implements ports.Options.
func (o *Options) SetThemeMod(_ context.Context, name string, value any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.themeMods[name] = value
	return nil
}

// GetPostMeta implements ports.Options.
func (o *Options) GetPostMeta(_ context.Context, postID int, key string) (any, bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.postMeta[postID][key]
	return v, ok, nil
}

// UpdatePostMeta implements ports.Options.
func (o *Options) UpdatePostMeta(_ context.Context, postID int, key string, value any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.postMeta[postID] == nil {
		o.postMeta[postID] = make(map[string]any)
	}
	o.postMeta[postID][key] = value
	return nil
}

// recordingOptions records writes made through any ports.Options.
type recordingOptions struct {
	inner ports.Options
	trace *trace.Trace
}

const optionsSurface = "options"

func (r recordingOptions) GetOption(ctx context.Context, name string) (any, bool, error) {
	return r.inner.GetOption(ctx, name)
}

func (r recordingOptions) UpdateOption(ctx context.Context, name string, value any) error {
	r.trace.Record(optionsSurface, "update_option", name, value)
	return r.inner.UpdateOption(ctx, name, value)
}

func (r recordingOptions) GetThemeMod(ctx context.Context, name string) (any, bool, error) {
	return r.inner.GetThemeMod(ctx, name)
}

func (r recordingOptions) SetThemeMod(ctx context.Context, name string, value any) error {
	r.trace.Record(optionsSurface, "set_theme_mod", name, value)
	return r.inner.SetThemeMod(ctx, name, value)
}

func (r recordingOptions) GetPostMeta(ctx context.Context, postID int, key string) (any, bool, error) {
	return r.inner.GetPostMeta(ctx, postID, key)
}

func (r recordingOptions) UpdatePostMeta(ctx context.Context, postID int, key string, value any) error {
	r.trace.Record(optionsSurface, "update_post_meta", postID, key, value)
	return r.inner.UpdatePostMeta(ctx, postID, key, value)
}

// seedOptions writes the request's stored state into store, keeping values
// the store already holds.
func seedOptions(ctx context.Context, store ports.Options, req Request) error {
	for name, value := range req.Options {
		if _, ok, err := store.GetOption(ctx, name); err != nil {
			return err
		} else if !ok {
			if err := store.UpdateOption(ctx, name, value); err != nil {
				return err
			}
		}
	}
	for name, value := range req.ThemeMods {
		if _, ok, err := store.GetThemeMod(ctx, name); err != nil {
			return err
		} else if !ok {
			if err := store.SetThemeMod(ctx, name, value); err != nil {
				return err
			}
		}
	}
	for postID, meta := range req.PostMeta {
		for key, value := range meta {
			if _, ok, err := store.GetPostMeta(ctx, postID, key); err != nil {
				return err
			} else if !ok {
				if err := store.UpdatePostMeta(ctx, postID, key, value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
