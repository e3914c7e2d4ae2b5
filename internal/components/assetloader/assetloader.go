// Package assetloader enqueues or registers the theme's scripts and styles.
package assetloader

import (
	"context"
	"io/fs"
	"path"
	"strings"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "asset-loader"

const defaultMedia = "all"

// AssetLoader handles `scripts` and `styles`.
type AssetLoader struct {
	*component.Base
	cfg        config.AssetLoaderConfig
	hasScripts bool
	hasStyles  bool
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.AssetLoaderConfig
	if err := component.Decode(Name, slice, svc, &cfg, "assets"); err != nil {
		return nil, err
	}
	return &AssetLoader{
		Base:       component.NewBase(Name, svc, log),
		cfg:        cfg,
		hasScripts: slice.Has("scripts"),
		hasStyles:  slice.Has("styles"),
	}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"AssetLoader"},
		Description: "Enqueue or register scripts and styles",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (a *AssetLoader) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := a.Begin(ctx); err != nil {
		return nil, err
	}
	if a.hasScripts {
		a.Binder.Action("wp_enqueue_scripts", "process_scripts", a.processScripts, ports.DefaultPriority, 1)
	}
	if a.hasStyles {
		a.Binder.Action("wp_enqueue_scripts", "process_styles", a.processStyles, ports.DefaultPriority, 1)
	}
	return a.Done()
}

func (a *AssetLoader) processScripts(context.Context, ...any) any {
	for _, asset := range a.cfg.Scripts {
		if !asset.Conditional.Eval(a.Svc.Conditions) {
			a.Log.With("handle", asset.Handle).Debug("script skipped by conditional")
			continue
		}
		script := ports.Script{
			Handle:   asset.Handle,
			Src:      a.src(asset.Src, asset.Theme),
			Deps:     deps(asset.Deps),
			Version:  asset.Version,
			InFooter: asset.Footer,
		}
		if asset.Enqueue {
			a.Svc.Assets.EnqueueScript(script)
		} else {
			a.Svc.Assets.RegisterScript(script)
		}
		if asset.Localize != nil {
			a.Svc.Assets.LocalizeScript(asset.Handle, asset.Localize.Var, asset.Localize.Data)
		}
	}
	return nil
}

func (a *AssetLoader) processStyles(context.Context, ...any) any {
	for _, asset := range a.cfg.Styles {
		if !asset.Conditional.Eval(a.Svc.Conditions) {
			a.Log.With("handle", asset.Handle).Debug("style skipped by conditional")
			continue
		}
		media := asset.Media
		if media == "" {
			media = defaultMedia
		}
		style := ports.Style{
			Handle:  asset.Handle,
			Src:     a.src(asset.Src, asset.Theme),
			Deps:    deps(asset.Deps),
			Version: asset.Version,
			Media:   media,
		}
		if asset.Enqueue {
			a.Svc.Assets.EnqueueStyle(style)
		} else {
			a.Svc.Assets.RegisterStyle(style)
		}
	}
	return nil
}

func (a *AssetLoader) src(src string, theme bool) string {
	if !theme {
		return src
	}
	return Path(a.Svc, src)
}

func deps(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

// Path resolves a path under the stylesheet directory to its URL, preferring
// the `.min.` variant of the file when it exists and SCRIPT_DEBUG is not on.
func Path(svc ports.Services, p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.Contains(p, ".min.") {
		ext := path.Ext(p)
		base := strings.TrimSuffix(path.Base(p), ext)
		minified := path.Join(path.Dir(p), base+".min"+ext)
		if exists(svc.Files, minified) && !scriptDebug(svc.Constants) {
			p = minified
		}
	}

	uri := ""
	if svc.Content != nil {
		uri = strings.TrimSuffix(svc.Content.Theme().StylesheetURI, "/")
	}
	return uri + p
}

func exists(files fs.FS, p string) bool {
	if files == nil {
		return false
	}
	info, err := fs.Stat(files, strings.TrimPrefix(p, "/"))
	return err == nil && !info.IsDir()
}

func scriptDebug(constants ports.Constants) bool {
	if constants == nil {
		return false
	}
	v, ok := constants.Constant("SCRIPT_DEBUG")
	return ok && v == true
}
