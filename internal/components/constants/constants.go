// Package constants defines global constants named in configuration.
package constants

import (
	"context"

	"github.com/alexisbeaulieu97/themecore/internal/component"
	"github.com/alexisbeaulieu97/themecore/internal/config"
	"github.com/alexisbeaulieu97/themecore/internal/logger"
	"github.com/alexisbeaulieu97/themecore/internal/ports"
)

// Name is the configuration key of the component.
const Name = "constants"

// Constants defines each `define` entry during Init unless it already exists.
type Constants struct {
	*component.Base
	cfg config.ConstantsConfig
}

// New is the component factory.
func New(slice config.Slice, svc ports.Services, log *logger.Logger) (component.Component, error) {
	var cfg config.ConstantsConfig
	if err := component.Decode(Name, slice, svc, &cfg, "constants"); err != nil {
		return nil, err
	}
	return &Constants{Base: component.NewBase(Name, svc, log), cfg: cfg}, nil
}

// Register adds the component to reg.
func Register(reg *component.Registry) error {
	return reg.Register(component.Registration{
		Name:        Name,
		Aliases:     []string{"Constants"},
		Description: "Define theme constants",
		Version:     "1.0.0",
		Factory:     New,
	})
}

// Init implements component.Component.
func (c *Constants) Init(ctx context.Context) ([]ports.Subscription, error) {
	if err := c.Begin(ctx); err != nil {
		return nil, err
	}
	for _, pair := range c.cfg.Define {
		if c.Svc.Constants.IsDefined(pair.Key) {
			c.Log.With("constant", pair.Key).Debug("constant already defined")
			continue
		}
		c.Svc.Constants.Define(pair.Key, pair.Value)
	}
	return c.Done()
}
