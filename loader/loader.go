// Package loader connects the statemachine compiler to its two boundary
// collaborators: a Provider that locates DSL source text and an Installer
// that makes compiled machines available under a namespace.
package loader

import (
	"context"
	"fmt"
	"log/slog"

	statemachine "github.com/statelang/go-statemachine"
)

// Loader runs Provider -> compile -> Installer for one module at a time.
// Each Load call is independent; the loader holds no state between calls.
type Loader struct {
	Provider  Provider
	Installer Installer
	Logger    Logger // optional, defaults to slog.Default
}

func New(p Provider, i Installer) *Loader {
	return &Loader{Provider: p, Installer: i}
}

// Load locates the named module, compiles every statemachine block in it,
// and installs the resulting machines under the module name as namespace.
// On a compile error nothing is installed.
func (l *Loader) Load(ctx context.Context, name string) error {
	log := l.logger(ctx)
	mod, err := l.Provider.Load(name)
	if err != nil {
		log.ErrorContext(ctx, "module source not available", "module", name, "err", err)
		return fmt.Errorf("load %s: %w", name, err)
	}
	arts, err := statemachine.CompileBlocks(mod.Source)
	if err != nil {
		log.ErrorContext(ctx, "compile failed", "module", name, "path", mod.Path, "err", err)
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := l.Installer.Install(name, arts); err != nil {
		log.ErrorContext(ctx, "install failed", "module", name, "err", err)
		return fmt.Errorf("load %s: %w", name, err)
	}
	log.InfoContext(ctx, "module loaded", "module", name, "path", mod.Path, "machines", len(arts))
	return nil
}

func (l *Loader) logger(ctx context.Context) Logger {
	if log, ok := TryFromContext(ctx); ok {
		return log
	}
	if l.Logger != nil {
		return l.Logger
	}
	return NewLogger(slog.Default())
}
