package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSuffix is the file suffix DirProvider resolves module names against.
const DefaultSuffix = ".smachine"

// Module is one unit of DSL source handed to the compiler.
type Module struct {
	Name   string
	Source string
	Path   string // origin path, empty when the source is not file-backed
}

// Provider locates DSL source text by module name. The compiler core never
// touches the filesystem; all source location goes through a Provider.
type Provider interface {
	Load(name string) (Module, error)
}

// DirProvider resolves `<name><Suffix>` files across a directory search
// path, first hit wins.
type DirProvider struct {
	Dirs   []string
	Suffix string // defaults to DefaultSuffix
}

func (p *DirProvider) Load(name string) (Module, error) {
	suffix := p.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	for _, dir := range p.Dirs {
		path := filepath.Join(dir, name+suffix)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Module{}, err
		}
		return Module{Name: name, Source: string(data), Path: path}, nil
	}
	return Module{}, fmt.Errorf("module %q not found under [%s]", name, strings.Join(p.Dirs, ", "))
}

// SourceProvider serves in-memory sources; mostly for tests and embedding.
type SourceProvider map[string]string

func (p SourceProvider) Load(name string) (Module, error) {
	src, ok := p[name]
	if !ok {
		return Module{}, fmt.Errorf("module %q not found", name)
	}
	return Module{Name: name, Source: src}, nil
}
