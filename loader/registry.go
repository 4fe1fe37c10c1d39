package loader

import (
	"fmt"
	"sort"
	"sync"

	statemachine "github.com/statelang/go-statemachine"
	"github.com/statelang/go-statemachine/machine"
)

// Installer makes compiled artifacts available under a namespace. An
// installation either completes for the whole artifact set or reports an
// error having installed nothing.
type Installer interface {
	Install(namespace string, arts []*statemachine.Artifact) error
}

// Registry is an in-memory Installer keeping machine definitions keyed by
// namespace and machine name. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]map[string]*machine.Definition
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]map[string]*machine.Definition)}
}

func (r *Registry) Install(namespace string, arts []*statemachine.Artifact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	installed := r.defs[namespace]
	staged := make(map[string]*machine.Definition, len(arts))
	for _, art := range arts {
		name := art.Definition.Name()
		if _, ok := installed[name]; ok {
			return fmt.Errorf("machine %q is already installed in namespace %q", name, namespace)
		}
		if _, ok := staged[name]; ok {
			return fmt.Errorf("machine %q is declared twice in namespace %q", name, namespace)
		}
		staged[name] = art.Definition
	}
	if installed == nil {
		installed = make(map[string]*machine.Definition, len(staged))
		r.defs[namespace] = installed
	}
	for name, def := range staged {
		installed[name] = def
	}
	return nil
}

// Lookup returns the installed machine definition, if any.
func (r *Registry) Lookup(namespace, name string) (*machine.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[namespace][name]
	return def, ok
}

// Machines lists the machine names installed under a namespace, sorted.
func (r *Registry) Machines(namespace string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.defs[namespace]))
	for name := range r.defs[namespace] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
