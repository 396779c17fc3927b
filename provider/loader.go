package provider

import (
	"fmt"
	"plugin"
	"sync"

	"github.com/arloliu/asn1der/errs"
)

// ModuleLoader resolves a Descriptor to the encode/decode function pair
// its module exports, caching opened plugins by path so a second lookup
// for the same module doesn't reopen it.
//
// Go's plugin package only supports Linux, and loaded plugins can never
// be unloaded, so a module is loaded once and its handle kept for the
// process lifetime.
type ModuleLoader struct {
	mu     sync.Mutex
	opened map[string]*plugin.Plugin
}

// NewModuleLoader creates an empty loader.
func NewModuleLoader() *ModuleLoader {
	return &ModuleLoader{opened: make(map[string]*plugin.Plugin)}
}

// Resolve loads (or reuses an already-loaded) plugin at desc.ModulePath
// and looks up the exported symbol named by desc.ModuleFunc, falling back
// to defaultFunc when ModuleFunc is empty. The returned symbol must be
// type-asserted by the caller to the function signature of
// codecfunc.Encoder or codecfunc.Decoder.
func (l *ModuleLoader) Resolve(desc Descriptor, defaultFunc string) (plugin.Symbol, error) {
	funcName := desc.ModuleFunc
	if funcName == "" {
		funcName = defaultFunc
	}

	p, err := l.open(desc.ModulePath)
	if err != nil {
		return nil, err
	}

	sym, err := p.Lookup(funcName)
	if err != nil {
		return nil, fmt.Errorf("%w: provider module %q has no symbol %q: %v", errs.ErrFileNotFound, desc.ModulePath, funcName, err)
	}

	return sym, nil
}

func (l *ModuleLoader) open(path string) (*plugin.Plugin, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if p, ok := l.opened[path]; ok {
		return p, nil
	}

	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening provider module %q: %v", errs.ErrFileNotFound, path, err)
	}

	l.opened[path] = p

	return p, nil
}
