package algorithms

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// Registry maps algorithm keys to factories. Build one with NewRegistry at
// startup and pass it to whatever needs to look algorithms up.
type Registry struct {
	algorithms map[string]func() Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func() Algorithm),
	}

	r.Register("bubble", func() Algorithm { return Bubble{} })
	r.Register("quick", func() Algorithm { return Quick{} })
	r.Register("merge", func() Algorithm { return Merge{} })

	return r
}

func (r *Registry) Register(key string, fn func() Algorithm) {
	r.algorithms[key] = fn
}

func (r *Registry) Get(key string) (Algorithm, error) {
	fn, ok := r.algorithms[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownAlgorithm, key, r.Keys())
	}
	return fn(), nil
}

func (r *Registry) Has(key string) bool {
	_, ok := r.algorithms[key]
	return ok
}

func (r *Registry) Keys() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Infos() []Info {
	keys := r.Keys()
	infos := make([]Info, 0, len(keys))
	for _, k := range keys {
		info := r.algorithms[k]().Info()
		info.Key = k
		infos = append(infos, info)
	}
	return infos
}
