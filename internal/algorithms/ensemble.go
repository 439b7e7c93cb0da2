package algorithms

import (
	"context"
	"sync"

	"github.com/san-kum/sortscope/internal/trace"
)

// Run is one algorithm's recorded timeline within an ensemble.
type Run struct {
	Info     Info
	Timeline *trace.Timeline
}

// Ensemble records every listed algorithm over the same input, one goroutine
// per algorithm.
type Ensemble struct {
	registry *Registry
	keys     []string
}

// NewEnsemble runs the given keys, or every registered algorithm when none
// are given.
func NewEnsemble(r *Registry, keys ...string) *Ensemble {
	if len(keys) == 0 {
		keys = r.Keys()
	}
	return &Ensemble{registry: r, keys: keys}
}

// Run returns one Run per key in key order. Unknown keys fail before any
// algorithm starts.
func (e *Ensemble) Run(ctx context.Context, input []int) ([]Run, error) {
	algs := make([]Algorithm, len(e.keys))
	for i, key := range e.keys {
		alg, err := e.registry.Get(key)
		if err != nil {
			return nil, err
		}
		algs[i] = alg
	}

	runs := make([]Run, len(algs))
	errs := make([]error, len(algs))

	var wg sync.WaitGroup
	for i, alg := range algs {
		wg.Add(1)
		go func(idx int, alg Algorithm) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			info := alg.Info()
			info.Key = e.keys[idx]
			runs[idx] = Run{Info: info, Timeline: alg.Execute(input)}
		}(i, alg)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return runs, nil
}
