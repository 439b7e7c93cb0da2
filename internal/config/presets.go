package config

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Preset struct {
	Name        string
	Description string
	generate    func(size, lo, hi int, rng *rand.Rand) []int
}

var Presets = map[string]Preset{
	"random": {
		Name:        "random",
		Description: "uniform random values",
		generate:    RandomArray,
	},
	"reversed": {
		Name:        "reversed",
		Description: "random values in descending order",
		generate: func(size, lo, hi int, rng *rand.Rand) []int {
			arr := RandomArray(size, lo, hi, rng)
			slices.Sort(arr)
			slices.Reverse(arr)
			return arr
		},
	},
	"sorted": {
		Name:        "sorted",
		Description: "random values already in ascending order",
		generate: func(size, lo, hi int, rng *rand.Rand) []int {
			arr := RandomArray(size, lo, hi, rng)
			slices.Sort(arr)
			return arr
		},
	},
	"nearly_sorted": {
		Name:        "nearly_sorted",
		Description: "ascending values with a few random swaps",
		generate: func(size, lo, hi int, rng *rand.Rand) []int {
			arr := RandomArray(size, lo, hi, rng)
			slices.Sort(arr)
			if size < 2 {
				return arr
			}
			swaps := max(1, size/10)
			for range swaps {
				i := rng.Intn(size)
				j := rng.Intn(size)
				arr[i], arr[j] = arr[j], arr[i]
			}
			return arr
		},
	},
	"few_unique": {
		Name:        "few_unique",
		Description: "values drawn from three distinct keys",
		generate: func(size, lo, hi int, rng *rand.Rand) []int {
			keys := RandomArray(3, lo, hi, rng)
			arr := make([]int, size)
			for i := range arr {
				arr[i] = keys[rng.Intn(len(keys))]
			}
			return arr
		},
	},
	"classic": {
		Name:        "classic",
		Description: "the fixed array [5 4 3 2 1]",
		generate: func(int, int, int, *rand.Rand) []int {
			return []int{5, 4, 3, 2, 1}
		},
	},
}

// RandomArray returns size values drawn uniformly from [lo, hi].
func RandomArray(size, lo, hi int, rng *rand.Rand) []int {
	if size <= 0 {
		return []int{}
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	arr := make([]int, size)
	for i := range arr {
		arr[i] = lo + rng.Intn(hi-lo+1)
	}
	return arr
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GeneratePreset builds an input array for the named preset using the
// default value range.
func GeneratePreset(name string, size int, rng *rand.Rand) ([]int, error) {
	return generate(name, size, DefaultMin, DefaultMax, rng)
}

func generate(name string, size, lo, hi int, rng *rand.Rand) ([]int, error) {
	p, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return p.generate(size, lo, hi, rng), nil
}

// NewRand returns a generator for seed, or a time-seeded one when seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(seed))
}

// Resolve returns the explicit values when set, otherwise an array generated
// from the preset, size and range.
func (c InputConfig) Resolve() ([]int, error) {
	if len(c.Values) > 0 {
		return slices.Clone(c.Values), nil
	}
	preset := c.Preset
	if preset == "" {
		preset = DefaultPreset
	}
	return generate(preset, c.Size, c.Min, c.Max, NewRand(c.Seed))
}
