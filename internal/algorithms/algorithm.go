package algorithms

import "github.com/san-kum/sortscope/internal/trace"

// Complexity holds display strings for an algorithm's cost.
type Complexity struct {
	Best    string `json:"best" yaml:"best"`
	Average string `json:"average" yaml:"average"`
	Worst   string `json:"worst" yaml:"worst"`
	Space   string `json:"space" yaml:"space"`
}

type Info struct {
	Key         string     `json:"key" yaml:"key"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Complexity  Complexity `json:"complexity" yaml:"complexity"`
}

// Algorithm records a full sort of values as a timeline. Implementations work
// on a private copy and never modify values.
type Algorithm interface {
	Info() Info
	Execute(values []int) *trace.Timeline
}

func working(values []int) []int {
	arr := make([]int, len(values))
	copy(arr, values)
	return arr
}
