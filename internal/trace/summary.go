package trace

// Summary counts the operations recorded in a timeline.
type Summary struct {
	ArrayLen int          `json:"array_len" yaml:"array_len"`
	Total    int          `json:"total_steps" yaml:"total_steps"`
	ByKind   map[Kind]int `json:"by_kind" yaml:"by_kind"`
}

func Summarize(t *Timeline) Summary {
	s := Summary{
		ArrayLen: len(t.initial),
		Total:    len(t.steps),
		ByKind:   make(map[Kind]int, len(kindNames)),
	}
	for _, k := range Kinds() {
		s.ByKind[k] = 0
	}
	for _, step := range t.steps {
		s.ByKind[step.kind]++
	}
	return s
}

func (s Summary) Comparisons() int { return s.ByKind[KindCompare] }

// Writes counts the steps that changed array values.
func (s Summary) Writes() int { return s.ByKind[KindSwap] + s.ByKind[KindOverwrite] }
