package trace

import "slices"

// ArrayState is the array contents plus the visual annotations that hold
// after some prefix of a timeline's steps has been applied.
type ArrayState struct {
	Values             []int `json:"values" yaml:"values"`
	SortedIndices      []int `json:"sorted_indices" yaml:"sorted_indices"`
	HighlightedIndices []int `json:"highlighted_indices" yaml:"highlighted_indices"`
	PivotIndex         *int  `json:"pivot_index" yaml:"pivot_index"`
	ComparingIndices   []int `json:"comparing_indices" yaml:"comparing_indices"`
}

// Role is the visual category of one array slot, in rendering priority order.
type Role int

const (
	RoleIdle Role = iota
	RoleHighlighted
	RoleComparing
	RolePivot
	RoleSorted
)

func (r Role) String() string {
	switch r {
	case RoleHighlighted:
		return "highlighted"
	case RoleComparing:
		return "comparing"
	case RolePivot:
		return "pivot"
	case RoleSorted:
		return "sorted"
	default:
		return "idle"
	}
}

func NewArrayState(values []int) ArrayState {
	return ArrayState{
		Values:             cloneInts(values),
		SortedIndices:      []int{},
		HighlightedIndices: []int{},
		ComparingIndices:   []int{},
	}
}

// ApplyStep returns the values that result from applying step to current.
// Only swap and overwrite change values; current is never modified.
func (s ArrayState) ApplyStep(step Step, current []int) []int {
	next := cloneInts(current)
	switch step.kind {
	case KindSwap:
		i, j := step.indices[0], step.indices[1]
		next[i], next[j] = next[j], next[i]
	case KindOverwrite:
		next[step.indices[0]] = step.values[0]
	case KindCompare, KindMarkSorted, KindHighlight, KindClearHighlight, KindPivot, KindMerge:
	}
	return next
}

// UpdateAnnotations folds step into the annotation fields. Comparing indices
// are reset on every call, so only a compare step leaves them populated.
func (s *ArrayState) UpdateAnnotations(step Step) {
	s.ComparingIndices = []int{}

	switch step.kind {
	case KindCompare:
		s.ComparingIndices = cloneInts(step.indices)
	case KindMarkSorted:
		for _, idx := range step.indices {
			if !slices.Contains(s.SortedIndices, idx) {
				s.SortedIndices = append(s.SortedIndices, idx)
			}
		}
	case KindHighlight:
		s.HighlightedIndices = cloneInts(step.indices)
	case KindClearHighlight:
		s.HighlightedIndices = slices.DeleteFunc(s.HighlightedIndices, func(idx int) bool {
			return slices.Contains(step.indices, idx)
		})
	case KindPivot:
		p := step.indices[0]
		s.PivotIndex = &p
	case KindSwap, KindOverwrite, KindMerge:
	}
}

func (s ArrayState) Clone() ArrayState {
	c := ArrayState{
		Values:             cloneInts(s.Values),
		SortedIndices:      cloneInts(s.SortedIndices),
		HighlightedIndices: cloneInts(s.HighlightedIndices),
		ComparingIndices:   cloneInts(s.ComparingIndices),
	}
	if s.PivotIndex != nil {
		p := *s.PivotIndex
		c.PivotIndex = &p
	}
	return c
}

func (s ArrayState) IsSorted(i int) bool      { return slices.Contains(s.SortedIndices, i) }
func (s ArrayState) IsHighlighted(i int) bool { return slices.Contains(s.HighlightedIndices, i) }
func (s ArrayState) IsComparing(i int) bool   { return slices.Contains(s.ComparingIndices, i) }
func (s ArrayState) IsPivot(i int) bool       { return s.PivotIndex != nil && *s.PivotIndex == i }

// Role reports how slot i should be drawn.
func (s ArrayState) Role(i int) Role {
	switch {
	case s.IsSorted(i):
		return RoleSorted
	case s.IsPivot(i):
		return RolePivot
	case s.IsComparing(i):
		return RoleComparing
	case s.IsHighlighted(i):
		return RoleHighlighted
	default:
		return RoleIdle
	}
}

// Equal reports whether two states hold the same values and annotations.
func (s ArrayState) Equal(o ArrayState) bool {
	if (s.PivotIndex == nil) != (o.PivotIndex == nil) {
		return false
	}
	if s.PivotIndex != nil && *s.PivotIndex != *o.PivotIndex {
		return false
	}
	return slices.Equal(s.Values, o.Values) &&
		slices.Equal(s.SortedIndices, o.SortedIndices) &&
		slices.Equal(s.HighlightedIndices, o.HighlightedIndices) &&
		slices.Equal(s.ComparingIndices, o.ComparingIndices)
}
