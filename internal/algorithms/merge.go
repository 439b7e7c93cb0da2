package algorithms

import (
	"fmt"

	"github.com/san-kum/sortscope/internal/trace"
)

// Merge is top-down merge sort. Every slot is marked sorted in ascending order
// once the whole recursion has finished.
type Merge struct{}

func (Merge) Info() Info {
	return Info{
		Key:         "merge",
		Name:        "Merge Sort",
		Description: "A stable, divide-and-conquer sorting algorithm that divides the array into halves and merges them back in sorted order.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)"},
	}
}

func (m Merge) Execute(values []int) *trace.Timeline {
	tl := trace.New(values)
	arr := working(values)
	m.sort(tl, arr, 0, len(arr)-1)

	for i, v := range arr {
		tl.AddStep(trace.MarkSortedSet([]int{i}, fmt.Sprintf("Element %d is in its final sorted position", v)))
	}
	return tl
}

func (m Merge) sort(tl *trace.Timeline, arr []int, left, right int) {
	if left >= right {
		return
	}
	mid := (left + right) / 2
	span := trace.Span(left, right+1)

	tl.AddStep(trace.HighlightSet(span, fmt.Sprintf("Dividing array from index %d to %d", left, right)))
	m.sort(tl, arr, left, mid)
	m.sort(tl, arr, mid+1, right)
	m.merge(tl, arr, left, mid, right)
	tl.AddStep(trace.ClearHighlightSet(span, "Merge operation completed"))
}

func (Merge) merge(tl *trace.Timeline, arr []int, left, mid, right int) {
	lhs := working(arr[left : mid+1])
	rhs := working(arr[mid+1 : right+1])

	tl.AddStep(trace.Merge(
		trace.Range{Start: left, End: mid + 1},
		trace.Range{Start: mid + 1, End: right + 1},
		fmt.Sprintf("Merging left subarray [%d:%d] with right subarray [%d:%d]", left, mid+1, mid+1, right+1),
	))

	i, j, k := 0, 0, left
	for i < len(lhs) && j < len(rhs) {
		tl.AddStep(trace.Compare(left+i, mid+1+j, fmt.Sprintf("Comparing %d with %d", lhs[i], rhs[j])))
		if lhs[i] <= rhs[j] {
			tl.AddStep(trace.Overwrite(k, lhs[i], fmt.Sprintf("Placing %d at position %d", lhs[i], k)))
			arr[k] = lhs[i]
			i++
		} else {
			tl.AddStep(trace.Overwrite(k, rhs[j], fmt.Sprintf("Placing %d at position %d", rhs[j], k)))
			arr[k] = rhs[j]
			j++
		}
		k++
	}

	for ; i < len(lhs); i, k = i+1, k+1 {
		tl.AddStep(trace.Overwrite(k, lhs[i], fmt.Sprintf("Copying remaining %d to position %d", lhs[i], k)))
		arr[k] = lhs[i]
	}
	for ; j < len(rhs); j, k = j+1, k+1 {
		tl.AddStep(trace.Overwrite(k, rhs[j], fmt.Sprintf("Copying remaining %d to position %d", rhs[j], k)))
		arr[k] = rhs[j]
	}
}
