package algorithms

import (
	"fmt"

	"github.com/san-kum/sortscope/internal/trace"
)

// Quick is Lomuto-partition quicksort with the last element of each range as
// pivot.
type Quick struct{}

func (Quick) Info() Info {
	return Info{
		Key:         "quick",
		Name:        "Quick Sort",
		Description: "An efficient, in-place sorting algorithm that uses divide-and-conquer strategy with a pivot element.",
		Complexity:  Complexity{Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)"},
	}
}

func (q Quick) Execute(values []int) *trace.Timeline {
	tl := trace.New(values)
	arr := working(values)
	q.sort(tl, arr, 0, len(arr)-1)
	return tl
}

func (q Quick) sort(tl *trace.Timeline, arr []int, low, high int) {
	if low >= high {
		return
	}
	p := q.partition(tl, arr, low, high)
	tl.AddStep(trace.MarkSortedSet([]int{p}, fmt.Sprintf("Pivot element %d is now in its final position at index %d", arr[p], p)))

	q.sort(tl, arr, low, p-1)
	q.sort(tl, arr, p+1, high)
}

func (Quick) partition(tl *trace.Timeline, arr []int, low, high int) int {
	pivot := arr[high]
	tl.AddStep(trace.Pivot(high, fmt.Sprintf("Choosing %d as pivot element at position %d", pivot, high)))

	i := low - 1
	for j := low; j < high; j++ {
		tl.AddStep(trace.Compare(j, high, fmt.Sprintf("Comparing %d with pivot %d", arr[j], pivot)))
		if arr[j] <= pivot {
			i++
			if i != j {
				tl.AddStep(trace.Swap(i, j, fmt.Sprintf("Moving %d to left of pivot", arr[j])))
				arr[i], arr[j] = arr[j], arr[i]
			}
		}
	}

	dst := i + 1
	if dst != high {
		tl.AddStep(trace.Swap(dst, high, fmt.Sprintf("Placing pivot %d in its final position", pivot)))
		arr[dst], arr[high] = arr[high], arr[dst]
	}
	return dst
}
