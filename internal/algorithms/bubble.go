package algorithms

import (
	"fmt"

	"github.com/san-kum/sortscope/internal/trace"
)

type Bubble struct{}

func (Bubble) Info() Info {
	return Info{
		Key:         "bubble",
		Name:        "Bubble Sort",
		Description: "A simple sorting algorithm that repeatedly steps through the list, compares adjacent elements and swaps them if they are in the wrong order.",
		Complexity:  Complexity{Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)"},
	}
}

func (Bubble) Execute(values []int) *trace.Timeline {
	tl := trace.New(values)
	arr := working(values)
	n := len(arr)

	for i := 0; i < n; i++ {
		swapped := false
		unsorted := trace.Span(0, n-i)
		tl.AddStep(trace.HighlightSet(unsorted, fmt.Sprintf("Pass %d: Checking unsorted portion", i+1)))

		for j := 0; j < n-i-1; j++ {
			tl.AddStep(trace.Compare(j, j+1, fmt.Sprintf("Comparing elements at positions %d and %d", j, j+1)))
			if arr[j] > arr[j+1] {
				tl.AddStep(trace.Swap(j, j+1, fmt.Sprintf("Swapping %d and %d - they are in wrong order", arr[j], arr[j+1])))
				arr[j], arr[j+1] = arr[j+1], arr[j]
				swapped = true
			}
		}

		last := n - i - 1
		tl.AddStep(trace.MarkSortedSet([]int{last}, fmt.Sprintf("Element at position %d is now in its final position", last)))
		tl.AddStep(trace.ClearHighlightSet(unsorted, "Clearing highlights for next pass"))

		if !swapped {
			break
		}
	}

	if n > 0 {
		tl.AddStep(trace.MarkSortedSet([]int{0}, "First element is now sorted"))
	}
	return tl
}
