package algorithms

import (
	"fmt"

	"github.com/san-kum/sortscope/internal/trace"
)

// Overview is the teaching summary shown next to an algorithm.
type Overview struct {
	Strategy  string `json:"strategy" yaml:"strategy"`
	KeyIdea   string `json:"key_idea" yaml:"key_idea"`
	WhenToUse string `json:"when_to_use" yaml:"when_to_use"`
}

// Explainer produces text for steps that were recorded without one.
type Explainer struct {
	overviews map[string]Overview
}

func NewExplainer() *Explainer {
	return &Explainer{
		overviews: map[string]Overview{
			"bubble": {
				Strategy:  "Compare adjacent elements and swap if out of order",
				KeyIdea:   `Largest elements "bubble" to the end each pass`,
				WhenToUse: "Small datasets, nearly sorted data, educational purposes",
			},
			"quick": {
				Strategy:  "Select pivot and partition around it",
				KeyIdea:   "Divide-and-conquer with average O(n log n) performance",
				WhenToUse: "Large datasets, when average case performance matters most",
			},
			"merge": {
				Strategy:  "Divide array into halves and merge back in order",
				KeyIdea:   "Stable sort with guaranteed O(n log n) time complexity",
				WhenToUse: "When stability is required, external sorting, linked lists",
			},
		},
	}
}

// Explain returns the step's own explanation, or a default for its kind.
func (e *Explainer) Explain(step trace.Step, algorithm string) string {
	if step.HasExplanation() {
		return step.Explanation()
	}

	switch step.Kind() {
	case trace.KindCompare:
		switch algorithm {
		case "bubble":
			return "Comparing adjacent elements to check if they need to be swapped"
		case "quick":
			return "Comparing element with pivot to determine which side it belongs"
		case "merge":
			return "Comparing elements from two sorted subarrays to merge correctly"
		}
		return "Comparing elements to determine their relative order"
	case trace.KindSwap:
		return "Swapping elements because they are in the wrong order"
	case trace.KindOverwrite:
		return "Placing element at its correct position during merge operation"
	case trace.KindMarkSorted:
		return "Marking element(s) as sorted - they will not be moved again"
	case trace.KindHighlight:
		return "Highlighting active region for current operation"
	case trace.KindClearHighlight:
		return "Clearing highlights as operation completes"
	case trace.KindPivot:
		return "Selecting pivot element - elements will be partitioned around it"
	case trace.KindMerge:
		return "Merging two sorted subarrays into one larger sorted array"
	}
	return fmt.Sprintf("Performing %s operation", step.Kind())
}

func (e *Explainer) Overview(algorithm string) (Overview, bool) {
	o, ok := e.overviews[algorithm]
	return o, ok
}

func (e *Explainer) ComplexityText(c Complexity) string {
	return fmt.Sprintf("Time Complexity:\n- Best Case: %s\n- Average Case: %s\n- Worst Case: %s\n\nSpace Complexity: %s",
		orNA(c.Best), orNA(c.Average), orNA(c.Worst), orNA(c.Space))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
