package trace_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortscope/internal/trace"
)

func recorded() *trace.Timeline {
	tl := trace.New([]int{4, 2, 3, 1})
	tl.AddStep(trace.Highlight(0, 1, 2, 3))
	tl.AddStep(trace.Compare(0, 1))
	tl.AddStep(trace.Swap(0, 1))
	tl.AddStep(trace.Pivot(3))
	tl.AddStep(trace.Overwrite(3, 9))
	tl.AddStep(trace.MarkSorted(3))
	tl.AddStep(trace.ClearHighlight(0, 1))
	tl.AddStep(trace.Merge(trace.Range{Start: 0, End: 2}, trace.Range{Start: 2, End: 4}))
	tl.AddStep(trace.MarkSorted(0, 1, 2))
	return tl
}

var _ = Describe("Timeline", func() {
	var tl *trace.Timeline

	BeforeEach(func() {
		tl = recorded()
	})

	It("keeps one more state than steps", func() {
		Expect(tl.States()).To(HaveLen(tl.Len() + 1))
	})

	It("starts before the first step", func() {
		Expect(tl.Cursor()).To(Equal(-1))
		_, ok := tl.CurrentStep()
		Expect(ok).To(BeFalse())
	})

	It("never shrinks the sorted set", func() {
		prev := 0
		for _, s := range tl.States() {
			Expect(len(s.SortedIndices)).To(BeNumerically(">=", prev))
			prev = len(s.SortedIndices)
		}
	})

	It("only leaves comparing indices after a compare", func() {
		states := tl.States()
		for i, step := range tl.Steps() {
			if step.Kind() == trace.KindCompare {
				Expect(states[i+1].ComparingIndices).To(Equal(step.Indices()))
			} else {
				Expect(states[i+1].ComparingIndices).To(BeEmpty())
			}
		}
	})

	Describe("navigation", func() {
		It("reproduces states independent of the path taken", func() {
			visited := map[int]trace.ArrayState{}
			for tl.StepForward() {
				s, ok := tl.CurrentState()
				Expect(ok).To(BeTrue())
				visited[tl.Cursor()] = s
			}
			end := tl.Cursor()
			Expect(end).To(Equal(tl.Len() - 1))

			for tl.StepBackward() {
			}
			Expect(tl.Cursor()).To(Equal(-1))

			Expect(tl.SetPosition(end)).To(BeTrue())
			s, _ := tl.CurrentState()
			Expect(s.Equal(visited[end])).To(BeTrue())

			for pos, want := range visited {
				Expect(tl.SetPosition(pos)).To(BeTrue())
				got, _ := tl.CurrentState()
				Expect(got).To(Equal(want))
			}
		})

		It("reports monotonic progress from 0 to 1", func() {
			Expect(tl.Progress()).To(Equal(0.0))
			prev := tl.Progress()
			for tl.StepForward() {
				Expect(tl.Progress()).To(BeNumerically(">=", prev))
				prev = tl.Progress()
			}
			Expect(tl.Progress()).To(Equal(1.0))
		})

		It("rejects out-of-range positions without clamping", func() {
			Expect(tl.SetPosition(2)).To(BeTrue())
			Expect(tl.SetPosition(tl.Len())).To(BeFalse())
			Expect(tl.SetPosition(-2)).To(BeFalse())
			Expect(tl.Cursor()).To(Equal(2))
		})

		It("resets to before the first step", func() {
			tl.SetPosition(5)
			tl.Reset()
			Expect(tl.Cursor()).To(Equal(-1))
			s, ok := tl.CurrentState()
			Expect(ok).To(BeTrue())
			Expect(s.Values).To(Equal([]int{4, 2, 3, 1}))
		})
	})

	Describe("state derivation", func() {
		It("applies only value-changing steps to values", func() {
			Expect(tl.FinalState().Values).To(Equal([]int{2, 4, 3, 9}))
		})

		It("keeps the last pivot", func() {
			final := tl.FinalState()
			Expect(final.PivotIndex).NotTo(BeNil())
			Expect(*final.PivotIndex).To(Equal(3))
		})

		It("removes cleared indices and ignores absent ones", func() {
			final := tl.FinalState()
			Expect(final.HighlightedIndices).To(Equal([]int{2, 3}))
		})
	})
})
