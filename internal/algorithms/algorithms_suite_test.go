package algorithms_test

import (
	"math/rand"
	"slices"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/trace"
)

func TestAlgorithms(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Algorithms Suite")
}

func inputs() [][]int {
	rng := rand.New(rand.NewSource(7))
	out := [][]int{
		{},
		{1},
		{2, 1},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 3, 1, 1, 2, 2},
		{0, -4, 8, -4, 0},
	}
	for n := 3; n <= 24; n += 7 {
		arr := make([]int, n)
		for i := range arr {
			arr[i] = rng.Intn(50)
		}
		out = append(out, arr)
	}
	return out
}

var _ = Describe("recorded sorts", func() {
	registry := algorithms.NewRegistry()

	for _, key := range registry.Keys() {
		alg, err := registry.Get(key)
		if err != nil {
			panic(err)
		}

		Describe(alg.Info().Name, func() {
			It("ends with the input in non-decreasing order", func() {
				for _, in := range inputs() {
					want := slices.Clone(in)
					slices.Sort(want)
					Expect(alg.Execute(in).FinalState().Values).To(Equal(want), "input %v", in)
				}
			})

			It("keeps one more state than steps", func() {
				for _, in := range inputs() {
					tl := alg.Execute(in)
					Expect(tl.States()).To(HaveLen(tl.Len() + 1))
				}
			})

			It("never shrinks the sorted set", func() {
				for _, in := range inputs() {
					prev := 0
					for _, s := range alg.Execute(in).States() {
						Expect(len(s.SortedIndices)).To(BeNumerically(">=", prev))
						prev = len(s.SortedIndices)
					}
				}
			})

			It("replays the same states after any navigation", func() {
				tl := alg.Execute([]int{6, 2, 9, 1, 5})
				first := map[int]trace.ArrayState{}
				for tl.StepForward() {
					s, _ := tl.CurrentState()
					first[tl.Cursor()] = s
				}
				end := tl.Cursor()
				for tl.StepBackward() {
				}
				Expect(tl.SetPosition(end)).To(BeTrue())
				s, _ := tl.CurrentState()
				Expect(s).To(Equal(first[end]))
			})

			It("only emits steps with in-bounds indices", func() {
				for _, in := range inputs() {
					for _, step := range alg.Execute(in).Steps() {
						for _, idx := range step.Indices() {
							Expect(idx).To(BeNumerically("<", len(in)))
						}
					}
				}
			})
		})
	}
})
