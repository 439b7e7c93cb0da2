package render

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/san-kum/sortscope/internal/algorithms"
	"github.com/san-kum/sortscope/internal/trace"
)

// Row is one algorithm's result in a comparison over the same input.
type Row struct {
	Algorithm algorithms.Info
	Summary   trace.Summary
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	return tbl
}

func AlgorithmTable(infos []algorithms.Info) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Key", "Name", "Best", "Average", "Worst", "Space"})
	for _, info := range infos {
		c := info.Complexity
		tbl.AppendRow(table.Row{info.Key, info.Name, c.Best, c.Average, c.Worst, c.Space})
	}
	return tbl.Render()
}

func SummaryTable(rows []Row) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Algorithm", "Steps", "Compares", "Swaps", "Overwrites", "Merges", "Writes"})

	size := 0
	for _, r := range rows {
		s := r.Summary
		size = s.ArrayLen
		tbl.AppendRow(table.Row{
			r.Algorithm.Name,
			count(s.Total),
			count(s.Comparisons()),
			count(s.ByKind[trace.KindSwap]),
			count(s.ByKind[trace.KindOverwrite]),
			count(s.ByKind[trace.KindMerge]),
			count(s.Writes()),
		})
	}
	tbl.AppendFooter(table.Row{"Input size", count(size)})
	return tbl.Render()
}

// StepTable lists every recorded step with its explanation.
func StepTable(steps []trace.Step, explain func(trace.Step) string) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "Type", "Indices", "Explanation"})
	for i, s := range steps {
		text := s.Explanation()
		if explain != nil {
			text = explain(s)
		}
		tbl.AppendRow(table.Row{i, s.Kind(), s.Indices(), text})
	}
	return tbl.Render()
}

func count(n int) string { return humanize.Comma(int64(n)) }

// SizePoint is one input size of a sweep.
type SizePoint struct {
	Size    int
	Summary trace.Summary
}

func SweepTable(points []SizePoint) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Size", "Steps", "Compares", "Writes"})
	for _, p := range points {
		tbl.AppendRow(table.Row{count(p.Size), count(p.Summary.Total), count(p.Summary.Comparisons()), count(p.Summary.Writes())})
	}
	return tbl.Render()
}
