package edsm

import "github.com/projectdiscovery/dfatoolkit"

// ScoreFunc scores a candidate merge of block1 and block2, given the
// partition before the merge and the (already-applied, on a snapshot)
// partition after it. A more negative/lower score is worse; the driver
// keeps the highest-scoring merge seen so far in a round and commits it
// only if that score is >= 0.
type ScoreFunc func(block1, block2 int, before, after *dfatoolkit.Partition) float64

// DefaultScore rewards large reductions in labelled-block count relative
// to the original (pre-search) labelled-state count, the classic EDSM
// score. It is built with the apta's labelled-state count fixed at search
// start rather than the current partition's labelled-block count before
// the merge (see DESIGN.md, Open Questions).
func DefaultScore(datasetSize int) ScoreFunc {
	return func(_, _ int, _, after *dfatoolkit.Partition) float64 {
		return float64(datasetSize - after.LabelledBlockCount())
	}
}
