package dfatoolkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fourLeafAPTA is a star of four independent labelled leaves around an
// unlabelled start state, with no shared transitions between leaves, so
// merges among them never cascade into each other.
func fourLeafAPTA() *DFA {
	dfa := New()
	for i := 0; i < 4; i++ {
		dfa.AddSymbol()
	}
	s0 := dfa.AddState(Unlabelled)
	s1 := dfa.AddState(Accepting)
	s2 := dfa.AddState(Accepting)
	s3 := dfa.AddState(Rejecting)
	s4 := dfa.AddState(Rejecting)
	dfa.States[s0].Transitions[0] = s1
	dfa.States[s0].Transitions[1] = s2
	dfa.States[s0].Transitions[2] = s3
	dfa.States[s0].Transitions[3] = s4
	dfa.StartingStateID = s0
	return dfa
}

// S5: across rounds of a greedy merge search, labelled_block_count is
// non-increasing and blocks_count strictly decreases on every committed
// round. Exercised directly against the partition rather than through the
// edsm package, to keep this an internal (non-cyclic) test.
func TestEDSMMonotonicity(t *testing.T) {
	base := NewPartition(fourLeafAPTA())
	snapshot, err := base.Copy()
	require.NoError(t, err)

	pairs := [][2]int{{1, 2}, {3, 4}}

	prevBlocksCount := base.BlocksCount
	prevLabelledCount := base.LabelledBlockCount()
	committed := 0

	for _, pair := range pairs {
		if snapshot.MergeStates(pair[0], pair[1]) {
			require.LessOrEqual(t, snapshot.LabelledBlockCount(), prevLabelledCount)
			require.Less(t, snapshot.BlocksCount, prevBlocksCount)

			base.CopyChangesFrom(snapshot)
			prevBlocksCount = base.BlocksCount
			prevLabelledCount = base.LabelledBlockCount()
			committed++
		} else {
			snapshot.RollbackChangesFrom(base)
		}
	}

	require.Equal(t, len(pairs), committed)
}
