package dfatoolkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Invariant 8: the quotient of an untouched partition reproduces the
// input DFA up to state-id renaming.
func TestToQuotientDFARoundTripsUntouchedPartition(t *testing.T) {
	dfa := threeStateAPTA()
	p := NewPartition(dfa)

	quotient := p.ToQuotientDFA()

	require.Len(t, quotient.States, len(dfa.States))
	require.Equal(t, dfa.AlphabetSize, quotient.AlphabetSize)

	for id, state := range dfa.States {
		require.Equal(t, state.Label, quotient.States[id].Label)
		require.Equal(t, state.Transitions, quotient.States[id].Transitions)
	}
	require.Equal(t, dfa.StartingStateID, quotient.StartingStateID)
}

// Invariant 6: a successful merge's quotient DFA has no state with two
// distinct non-(-1) targets for the same symbol: it is still a valid
// deterministic automaton.
func TestToQuotientDFAIsDeterministicAfterMerge(t *testing.T) {
	p := NewPartition(threeStateAPTA())
	require.True(t, p.MergeStates(1, 2))

	quotient := p.ToQuotientDFA()
	for _, state := range quotient.States {
		seenTargets := map[int]int{}
		for symbol, target := range state.Transitions {
			if target == -1 {
				continue
			}
			if prior, ok := seenTargets[symbol]; ok {
				require.Equal(t, prior, target)
			}
			seenTargets[symbol] = target
		}
	}
	require.NoError(t, quotient.Validate())
}

func TestToQuotientDFAAssignsCanonicalStateIDsInRootOrder(t *testing.T) {
	p := NewPartition(cascadeAPTA())
	quotient := p.ToQuotientDFA()

	roots := p.RootBlocks()
	require.Equal(t, len(roots), len(quotient.States))
	for i, root := range roots {
		require.Equal(t, p.Blocks[root].Label, quotient.States[i].Label)
	}
}
