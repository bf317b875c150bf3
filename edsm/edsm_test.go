package edsm

import (
	"testing"

	"github.com/projectdiscovery/dfatoolkit"
	"github.com/stretchr/testify/require"
)

func fourLeafAPTA() *dfatoolkit.DFA {
	dfa := dfatoolkit.New()
	for i := 0; i < 4; i++ {
		dfa.AddSymbol()
	}
	s0 := dfa.AddState(dfatoolkit.Unlabelled)
	s1 := dfa.AddState(dfatoolkit.Accepting)
	s2 := dfa.AddState(dfatoolkit.Accepting)
	s3 := dfa.AddState(dfatoolkit.Rejecting)
	s4 := dfa.AddState(dfatoolkit.Rejecting)
	dfa.States[s0].Transitions[0] = s1
	dfa.States[s0].Transitions[1] = s2
	dfa.States[s0].Transitions[2] = s3
	dfa.States[s0].Transitions[3] = s4
	dfa.StartingStateID = s0
	return dfa
}

func TestRunMergesCompatibleLeaves(t *testing.T) {
	apta := fourLeafAPTA()

	result, telemetry := Run(apta)

	// The two accepting leaves merge, the two rejecting leaves merge, and
	// the unlabelled start state (compatible with either) then joins
	// whichever group the first-seen-wins tie-break reaches first,
	// leaving exactly one accepting and one rejecting state.
	require.Len(t, result.States, 2)
	require.GreaterOrEqual(t, len(telemetry.Merges), 3)
	require.GreaterOrEqual(t, telemetry.ValidMerges, 3)

	var accepting, rejecting int
	for _, s := range result.States {
		switch s.Label {
		case dfatoolkit.Accepting:
			accepting++
		case dfatoolkit.Rejecting:
			rejecting++
		}
	}
	require.Equal(t, 1, accepting)
	require.Equal(t, 1, rejecting)
}

func TestRunWithScoreNeverCommitsNegativeScore(t *testing.T) {
	apta := fourLeafAPTA()

	negativeOnly := func(_, _ int, _, _ *dfatoolkit.Partition) float64 {
		return -1
	}

	result, telemetry := RunWithScore(apta, negativeOnly, false)

	require.Len(t, result.States, len(apta.States))
	require.Empty(t, telemetry.Merges)
}

func TestRunVerboseRecordsPerRoundCounts(t *testing.T) {
	apta := fourLeafAPTA()

	_, telemetry := RunVerbose(apta, true)
	require.NotEmpty(t, telemetry.PerRoundCounts)
}

func TestDefaultScoreRewardsLabelledBlockReduction(t *testing.T) {
	apta := fourLeafAPTA()
	base := dfatoolkit.NewPartition(apta)
	snapshot, err := base.Copy()
	require.NoError(t, err)

	require.True(t, snapshot.MergeStates(1, 2))

	score := DefaultScore(apta.LabelledStateCount())
	s := score(1, 2, base, snapshot)
	require.Equal(t, float64(apta.LabelledStateCount()-snapshot.LabelledBlockCount()), s)
}
