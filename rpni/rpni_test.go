package rpni

import (
	"testing"

	"github.com/projectdiscovery/dfatoolkit"
	"github.com/stretchr/testify/require"
)

func threeStateAPTA() *dfatoolkit.DFA {
	dfa := dfatoolkit.New()
	dfa.AddSymbol()
	dfa.AddSymbol()
	s0 := dfa.AddState(dfatoolkit.Unlabelled)
	s1 := dfa.AddState(dfatoolkit.Accepting)
	s2 := dfa.AddState(dfatoolkit.Accepting)
	dfa.States[s0].Transitions[0] = s1
	dfa.States[s0].Transitions[1] = s2
	dfa.StartingStateID = s0
	return dfa
}

// S6: RPNI on the S2 APTA yields a 2-state DFA accepting both symbols,
// with at least one attempted and one valid merge recorded.
func TestRunOnThreeStateAPTA(t *testing.T) {
	apta := threeStateAPTA()

	result, telemetry := Run(apta)

	require.Len(t, result.States, 2)
	require.GreaterOrEqual(t, telemetry.AttemptedMerges, 1)
	require.GreaterOrEqual(t, telemetry.ValidMerges, 1)

	start := result.States[result.StartingStateID]
	target0 := start.Transitions[0]
	target1 := start.Transitions[1]
	require.NotEqual(t, -1, target0)
	require.NotEqual(t, -1, target1)
	require.Equal(t, dfatoolkit.Accepting, result.States[target0].Label)
	require.Equal(t, dfatoolkit.Accepting, result.States[target1].Label)
}

// Invariant 9: RPNI terminates (returns) for any finite APTA. Trivially
// checked here since a non-terminating search would hang the test.
func TestRunTerminatesOnLargerAPTA(t *testing.T) {
	dfa := dfatoolkit.New()
	dfa.AddSymbol()
	prev := dfa.AddState(dfatoolkit.Unlabelled)
	dfa.StartingStateID = prev
	for i := 0; i < 20; i++ {
		label := dfatoolkit.Rejecting
		if i%2 == 0 {
			label = dfatoolkit.Accepting
		}
		next := dfa.AddState(label)
		dfa.States[prev].Transitions[0] = next
		prev = next
	}

	result, telemetry := RunVerbose(dfa, false)
	require.NotNil(t, result)
	require.NoError(t, result.Validate())
	require.GreaterOrEqual(t, telemetry.AttemptedMerges, 0)
}

func TestRunRejectsAcrossConflictingLabels(t *testing.T) {
	dfa := dfatoolkit.New()
	dfa.AddSymbol()
	s0 := dfa.AddState(dfatoolkit.Accepting)
	s1 := dfa.AddState(dfatoolkit.Rejecting)
	dfa.States[s0].Transitions[0] = s1
	dfa.StartingStateID = s0

	result, _ := Run(dfa)
	require.Len(t, result.States, 2)
}
