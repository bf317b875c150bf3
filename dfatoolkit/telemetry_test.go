package dfatoolkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecorderAccumulatesCounts(t *testing.T) {
	r := NewRecorder(false)

	r.Attempt()
	r.Attempt()
	r.Accept()
	r.Commit(1, 2, 3.5)

	report := r.Finish()
	require.Equal(t, 2, report.AttemptedMerges)
	require.Equal(t, 1, report.ValidMerges)
	require.Equal(t, []CommittedMerge{{Block1: 1, Block2: 2, Score: 3.5}}, report.Merges)
	require.NotEmpty(t, report.RunID)
	require.Nil(t, report.PerRoundCounts)
}

func TestRecorderPerRoundCountsOnlyWhenVerbose(t *testing.T) {
	quiet := NewRecorder(false)
	quiet.EndRound(5)
	require.Nil(t, quiet.Finish().PerRoundCounts)

	verbose := NewRecorder(true)
	verbose.EndRound(5)
	verbose.EndRound(3)
	report := verbose.Finish()
	require.Equal(t, []int{5, 3}, report.PerRoundCounts)
}

func TestAttemptedMergesPerSecondHandlesZeroDuration(t *testing.T) {
	report := &TelemetryReport{AttemptedMerges: 10}
	require.Equal(t, float64(0), report.AttemptedMergesPerSecond())
}
