// Package rpni implements Regular Positive and Negative Inference: a
// red-blue greedy state-merging search that takes the first merge
// consistent with the labelling, over the incremental partition and merge
// engine in github.com/projectdiscovery/dfatoolkit.
package rpni

import (
	"github.com/projectdiscovery/dfatoolkit"
)

// Run performs the RPNI search over apta and returns the resulting
// quotient DFA together with the telemetry of the search.
//
// Red holds committed "kernel" blocks, seeded with the starting block;
// blue holds the one-step frontier of blocks reachable from a red block
// that are not themselves red. Each round pops one blue block (LIFO) and
// offers it, in insertion order, to every red block for merging; the
// first red block that accepts the merge keeps it, otherwise the blue
// block itself joins red. The search terminates when blue is empty, which
// is guaranteed for any finite APTA since every state either joins a red
// block or becomes red itself.
func Run(apta *dfatoolkit.DFA) (*dfatoolkit.DFA, *dfatoolkit.TelemetryReport) {
	return RunVerbose(apta, false)
}

// RunVerbose is Run with the verbose telemetry setting passed through to
// the recorder. RPNI records no per-round counts, so the returned report's
// PerRoundCounts is nil either way.
func RunVerbose(apta *dfatoolkit.DFA, verbose bool) (*dfatoolkit.DFA, *dfatoolkit.TelemetryReport) {
	base := dfatoolkit.NewPartition(apta)
	snapshot, err := base.Copy()
	if err != nil {
		// base is freshly constructed and never a copy; Copy cannot fail here.
		panic(err)
	}

	recorder := dfatoolkit.NewRecorder(verbose)

	red := []int{base.StartingBlock()}
	blue := updateBlueSet(base, red)

	for len(blue) > 0 {
		last := len(blue) - 1
		blueBlock := blue[last]
		blue = blue[:last]

		merged := false
		for _, redBlock := range red {
			recorder.Attempt()

			if snapshot.MergeStates(redBlock, blueBlock) {
				recorder.Accept()
				base.CopyChangesFrom(snapshot)
				merged = true
				break
			}

			snapshot.RollbackChangesFrom(base)
		}

		if !merged {
			red = append(red, blueBlock)
		}

		updateRedSet(base, red)
		blue = updateBlueSet(base, red)
	}

	return base.ToQuotientDFA(), recorder.Finish()
}

// updateRedSet replaces every red entry with its current root.
func updateRedSet(p *dfatoolkit.Partition, red []int) {
	for i, r := range red {
		red[i] = p.Find(r)
	}
}

// updateBlueSet recomputes the blue frontier as the roots reachable via one
// valid transition from any red root that are not themselves red. A symbol
// whose transition is -1 contributes nothing. The frontier is rebuilt from
// scratch every round and intentionally keeps duplicates: which entry is
// last, and therefore which block the next round pops, is part of the
// search's observable behaviour.
func updateBlueSet(p *dfatoolkit.Partition, red []int) []int {
	redSet := make(map[int]bool, len(red))
	for _, r := range red {
		redSet[r] = true
	}

	var blue []int

	for _, r := range red {
		for symbol := 0; symbol < p.AlphabetSize; symbol++ {
			target := p.Blocks[r].Transitions[symbol]
			if target == -1 {
				continue
			}
			target = p.Find(target)
			if redSet[target] {
				continue
			}
			blue = append(blue, target)
		}
	}

	return blue
}
