// Package edsm implements Exhaustive Evidence-Driven State Merging: a
// scored greedy state-merging search that, every round, tries every
// unordered pair of current root blocks and commits whichever valid merge
// scores highest, over the incremental partition and merge engine in
// github.com/projectdiscovery/dfatoolkit.
package edsm

import "github.com/projectdiscovery/dfatoolkit"

// Run performs the default exhaustive EDSM search over apta: the score
// rewards merges that most reduce the labelled-block count relative to
// apta's own labelled-state count.
func Run(apta *dfatoolkit.DFA) (*dfatoolkit.DFA, *dfatoolkit.TelemetryReport) {
	return RunWithScore(apta, DefaultScore(apta.LabelledStateCount()), false)
}

// RunVerbose is Run with control over whether the returned telemetry
// carries per-round diagnostics.
func RunVerbose(apta *dfatoolkit.DFA, verbose bool) (*dfatoolkit.DFA, *dfatoolkit.TelemetryReport) {
	return RunWithScore(apta, DefaultScore(apta.LabelledStateCount()), verbose)
}

// RunWithScore performs the exhaustive EDSM search over apta using a
// caller-supplied scoring function, with control over whether the
// returned telemetry carries per-round diagnostics.
//
// One round evaluates every unordered pair (i, j), i < j, of current root
// blocks in id order: MergeStates is attempted on a snapshot; on success
// the scoring function is invoked with the base partition and the
// post-merge snapshot, and if the returned score is strictly greater than
// the round's best so far, it replaces it (first-seen wins on ties,
// enumeration order decides). The snapshot is rolled back after every
// pair regardless of outcome. If the round's best score is >= 0, that
// merge is re-applied and committed and the driver proceeds to the next
// round; otherwise the search terminates.
func RunWithScore(apta *dfatoolkit.DFA, score ScoreFunc, verbose bool) (*dfatoolkit.DFA, *dfatoolkit.TelemetryReport) {
	base := dfatoolkit.NewPartition(apta)
	snapshot, err := base.Copy()
	if err != nil {
		// base is freshly constructed and never a copy; Copy cannot fail here.
		panic(err)
	}

	recorder := dfatoolkit.NewRecorder(verbose)

	for {
		blocks := base.RootBlocks()

		bestBlock1, bestBlock2 := -1, -1
		bestScore := -1.0
		evaluated := 0

		for i := 0; i < len(blocks); i++ {
			for j := i + 1; j < len(blocks); j++ {
				recorder.Attempt()
				evaluated++

				if snapshot.MergeStates(blocks[i], blocks[j]) {
					recorder.Accept()

					s := score(blocks[i], blocks[j], base, snapshot)
					if s > bestScore {
						bestBlock1, bestBlock2, bestScore = blocks[i], blocks[j], s
					}
				}

				snapshot.RollbackChangesFrom(base)
			}
		}

		recorder.EndRound(evaluated)

		if bestScore < 0 {
			break
		}

		snapshot.MergeStates(bestBlock1, bestBlock2)
		base.CopyChangesFrom(snapshot)
		recorder.Commit(bestBlock1, bestBlock2, bestScore)
	}

	return base.ToQuotientDFA(), recorder.Finish()
}
