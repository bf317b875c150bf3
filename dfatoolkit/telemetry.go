package dfatoolkit

import (
	"fmt"
	"time"

	"github.com/projectdiscovery/blackrock"
)

// CommittedMerge records one merge a scored search driver actually
// committed: the two block ids it merged (pre-merge, as passed to
// MergeStates) and the score that won the round.
type CommittedMerge struct {
	Block1 int
	Block2 int
	Score  float64
}

// TelemetryReport is the search-level record the rpni and edsm drivers
// emit: attempted/valid merge counts, wall duration, and (for scored
// searches) the ordered log of committed merges. RunID and PerRoundCounts
// are additive and never affect merge counts or duration.
type TelemetryReport struct {
	AttemptedMerges int
	ValidMerges     int
	Duration        time.Duration
	Merges          []CommittedMerge

	// RunID opaquely labels one benchmark invocation so repeated runs of
	// the same search can be cross-referenced in saved output.
	RunID string

	// PerRoundCounts records, for scored searches only, the number of
	// pairs evaluated in each round, including the final round that
	// commits nothing. Populated only when verbose telemetry is requested;
	// nil otherwise.
	PerRoundCounts []int
}

// AttemptedMergesPerSecond returns AttemptedMerges / Duration in seconds,
// or 0 if Duration is zero.
func (t *TelemetryReport) AttemptedMergesPerSecond() float64 {
	seconds := t.Duration.Seconds()
	if seconds == 0 {
		return 0
	}
	return float64(t.AttemptedMerges) / seconds
}

// Recorder accumulates attempted/valid merge counts and the committed
// merge log while a search runs, then finalises them into a
// TelemetryReport stamped with a fresh RunID. Both search drivers (rpni
// and edsm) share this type rather than keeping their own counters.
type Recorder struct {
	attempted int
	valid     int
	merges    []CommittedMerge
	verbose   bool
	roundLen  []int
	start     time.Time
}

// NewRecorder starts a telemetry recording. When verbose is true, the
// resulting report also carries per-round evaluated-pair counts (scored
// searches only).
func NewRecorder(verbose bool) *Recorder {
	return &Recorder{start: time.Now(), verbose: verbose}
}

// Attempt records one attempted merge.
func (r *Recorder) Attempt() {
	r.attempted++
}

// Accept records one merge whose MergeStates call succeeded.
func (r *Recorder) Accept() {
	r.valid++
}

// Commit records one merge a search driver actually committed.
func (r *Recorder) Commit(block1, block2 int, score float64) {
	r.merges = append(r.merges, CommittedMerge{Block1: block1, Block2: block2, Score: score})
}

// EndRound records how many pairs a scored-search round evaluated, when
// verbose telemetry was requested.
func (r *Recorder) EndRound(evaluated int) {
	if r.verbose {
		r.roundLen = append(r.roundLen, evaluated)
	}
}

// Finish stops the timer and returns the finished report.
func (r *Recorder) Finish() *TelemetryReport {
	return &TelemetryReport{
		AttemptedMerges: r.attempted,
		ValidMerges:     r.valid,
		Duration:        time.Since(r.start),
		Merges:          r.merges,
		RunID:           newRunID(r.attempted),
		PerRoundCounts:  r.roundLen,
	}
}

// newRunID derives a short opaque run identifier from the current time and
// the search's own attempted-merge count, via blackrock's Feistel-network
// permutation, for cross-referencing repeated benchmark runs. It has no
// bearing on search ordering, scoring, or determinism.
func newRunID(attempted int) string {
	seed := time.Now().UnixNano()
	size := int64(attempted) + 1
	b := blackrock.New(size, seed)
	return fmt.Sprintf("%08x", uint32(b.Shuffle(0)))
}
