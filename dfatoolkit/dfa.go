// Package dfatoolkit implements regular-language inference from labelled
// examples: an incremental state-partition data structure and a recursive
// deterministic merge engine, used by the rpni and edsm search drivers to
// greedily merge states of a prefix tree automaton into a small consistent
// DFA.
package dfatoolkit

// Label is the tri-valued classification of a DFA state (or, once merged,
// of a partition block).
type Label int8

const (
	// Rejecting marks a state that must not accept its prefix language.
	Rejecting Label = 0
	// Accepting marks a state that must accept its prefix language.
	Accepting Label = 1
	// Unlabelled marks a state with no known classification.
	Unlabelled Label = 2
)

func (l Label) String() string {
	switch l {
	case Rejecting:
		return "rejecting"
	case Accepting:
		return "accepting"
	default:
		return "unlabelled"
	}
}

// State is a single DFA state: a label plus one transition per alphabet
// symbol. A transition value of -1 means no transition on that symbol.
type State struct {
	Label       Label
	Transitions []int
}

// DFA is a deterministic finite automaton: an ordered sequence of states
// indexed by integer id starting at 0, an alphabet of size AlphabetSize
// (symbols are integers in [0, AlphabetSize)), and a starting state id
// (-1 when undefined).
type DFA struct {
	States          []State
	AlphabetSize    int
	StartingStateID int
}

// New returns an empty DFA with no states, no symbols, and no starting
// state.
func New() *DFA {
	return &DFA{StartingStateID: -1}
}

// AddState appends a state with all -1 transitions of length AlphabetSize
// and returns its id.
func (d *DFA) AddState(label Label) int {
	transitions := make([]int, d.AlphabetSize)
	for i := range transitions {
		transitions[i] = -1
	}
	d.States = append(d.States, State{Label: label, Transitions: transitions})
	return len(d.States) - 1
}

// AddSymbol grows the alphabet by one; every existing state gains one
// trailing -1 transition.
func (d *DFA) AddSymbol() {
	d.AlphabetSize++
	for i := range d.States {
		d.States[i].Transitions = append(d.States[i].Transitions, -1)
	}
}

// LabelledStateCount returns the number of states whose label is not
// Unlabelled.
func (d *DFA) LabelledStateCount() int {
	count := 0
	for _, s := range d.States {
		if s.Label == Accepting || s.Label == Rejecting {
			count++
		}
	}
	return count
}

// UnreachableStates returns, in ascending order, the ids of states never
// visited by a breadth-first search from StartingStateID over valid (>=0)
// transitions.
func (d *DFA) UnreachableStates() []int {
	reachable := make([]bool, len(d.States))
	var unreachable []int

	if d.StartingStateID < 0 || d.StartingStateID >= len(d.States) {
		for i := range d.States {
			unreachable = append(unreachable, i)
		}
		return unreachable
	}

	reachable[d.StartingStateID] = true
	frontier := []int{d.StartingStateID}

	for len(frontier) > 0 {
		var next []int
		for _, id := range frontier {
			for symbol := 0; symbol < d.AlphabetSize; symbol++ {
				target := d.States[id].Transitions[symbol]
				if target >= 0 && !reachable[target] {
					reachable[target] = true
					next = append(next, target)
				}
			}
		}
		frontier = next
	}

	for id, ok := range reachable {
		if !ok {
			unreachable = append(unreachable, id)
		}
	}
	return unreachable
}

// Validate fails with an *InvalidDfaError when the DFA has zero states, an
// out-of-range starting state, zero symbols, or at least one unreachable
// state.
func (d *DFA) Validate() error {
	if len(d.States) < 1 {
		return newInvalidDfaError("DFA does not contain any states")
	}
	if d.StartingStateID < 0 || d.StartingStateID >= len(d.States) {
		return newInvalidDfaError("invalid starting state")
	}
	if d.AlphabetSize < 1 {
		return newInvalidDfaError("DFA does not contain any symbols")
	}
	if unreachable := d.UnreachableStates(); len(unreachable) > 0 {
		return newInvalidDfaError("unreachable states exist within DFA")
	}
	return nil
}
