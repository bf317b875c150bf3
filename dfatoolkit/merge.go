package dfatoolkit

// MergeStates attempts to merge the blocks containing s1 and s2, cascading
// through shared transitions to preserve determinism. Returns true when
// every cascaded merge succeeded and the partition now reflects them, or
// false on a label conflict, in which case the partition is left partially
// merged and the caller is expected to have taken a snapshot and will call
// RollbackChangesFrom.
//
// The cascade iterates symbols in increasing order, and union's tie-break
// for equal-size blocks always resolves to the left-hand (first) argument
// as parent; both properties are part of the observable contract and must
// not be changed.
func (p *Partition) MergeStates(s1, s2 int) bool {
	if p.Blocks[s1].Root != s1 {
		s1 = p.Find(s1)
	}
	if p.Blocks[s2].Root != s2 {
		s2 = p.Find(s2)
	}

	if s1 == s2 {
		return true
	}

	if (p.Blocks[s1].Label == Accepting && p.Blocks[s2].Label == Rejecting) ||
		(p.Blocks[s1].Label == Rejecting && p.Blocks[s2].Label == Accepting) {
		return false
	}

	p.union(s1, s2)

	for symbol := 0; symbol < p.AlphabetSize; symbol++ {
		t1 := p.Blocks[s1].Transitions[symbol]
		t2 := p.Blocks[s2].Transitions[symbol]
		if t1 == -1 || t2 == -1 {
			continue
		}
		if !p.MergeStates(t1, t2) {
			return false
		}
	}

	return true
}
