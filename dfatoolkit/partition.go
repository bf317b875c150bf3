package dfatoolkit

// Block is one element of a state partition: either a singleton state or,
// once merged, an equivalence class of states ("block"). Only the fields
// of the root block of a class are meaningful to readers outside the
// partition package; non-root blocks keep stale data until path-compressed.
type Block struct {
	// Root is the state id of this block's representative. Root == id of
	// this block's own index iff this block is itself a root.
	Root int
	// Size is the number of states in the block. Meaningful on roots only.
	Size int
	// Link is part of a circular singly-linked list connecting every
	// state in the block.
	Link int
	// Label is the aggregated label of the block.
	Label Label
	// Changed marks, in snapshot mode only, that this block differs from
	// the base partition it was copied from.
	Changed bool
	// Transitions is the block's per-symbol outgoing transition table,
	// meaningful on the root. Entries carry the last-seen target state id
	// and must be resolved through Find by any consumer that cares about
	// the current root of the target.
	Transitions []int
}

// Partition is an incremental union-find over the states of a DFA, with a
// per-block transition table, running label counts, and (when IsCopy) a
// change log that makes a speculative sequence of merges cheap to undo.
type Partition struct {
	Blocks []Block

	BlocksCount           int
	AcceptingBlocksCount  int
	RejectingBlocksCount  int
	AlphabetSize          int
	StartingStateID       int

	IsCopy            bool
	ChangedBlocks     []int
	ChangedBlocksCount int
}

// NewPartition allocates one singleton block per state of dfa, each a root
// of size 1, with transitions and label copied from the corresponding
// state.
func NewPartition(dfa *DFA) *Partition {
	p := &Partition{
		Blocks:          make([]Block, len(dfa.States)),
		BlocksCount:     len(dfa.States),
		AlphabetSize:    dfa.AlphabetSize,
		StartingStateID: dfa.StartingStateID,
	}

	for i, s := range dfa.States {
		transitions := make([]int, len(s.Transitions))
		copy(transitions, s.Transitions)

		p.Blocks[i] = Block{
			Root:        i,
			Size:        1,
			Link:        i,
			Label:       s.Label,
			Transitions: transitions,
		}

		switch s.Label {
		case Accepting:
			p.AcceptingBlocksCount++
		case Rejecting:
			p.RejectingBlocksCount++
		}
	}

	return p
}

// changedBlock logs id as mutated since the last snapshot, at most once per
// snapshot generation. A no-op on a base (non-copy) partition.
func (p *Partition) changedBlock(id int) {
	if p.IsCopy && !p.Blocks[id].Changed {
		p.ChangedBlocks[p.ChangedBlocksCount] = id
		p.ChangedBlocksCount++
		p.Blocks[id].Changed = true
	}
}

// Find walks Root pointers from s to its representative, performing
// one-step path compression along the way. It is idempotent:
// Find(Find(s)) == Find(s).
func (p *Partition) Find(s int) int {
	for p.Blocks[s].Root != s {
		grandparent := p.Blocks[p.Blocks[s].Root].Root
		if p.Blocks[s].Root != grandparent {
			p.changedBlock(s)
			p.Blocks[s].Root = grandparent
		}
		s = p.Blocks[s].Root
	}
	return s
}

// union merges the blocks rooted at a and b, which must be distinct roots.
// It performs union-by-size (ties resolve to a, the left-hand argument,
// which matches MergeStates' cascade ordering contract), splices the link
// cycles, aggregates labels and counts, and adopts the surviving
// transitions of the child into the parent.
func (p *Partition) union(a, b int) {
	p.changedBlock(a)
	p.changedBlock(b)

	p.BlocksCount--

	if p.Blocks[a].Size < p.Blocks[b].Size {
		a, b = b, a
	}

	p.Blocks[a].Link, p.Blocks[b].Link = p.Blocks[b].Link, p.Blocks[a].Link

	p.Blocks[b].Root = a
	p.Blocks[a].Size += p.Blocks[b].Size

	switch {
	case p.Blocks[a].Label == Unlabelled && p.Blocks[b].Label != Unlabelled:
		p.Blocks[a].Label = p.Blocks[b].Label
	case p.Blocks[a].Label == Accepting && p.Blocks[b].Label == Accepting:
		p.AcceptingBlocksCount--
	case p.Blocks[a].Label == Rejecting && p.Blocks[b].Label == Rejecting:
		p.RejectingBlocksCount--
	}

	for symbol := 0; symbol < p.AlphabetSize; symbol++ {
		if p.Blocks[a].Transitions[symbol] == -1 {
			p.Blocks[a].Transitions[symbol] = p.Blocks[b].Transitions[symbol]
			p.Blocks[b].Transitions[symbol] = -1
		}
	}
}

// ReturnSet follows the Link cycle from block, returning every member of
// the block (including block itself) in cycle order. Used for diagnostics
// and tests.
func (p *Partition) ReturnSet(block int) []int {
	members := []int{block}
	for id := p.Blocks[block].Link; id != block; id = p.Blocks[id].Link {
		members = append(members, id)
	}
	return members
}

// RootBlocks returns, in ascending state-id order, the ids of every
// current root block.
func (p *Partition) RootBlocks() []int {
	roots := make([]int, 0, p.BlocksCount)
	for id := range p.Blocks {
		if p.Blocks[id].Root == id {
			roots = append(roots, id)
			if len(roots) == p.BlocksCount {
				break
			}
		}
	}
	return roots
}

// StartingBlock returns the current root of the partition's starting
// state.
func (p *Partition) StartingBlock() int {
	return p.Find(p.StartingStateID)
}

// LabelledBlockCount returns the number of root blocks with a non-
// Unlabelled label.
func (p *Partition) LabelledBlockCount() int {
	return p.AcceptingBlocksCount + p.RejectingBlocksCount
}
