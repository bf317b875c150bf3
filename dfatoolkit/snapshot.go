package dfatoolkit

// Clone deep-copies the partition, including its current change log and
// IsCopy flag. Used internally by Copy; exposed for callers that need an
// independent working copy without the snapshot/rollback contract.
func (p *Partition) Clone() *Partition {
	clone := &Partition{
		Blocks:             make([]Block, len(p.Blocks)),
		BlocksCount:        p.BlocksCount,
		AcceptingBlocksCount: p.AcceptingBlocksCount,
		RejectingBlocksCount: p.RejectingBlocksCount,
		AlphabetSize:       p.AlphabetSize,
		StartingStateID:    p.StartingStateID,
		IsCopy:             p.IsCopy,
		ChangedBlocksCount: p.ChangedBlocksCount,
	}

	for i, b := range p.Blocks {
		transitions := make([]int, len(b.Transitions))
		copy(transitions, b.Transitions)
		clone.Blocks[i] = Block{
			Root:        b.Root,
			Size:        b.Size,
			Link:        b.Link,
			Label:       b.Label,
			Changed:     b.Changed,
			Transitions: transitions,
		}
	}

	if p.IsCopy {
		clone.ChangedBlocks = make([]int, len(p.ChangedBlocks))
		copy(clone.ChangedBlocks, p.ChangedBlocks)
	}

	return clone
}

// Copy returns a snapshot of p suitable for speculative merges: IsCopy is
// set, the logical change log starts empty, and its backing buffer is
// pre-allocated to capacity len(p.Blocks) so that changedBlock never
// allocates on the hot path. Fails with ErrAlreadyCopy if p is itself
// already a snapshot.
func (p *Partition) Copy() (*Partition, error) {
	if p.IsCopy {
		return nil, ErrAlreadyCopy
	}

	snapshot := p.Clone()
	snapshot.IsCopy = true
	snapshot.ChangedBlocksCount = 0
	snapshot.ChangedBlocks = make([]int, len(p.Blocks))

	return snapshot, nil
}

// RollbackChangesFrom restores p (which must be a snapshot) to agree with
// base on every block touched since the snapshot was taken, then empties
// the change log. Complexity is O(changed), independent of total states.
// A no-op when p is not a snapshot.
func (p *Partition) RollbackChangesFrom(base *Partition) {
	if !p.IsCopy {
		return
	}

	p.BlocksCount = base.BlocksCount
	p.AcceptingBlocksCount = base.AcceptingBlocksCount
	p.RejectingBlocksCount = base.RejectingBlocksCount

	for i := 0; i < p.ChangedBlocksCount; i++ {
		id := p.ChangedBlocks[i]
		original := base.Blocks[id]

		transitions := make([]int, len(original.Transitions))
		copy(transitions, original.Transitions)

		p.Blocks[id] = Block{
			Root:        original.Root,
			Size:        original.Size,
			Link:        original.Link,
			Label:       original.Label,
			Changed:     false,
			Transitions: transitions,
		}
	}

	p.ChangedBlocksCount = 0
}

// CopyChangesFrom commits every block touched in snapshot (which must be a
// snapshot) back into p, then resets snapshot's logical change-log length
// to zero so it is aligned with p and ready for the next speculative
// merge. A no-op when snapshot is not a snapshot.
func (p *Partition) CopyChangesFrom(snapshot *Partition) {
	if !snapshot.IsCopy {
		return
	}

	p.BlocksCount = snapshot.BlocksCount
	p.AcceptingBlocksCount = snapshot.AcceptingBlocksCount
	p.RejectingBlocksCount = snapshot.RejectingBlocksCount

	for i := 0; i < snapshot.ChangedBlocksCount; i++ {
		id := snapshot.ChangedBlocks[i]
		changed := snapshot.Blocks[id]

		transitions := make([]int, len(changed.Transitions))
		copy(transitions, changed.Transitions)

		p.Blocks[id] = Block{
			Root:        changed.Root,
			Size:        changed.Size,
			Link:        changed.Link,
			Label:       changed.Label,
			Changed:     false,
			Transitions: transitions,
		}

		snapshot.Blocks[id].Changed = false
	}

	snapshot.ChangedBlocksCount = 0
}
