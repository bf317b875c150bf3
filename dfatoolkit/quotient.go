package dfatoolkit

// ToQuotientDFA materialises p into a new DFA with one state per root
// block, in state-id order, giving a canonical output for any partition.
// Transition targets are resolved to their current root via Find before
// being translated into the new state-id space.
func (p *Partition) ToQuotientDFA() *DFA {
	result := New()

	for i := 0; i < p.AlphabetSize; i++ {
		result.AddSymbol()
	}

	roots := p.RootBlocks()
	blockToState := make(map[int]int, len(roots))

	for _, root := range roots {
		blockToState[root] = result.AddState(p.Blocks[root].Label)
	}

	for _, root := range roots {
		newState := blockToState[root]
		for symbol := 0; symbol < p.AlphabetSize; symbol++ {
			target := p.Blocks[root].Transitions[symbol]
			if target == -1 {
				continue
			}
			result.States[newState].Transitions[symbol] = blockToState[p.Find(target)]
		}
	}

	result.StartingStateID = blockToState[p.StartingBlock()]

	return result
}
