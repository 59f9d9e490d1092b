package search

// minimaxValue is the unpruned evaluator: every child of every node is
// visited. leaf is the heuristic value attached to board by the move that
// reached it; it becomes the node's value once the depth budget is spent or
// the position is terminal.
func (e *Engine[B, M, T]) minimaxValue(board B, leaf Value[T], depth int, role Role) Value[T] {
	if depth <= 0 {
		e.metrics.AddLeaf()
		return leaf
	}

	plies := e.expand(board, role)
	if len(plies) == 0 {
		e.metrics.AddLeaf()
		return leaf
	}
	e.metrics.AddNode()

	d := e.rules.Domain
	if role == Maximizing {
		value := NegInf[T]()
		for i := range plies {
			value = d.Max(value, e.minimaxValue(plies[i].after, plies[i].heur, depth-1, Minimizing))
		}
		return value
	}

	value := PosInf[T]()
	for i := range plies {
		value = d.Min(value, e.minimaxValue(plies[i].after, plies[i].heur, depth-1, Maximizing))
	}
	return value
}
