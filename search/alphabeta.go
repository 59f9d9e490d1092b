package search

// alphabetaValue evaluates a node under running [alpha, beta] bounds: alpha
// is the best value the maximizer can already force, beta the minimizer's.
// Once alpha >= beta the remaining siblings cannot change the decision above
// and are dropped. For any inputs it agrees with minimaxValue on the value
// inside the window, and visits no more leaves.
func (e *Engine[B, M, T]) alphabetaValue(board B, leaf Value[T], depth int, alpha, beta Value[T], role Role) Value[T] {
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
			value = d.Max(value, e.alphabetaValue(plies[i].after, plies[i].heur, depth-1, alpha, beta, Minimizing))
			alpha = d.Max(alpha, value)
			if d.Compare(alpha, beta) >= 0 { // beta cutoff
				e.metrics.AddCutoff()
				break
			}
		}
		return value
	}

	value := PosInf[T]()
	for i := range plies {
		value = d.Min(value, e.alphabetaValue(plies[i].after, plies[i].heur, depth-1, alpha, beta, Maximizing))
		beta = d.Min(beta, value)
		if d.Compare(alpha, beta) >= 0 { // alpha cutoff
			e.metrics.AddCutoff()
			break
		}
	}
	return value
}
