package essence

// Scope selects which portion of a cost a reduction may touch.
type Scope string

const (
	// ScopeAny reduces only the Any portion of a cost.
	ScopeAny Scope = "any"
	// ScopeNonGold reduces the Any portion first, then spreads across the
	// fixed non-gold amounts in red, blue, green, black order.
	ScopeNonGold Scope = "non_gold"
)

// Reduction is a flat cost reduction applied by a passive effect.
type Reduction struct {
	Amount int
	Scope  Scope
}

// Apply returns the cost after the reduction. Amounts never go negative and
// the gold portion is never reduced.
func (r Reduction) Apply(cost Cost) Cost {
	remaining := r.Amount
	if remaining <= 0 {
		return cost
	}

	reduced := cost
	cut := reduced.Any
	if cut > remaining {
		cut = remaining
	}
	reduced.Any -= cut
	remaining -= cut

	if r.Scope == ScopeAny {
		return reduced
	}

	for _, t := range NonGold() {
		if remaining == 0 {
			break
		}
		have := reduced.Amount(t)
		cut := have
		if cut > remaining {
			cut = remaining
		}
		switch t {
		case Red:
			reduced.Red -= cut
		case Blue:
			reduced.Blue -= cut
		case Green:
			reduced.Green -= cut
		case Black:
			reduced.Black -= cut
		}
		remaining -= cut
	}
	return reduced
}
