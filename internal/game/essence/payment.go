package essence

// GreedySplit builds a split covering amount units from the pool's non-gold
// essence, taking red, then blue, then green, then black. Returns nil if the
// pool cannot cover the amount.
func GreedySplit(pool Pool, amount int) Pool {
	if amount < 0 || pool.NonGoldTotal() < amount {
		return nil
	}
	split := NewPool()
	remaining := amount
	for _, t := range NonGold() {
		if remaining == 0 {
			break
		}
		take := pool.Count(t)
		if take > remaining {
			take = remaining
		}
		split.Add(t, take)
		remaining -= take
	}
	if remaining > 0 {
		return nil
	}
	return split
}

// validSplit reports whether split is an exact non-gold cover of amount that
// the pool can afford on top of the cost's fixed portion.
func validSplit(cost Cost, pool Pool, split Pool) bool {
	if split == nil || split.Total() != cost.Any {
		return false
	}
	for t, n := range split {
		if !t.IsNonGold() || n < 0 {
			return false
		}
		if pool.Count(t)-cost.Amount(t) < n {
			return false
		}
	}
	return true
}

// Pay deducts the cost from the pool. The optional split specifies how the Any
// portion is covered; an absent or invalid split is auto-paid greedily in
// red, blue, green, black order. Returns false without mutating if the pool
// cannot afford the cost. CanPay returning true guarantees Pay succeeds.
func Pay(cost Cost, pool Pool, split Pool) bool {
	if !cost.CanPay(pool) {
		return false
	}
	if cost.Any > 0 && !validSplit(cost, pool, split) {
		leftover := pool.Clone()
		for _, t := range NonGold() {
			leftover.Remove(t, cost.Amount(t))
		}
		split = GreedySplit(leftover, cost.Any)
	}
	for _, t := range All() {
		pool.Remove(t, cost.Amount(t))
	}
	for t, n := range split {
		pool.Remove(t, n)
	}
	return true
}
