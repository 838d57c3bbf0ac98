package essence

// Pool tracks essence quantities by type. It backs both a player's unplaced
// pool and the store sitting on an individual card; the two are never mixed
// implicitly. A nil Pool reads as empty.
type Pool map[Type]int

// NewPool creates an empty pool.
func NewPool() Pool {
	return make(Pool)
}

// Count returns the amount of a single essence type.
func (p Pool) Count(t Type) int {
	return p[t]
}

// Add adds essence to the pool. Non-positive amounts are ignored.
func (p Pool) Add(t Type, amount int) {
	if amount <= 0 || !t.IsValid() {
		return
	}
	p[t] += amount
}

// AddAll merges every entry of other into the pool.
func (p Pool) AddAll(other Pool) {
	for t, n := range other {
		p.Add(t, n)
	}
}

// Remove takes essence out of the pool.
// Returns false without mutating if the pool holds less than amount.
func (p Pool) Remove(t Type, amount int) bool {
	if amount <= 0 {
		return true
	}
	if p[t] < amount {
		return false
	}
	p[t] -= amount
	if p[t] == 0 {
		delete(p, t)
	}
	return true
}

// Total returns the total number of essences across all types.
func (p Pool) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// NonGoldTotal returns the number of essences that can satisfy "any" costs.
func (p Pool) NonGoldTotal() int {
	return p.Total() - p[Gold]
}

// Value returns the tie-break value of the pool: gold counts double.
func (p Pool) Value() int {
	return p.Total() + p[Gold]
}

// IsEmpty reports whether the pool holds no essence.
func (p Pool) IsEmpty() bool {
	return p.Total() == 0
}

// Clone returns an independent copy of the pool.
func (p Pool) Clone() Pool {
	out := NewPool()
	for t, n := range p {
		if n > 0 {
			out[t] = n
		}
	}
	return out
}

// Drain removes and returns the entire contents of the pool.
func (p Pool) Drain() Pool {
	out := p.Clone()
	for t := range p {
		delete(p, t)
	}
	return out
}
