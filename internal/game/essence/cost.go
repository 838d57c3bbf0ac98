package essence

import (
	"fmt"
	"strings"
)

// Cost is an essence price: fixed per-type amounts plus an Any portion payable
// with any combination of non-gold essence.
type Cost struct {
	Red   int
	Blue  int
	Green int
	Black int
	Gold  int
	Any   int
}

// Amount returns the fixed amount required of a single essence type.
func (c Cost) Amount(t Type) int {
	switch t {
	case Red:
		return c.Red
	case Blue:
		return c.Blue
	case Green:
		return c.Green
	case Black:
		return c.Black
	case Gold:
		return c.Gold
	}
	return 0
}

// Total returns the total number of essences the cost requires.
func (c Cost) Total() int {
	return c.Red + c.Blue + c.Green + c.Black + c.Gold + c.Any
}

// IsFree reports whether the cost requires nothing.
func (c Cost) IsFree() bool {
	return c.Total() == 0
}

// AsPool converts the fixed portion of the cost to a pool. The Any portion is
// not representable as concrete essence and is dropped; callers that refund a
// cost (gain-from-destroyed effects) receive the Any portion as extra units of
// the first non-gold type, matching how an unspecified payment resolves.
func (c Cost) AsPool() Pool {
	p := NewPool()
	for _, t := range All() {
		p.Add(t, c.Amount(t))
	}
	if c.Any > 0 {
		p.Add(nonGoldOrder[0], c.Any)
	}
	return p
}

// CanPay checks whether a pool can pay this cost: fixed per-type amounts are
// reserved first, then the leftover non-gold total must cover the Any portion.
func (c Cost) CanPay(pool Pool) bool {
	leftover := 0
	for _, t := range NonGold() {
		have := pool.Count(t)
		need := c.Amount(t)
		if have < need {
			return false
		}
		leftover += have - need
	}
	if pool.Count(Gold) < c.Gold {
		return false
	}
	return leftover >= c.Any
}

// String renders the cost in brace notation for logs, e.g. "{R}{R}{G}{2}".
func (c Cost) String() string {
	if c.IsFree() {
		return "{0}"
	}
	var b strings.Builder
	symbols := []struct {
		n   int
		sym string
	}{
		{c.Red, "R"}, {c.Blue, "U"}, {c.Green, "G"}, {c.Black, "B"}, {c.Gold, "$"},
	}
	for _, s := range symbols {
		for i := 0; i < s.n; i++ {
			b.WriteString("{" + s.sym + "}")
		}
	}
	if c.Any > 0 {
		fmt.Fprintf(&b, "{%d}", c.Any)
	}
	return b.String()
}
