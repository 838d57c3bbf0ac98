package essence

// Type represents one of the five essence types.
type Type string

const (
	Red   Type = "red"
	Blue  Type = "blue"
	Green Type = "green"
	Black Type = "black"
	Gold  Type = "gold"
)

// nonGoldOrder is the fixed order used everywhere a payment or fallback is
// resolved greedily across non-gold types.
var nonGoldOrder = []Type{Red, Blue, Green, Black}

// NonGold returns the four non-gold essence types in greedy-resolution order.
func NonGold() []Type {
	out := make([]Type, len(nonGoldOrder))
	copy(out, nonGoldOrder)
	return out
}

// All returns every essence type, non-gold types first.
func All() []Type {
	return append(NonGold(), Gold)
}

// IsValid reports whether t is one of the five essence types.
func (t Type) IsValid() bool {
	switch t {
	case Red, Blue, Green, Black, Gold:
		return true
	}
	return false
}

// IsNonGold reports whether t can satisfy an "any" cost. Gold never can.
func (t Type) IsNonGold() bool {
	return t.IsValid() && t != Gold
}

func (t Type) String() string {
	return string(t)
}
