package essence

import (
	"testing"
)

func TestCost_CanPay(t *testing.T) {
	pool := NewPool()
	pool.Add(Red, 2)
	pool.Add(Blue, 1)
	pool.Add(Gold, 1)

	tests := []struct {
		name   string
		cost   Cost
		canPay bool
	}{
		{"free", Cost{}, true},
		{"exact named", Cost{Red: 2, Blue: 1}, true},
		{"too much red", Cost{Red: 3}, false},
		{"gold named", Cost{Gold: 1}, true},
		{"too much gold", Cost{Gold: 2}, false},
		{"any within non-gold", Cost{Any: 3}, true},
		{"any exceeds non-gold", Cost{Any: 4}, false},
		{"gold cannot cover any", Cost{Red: 2, Blue: 1, Any: 1}, false},
		{"named plus any", Cost{Red: 1, Any: 2}, true},
		{"named plus any too big", Cost{Red: 1, Any: 3}, false},
		{"missing type", Cost{Green: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cost.CanPay(pool); got != tt.canPay {
				t.Errorf("CanPay(%v) = %v, want %v", tt.cost, got, tt.canPay)
			}
		})
	}
}

func TestCost_String(t *testing.T) {
	tests := []struct {
		cost Cost
		want string
	}{
		{Cost{}, "{0}"},
		{Cost{Red: 2}, "{R}{R}"},
		{Cost{Green: 1, Gold: 1}, "{G}{$}"},
		{Cost{Blue: 1, Any: 3}, "{U}{3}"},
	}
	for _, tt := range tests {
		if got := tt.cost.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCost_AsPool(t *testing.T) {
	p := Cost{Red: 1, Gold: 2, Any: 2}.AsPool()
	if p.Count(Red) != 3 {
		t.Errorf("any portion should land on red, got %d red", p.Count(Red))
	}
	if p.Count(Gold) != 2 {
		t.Errorf("expected 2 gold, got %d", p.Count(Gold))
	}
}
