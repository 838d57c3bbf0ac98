package game

import "fmt"

// Result is the outcome of a mutating operation. Precondition failures (wrong
// phase, wrong turn, unaffordable cost, unknown entity, invalid choice) are
// normal outcomes the caller is expected to check, never errors or panics.
type Result struct {
	OK     bool
	Reason string
}

func ok() Result {
	return Result{OK: true}
}

func fail(format string, args ...any) Result {
	return Result{Reason: fmt.Sprintf(format, args...)}
}
