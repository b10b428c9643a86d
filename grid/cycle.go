// SPDX-License-Identifier: MIT

package grid

// Cycle describes the trajectory of a deterministic step function that
// eventually repeats: States[0..Prefix) lead in, then States[Prefix..]
// repeat with the given Period.
type Cycle[S any] struct {
	Prefix int
	Period int
	States []S
}

// At returns the state after n steps without simulating them. It reports
// false for negative n, and for n past the recorded states when no period
// was found.
func (c Cycle[S]) At(n int) (S, bool) {
	var zero S
	switch {
	case n < 0:
		return zero, false
	case n < len(c.States):
		return c.States[n], true
	case c.Period == 0:
		return zero, false
	}
	return c.States[c.Prefix+(n-c.Prefix)%c.Period], true
}

// DetectCycle iterates step from start until key reports a state seen
// before, typically a grid Hash. It stops after limit steps when limit > 0,
// returning Period 0 if no repeat was found.
//
// Complexity: O(P+L) steps and keys, where P is the prefix and L the period.
func DetectCycle[S any, K comparable](start S, step func(S) S, key func(S) K, limit int) Cycle[S] {
	seen := map[K]int{key(start): 0}
	c := Cycle[S]{States: []S{start}}
	cur := start
	for limit <= 0 || len(c.States) <= limit {
		cur = step(cur)
		k := key(cur)
		if i, ok := seen[k]; ok {
			c.Prefix, c.Period = i, len(c.States)-i
			return c
		}
		seen[k] = len(c.States)
		c.States = append(c.States, cur)
	}
	return c
}
