// Package search provides a generic depth-first search driver.
//
// A search problem is described by a Space: a start state, a goal test and a
// successor function. The driver itself knows nothing about the states it
// moves between, so the same loop serves every search problem in this
// repository.
package search

// A Space describes a search problem.
type Space[S any] interface {
	// StartState returns the state the search begins from.
	StartState() S
	// IsGoal is true iff s is a goal state.
	IsGoal(s S) bool
	// Successors returns the states reachable from s in one step, in the
	// order they should be explored.
	Successors(s S) []S
}

// DFS explores sp depth-first, expanding each state's successors in the
// order Successors returns them, and backtracking from states with none.
// It returns the first goal state found together with the number of states
// visited, or ok=false after exhausting the space. A state counts as
// visited when it is taken off the stack for goal-testing.
func DFS[S any](sp Space[S]) (goal S, ok bool, visited int) {
	stack := []S{sp.StartState()}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++
		if sp.IsGoal(s) {
			return s, true, visited
		}
		succs := sp.Successors(s)
		for i := len(succs) - 1; i >= 0; i-- {
			stack = append(stack, succs[i])
		}
	}
	var none S
	return none, false, visited
}
