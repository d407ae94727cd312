package typecheck

import (
	"github.com/leftmike/smt/pkg/formula"
)

// IsQuantifierFree reports whether n contains no FORALL or EXISTS node. It looks only at the
// structure of the tree, so it may be used on trees that do not type check.
func IsQuantifierFree(n *formula.Node) bool {
	if n == nil {
		return true
	}

	seen := map[*formula.Node]struct{}{}
	stack := []*formula.Node{n}
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Kind().IsQuantifier() {
			return false
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}

		// Push in reverse so that arguments are visited left to right.
		for idx := n.NumArgs() - 1; idx >= 0; idx -= 1 {
			if arg := n.Arg(idx); arg != nil {
				stack = append(stack, arg)
			}
		}
	}
	return true
}
