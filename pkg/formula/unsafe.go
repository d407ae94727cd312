package formula

// The functions in this file change a node in place without checking anything. They exist
// for rewriting passes that patch trees they own; the result must be passed through
// post-condition enforcement before it is handed to anyone else. The construction time type
// of the node is left alone.

// UnsafeSetArg replaces argument i of n.
func UnsafeSetArg(n *Node, i int, arg *Node) {
	n.args[i] = arg
}

// UnsafeRebuild replaces all of the arguments of n.
func UnsafeRebuild(n *Node, args []*Node) {
	n.args = append([]*Node(nil), args...)
}
