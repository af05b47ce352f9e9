package node

import "strconv"

// Resolve walks segments down the tree rooted at n and returns the node they
// address, or nil when no such node exists.
//
// Hashes are descended by key, arrays by base-10 non-negative index. A
// segment that does not parse as an index against an array, a path that
// outlives the data (segments remaining at a scalar), or an absent key all
// yield nil; resolution never errors. Resolve with no segments yields nil.
func Resolve(n *Node, segments []string) *Node {
	if len(segments) == 0 {
		return nil
	}

	head, rest := segments[0], segments[1:]

	switch n.Type() {
	case HashType:
		child := n.Key(head)
		if child == nil || len(rest) == 0 {
			return child
		}

		return Resolve(child, rest)

	case ArrayType:
		index, err := strconv.ParseUint(head, 10, 32)
		if err != nil {
			return nil
		}

		child := n.At(int(index))
		if child == nil || len(rest) == 0 {
			return child
		}

		return Resolve(child, rest)

	default:
		// The path is longer than the data structure.
		return nil
	}
}
