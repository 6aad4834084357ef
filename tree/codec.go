package tree

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	nilToken  = "#"
	separator = ","
)

// Serialize encodes the tree in preorder, "#" standing for a nil child and
// "," separating tokens. The empty tree encodes as "#".
//
//	    1
//	   / \
//	  2   3     →  "1,2,#,#,3,4,#,#,5,#,#"
//	     / \
//	    4   5
func Serialize(root *Node) string {
	var sb strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		if sb.Len() > 0 {
			sb.WriteString(separator)
		}
		if n == nil {
			sb.WriteString(nilToken)
			return
		}
		sb.WriteString(strconv.Itoa(n.Val))
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	return sb.String()
}

// Deserialize decodes the output of Serialize. Deserialize(Serialize(t))
// is structurally equal to t.
//
// Errors:
//   - ErrMalformed for a non-integer token, a premature end of input or
//     tokens left over after the tree is complete.
func Deserialize(s string) (*Node, error) {
	tokens := strings.Split(s, separator)
	next := 0

	var build func() (*Node, error)
	build = func() (*Node, error) {
		if next >= len(tokens) {
			return nil, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
		}
		tok := strings.TrimSpace(tokens[next])
		next++
		if tok == nilToken {
			return nil, nil
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformed, next-1, tok)
		}
		n := New(v)
		if n.Left, err = build(); err != nil {
			return nil, err
		}
		if n.Right, err = build(); err != nil {
			return nil, err
		}

		return n, nil
	}

	root, err := build()
	if err != nil {
		return nil, err
	}
	if next != len(tokens) {
		return nil, fmt.Errorf("%w: %d trailing tokens", ErrMalformed, len(tokens)-next)
	}

	return root, nil
}
