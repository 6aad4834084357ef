package expr

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

// MaxDecodedLen bounds the length of a DecodeString result.
const MaxDecodedLen = 1 << 24

// DecodeString expands k[encoded] groups, which may nest:
// "3[a2[c]]" → "accaccacc". A count of 0 yields the empty string.
//
// Errors:
//   - ErrMalformed for a count not followed by '[', an unmatched bracket,
//     a '[' without a count, a count that overflows int, or an expansion
//     longer than MaxDecodedLen bytes.
func DecodeString(s string) (string, error) {
	type frame struct {
		prev   []byte
		repeat int
	}
	var (
		stack   []frame
		cur     []byte
		num     int
		pending bool // digits read since the last '['/']'/letter
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			d := int(c - '0')
			if num > (math.MaxInt-d)/10 {
				return "", fmt.Errorf("%w: count too large at %d", ErrMalformed, i)
			}
			num = num*10 + d
			pending = true
		case c == '[':
			if !pending {
				return "", fmt.Errorf("%w: '[' at %d has no count", ErrMalformed, i)
			}
			stack = append(stack, frame{prev: cur, repeat: num})
			cur, num, pending = nil, 0, false
		case c == ']':
			if pending || len(stack) == 0 {
				return "", fmt.Errorf("%w: unexpected ']' at %d", ErrMalformed, i)
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(cur) > 0 && f.repeat > (MaxDecodedLen-len(f.prev))/len(cur) {
				return "", fmt.Errorf("%w: expansion at %d exceeds %d bytes", ErrMalformed, i, MaxDecodedLen)
			}
			cur = append(f.prev, bytes.Repeat(cur, f.repeat)...)
		default:
			if pending {
				return "", fmt.Errorf("%w: count before %q at %d", ErrMalformed, c, i)
			}
			if len(cur) >= MaxDecodedLen {
				return "", fmt.Errorf("%w: expansion at %d exceeds %d bytes", ErrMalformed, i, MaxDecodedLen)
			}
			cur = append(cur, c)
		}
	}
	if pending || len(stack) > 0 {
		return "", fmt.Errorf("%w: unterminated group", ErrMalformed)
	}

	return string(cur), nil
}

// SimplifyPath returns the canonical form of an absolute Unix path:
// repeated slashes collapse, "." is dropped and ".." pops one directory
// (never above the root). The result has no trailing slash except "/".
func SimplifyPath(p string) string {
	var stack []string
	for _, part := range strings.Split(p, "/") {
		switch part {
		case "", ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, part)
		}
	}

	return "/" + strings.Join(stack, "/")
}
