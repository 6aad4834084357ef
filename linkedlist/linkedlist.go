// Package linkedlist holds the singly linked list exercises: reversal,
// merging, digit-wise addition, Floyd cycle detection, middle node,
// removal from the end and palindrome check.
//
// A nil *Node is the empty list. Functions that rewire pointers (Reverse,
// MergeTwo, RemoveNthFromEnd) reuse the input nodes; the others leave the
// list as they found it.
package linkedlist

import "errors"

// ErrOutOfRange indicates a position that does not exist in the list.
var ErrOutOfRange = errors.New("linkedlist: position out of range")

// Node is a singly linked list node.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice builds a list holding vals in order.
func FromSlice(vals []int) *Node {
	dummy := &Node{}
	tail := dummy
	for _, v := range vals {
		tail.Next = &Node{Val: v}
		tail = tail.Next
	}

	return dummy.Next
}

// ToSlice collects the values of head. It does not terminate on a cyclic list.
func ToSlice(head *Node) []int {
	var out []int
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}

	return out
}

// Reverse reverses the list in place and returns the new head.
func Reverse(head *Node) *Node {
	var prev *Node
	for head != nil {
		head.Next, prev, head = prev, head, head.Next
	}

	return prev
}

// MergeTwo splices two ascending lists into one ascending list.
// On ties the node from a comes first.
func MergeTwo(a, b *Node) *Node {
	dummy := &Node{}
	tail := dummy
	for a != nil && b != nil {
		if b.Val < a.Val {
			tail.Next, b = b, b.Next
		} else {
			tail.Next, a = a, a.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}

	return dummy.Next
}

// AddTwoNumbers adds two non-negative numbers stored as digit lists, least
// significant digit first, and returns the sum in the same form.
func AddTwoNumbers(a, b *Node) *Node {
	dummy := &Node{}
	tail := dummy
	carry := 0
	for a != nil || b != nil || carry > 0 {
		sum := carry
		if a != nil {
			sum += a.Val
			a = a.Next
		}
		if b != nil {
			sum += b.Val
			b = b.Next
		}
		carry = sum / 10
		tail.Next = &Node{Val: sum % 10}
		tail = tail.Next
	}

	return dummy.Next
}

// HasCycle reports whether following Next from head ever revisits a node.
func HasCycle(head *Node) bool {
	return meet(head) != nil
}

// DetectCycle returns the first node of the cycle, or nil if the list is
// acyclic. After slow and fast meet, a pointer from head and one from the
// meeting point advance in lockstep and meet at the cycle entry.
func DetectCycle(head *Node) *Node {
	m := meet(head)
	if m == nil {
		return nil
	}
	for p := head; p != m; p, m = p.Next, m.Next {
	}

	return m
}

// meet runs Floyd's tortoise and hare and returns the meeting node, or nil.
func meet(head *Node) *Node {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return slow
		}
	}

	return nil
}

// Middle returns the middle node; for even lengths the second of the two.
func Middle(head *Node) *Node {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}

	return slow
}

// RemoveNthFromEnd unlinks the n-th node from the end (n = 1 is the tail)
// in one pass and returns the new head.
//
// Errors:
//   - ErrOutOfRange if n < 1 or n exceeds the list length; the list is unchanged.
func RemoveNthFromEnd(head *Node, n int) (*Node, error) {
	if n < 1 {
		return head, ErrOutOfRange
	}
	dummy := &Node{Next: head}
	lead := dummy
	for i := 0; i < n; i++ {
		lead = lead.Next
		if lead == nil {
			return head, ErrOutOfRange
		}
	}
	trail := dummy
	for lead.Next != nil {
		lead, trail = lead.Next, trail.Next
	}
	trail.Next = trail.Next.Next

	return dummy.Next, nil
}

// IsPalindrome reports whether the values read the same in both directions.
// The second half is reversed for the comparison and restored afterwards.
func IsPalindrome(head *Node) bool {
	if head == nil || head.Next == nil {
		return true
	}
	// end of first half
	slow, fast := head, head
	for fast.Next != nil && fast.Next.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
	}
	second := Reverse(slow.Next)

	ok := true
	for p, q := head, second; q != nil; p, q = p.Next, q.Next {
		if p.Val != q.Val {
			ok = false
			break
		}
	}
	slow.Next = Reverse(second)

	return ok
}
