package expr

import (
	"errors"
	"strconv"
)

// Sentinel errors for expression parsing and evaluation.
var (
	// ErrUnexpectedChar indicates a character that is not part of the grammar.
	ErrUnexpectedChar = errors.New("expr: unexpected character")

	// ErrMismatchedParens indicates an unbalanced '(' or ')'.
	ErrMismatchedParens = errors.New("expr: mismatched parentheses")

	// ErrMalformed indicates a well-tokenised but ill-formed expression,
	// such as a missing operand or two adjacent numbers.
	ErrMalformed = errors.New("expr: malformed expression")

	// ErrDivisionByZero indicates an integer division by zero.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrEmptyStack is returned by MinStack accessors on an empty stack.
	ErrEmptyStack = errors.New("expr: stack is empty")
)

// Kind classifies a Token.
type Kind int

const (
	// Number is an integer literal; Token.Value holds it.
	Number Kind = iota
	// Operator is one of + - * / or the unary negation Neg; Token.Op holds it.
	Operator
	// LeftParen is '('.
	LeftParen
	// RightParen is ')'.
	RightParen
)

// Neg is the Op of a unary minus produced by ToPostfix.
const Neg byte = '~'

// Token is a lexical unit of an arithmetic expression.
type Token struct {
	Kind  Kind
	Value int  // for Number
	Op    byte // for Operator: '+', '-', '*', '/', Neg
	Pos   int  // byte offset in the source, -1 when synthesised
}

// String renders the token as it would appear in source; Neg renders as "neg".
func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.Itoa(t.Value)
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	if t.Op == Neg {
		return "neg"
	}

	return string(t.Op)
}

// precedence returns the binding strength of an operator byte.
func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case Neg:
		return 3
	}

	return 0
}

// rightAssoc reports whether op groups right-to-left.
func rightAssoc(op byte) bool { return op == Neg }
