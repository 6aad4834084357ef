// Package expr solves the stack-based expression exercises: bracket
// matching, Reverse Polish Notation, infix evaluation via the
// shunting-yard algorithm, nested string decoding, Unix path
// simplification and a stack with O(1) minimum.
//
// Pipeline for infix input
//
//	Calculate(s) = eval(ToPostfix(Tokenize(s)))
//
//	"2*(3+-4)"  →  [2 * ( 3 + - 4 )]     Tokenize
//	            →  [2 3 4 neg + *]       ToPostfix (unary minus becomes neg)
//	            →  -2                    eval with an operand stack
//
// Semantics
//
//   - Integers only; / truncates toward zero like Go's integer division.
//   - Unary minus (and a redundant unary plus) is recognised at the start
//     of an expression, after an operator and after '('.
//   - Arithmetic wraps on int overflow as Go does.
//
// Complexity: every routine is a single pass, O(n) time and O(n) memory.
//
// Errors
//
//   - ErrUnexpectedChar   from Tokenize.
//   - ErrMismatchedParens from ToPostfix.
//   - ErrMalformed        for missing operands, adjacent numbers, bad RPN tokens,
//     out-of-range numbers and oversized DecodeString counts.
//   - ErrDivisionByZero   from evaluation.
//   - ErrEmptyStack       from MinStack.
package expr
