package expr

import (
	"fmt"
	"strconv"
)

// IsValidParentheses reports whether every bracket in s ((), [], {}) is
// closed by the matching type in the right order. Other characters are
// ignored.
func IsValidParentheses(s string) bool {
	pairs := map[rune]rune{')': '(', ']': '[', '}': '{'}
	var stack []rune
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0
}

// Tokenize splits an infix arithmetic expression into tokens. Whitespace is
// skipped; '+' and '-' are always emitted as binary operators here and
// reclassified by ToPostfix.
//
// Errors:
//   - ErrUnexpectedChar for anything other than digits, + - * / ( ) and spaces.
//   - ErrMalformed for a number literal that does not fit in an int.
func Tokenize(s string) ([]Token, error) {
	var out []Token
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			continue
		case c >= '0' && c <= '9':
			start := i
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			v, err := strconv.Atoi(s[start:i])
			if err != nil {
				return nil, fmt.Errorf("%w: number at %d: %v", ErrMalformed, start, err)
			}
			i-- // loop increment
			out = append(out, Token{Kind: Number, Value: v, Pos: start})
		case c == '+' || c == '-' || c == '*' || c == '/':
			out = append(out, Token{Kind: Operator, Op: c, Pos: i})
		case c == '(':
			out = append(out, Token{Kind: LeftParen, Pos: i})
		case c == ')':
			out = append(out, Token{Kind: RightParen, Pos: i})
		default:
			return nil, fmt.Errorf("%w %q at %d", ErrUnexpectedChar, c, i)
		}
	}

	return out, nil
}

// ToPostfix reorders infix tokens into postfix (RPN) with Dijkstra's
// shunting-yard algorithm. A '-' in prefix position becomes Neg; a '+' in
// prefix position is dropped.
//
// Errors:
//   - ErrMismatchedParens for an unmatched '(' or ')'.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var ops []Token
	prefix := true // next token starts an operand

	for _, tok := range tokens {
		switch tok.Kind {
		case Number:
			out = append(out, tok)
			prefix = false
		case LeftParen:
			ops = append(ops, tok)
			prefix = true
		case RightParen:
			for len(ops) > 0 && ops[len(ops)-1].Kind != LeftParen {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, fmt.Errorf("%w: ')' at %d", ErrMismatchedParens, tok.Pos)
			}
			ops = ops[:len(ops)-1] // discard '('
			prefix = false
		case Operator:
			if prefix {
				if tok.Op == '+' {
					continue
				}
				if tok.Op == '-' {
					tok.Op = Neg
				}
				// prefix operators have no left operand, so nothing is popped
				ops = append(ops, tok)
				continue
			}
			p := precedence(tok.Op)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != Operator {
					break
				}
				tp := precedence(top.Op)
				if tp < p || (tp == p && rightAssoc(tok.Op)) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
			prefix = true
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.Kind == LeftParen {
			return nil, fmt.Errorf("%w: '(' at %d", ErrMismatchedParens, top.Pos)
		}
		out = append(out, top)
		ops = ops[:len(ops)-1]
	}

	return out, nil
}

// EvalPostfix evaluates postfix tokens with an operand stack.
//
// Errors:
//   - ErrMalformed if an operator lacks operands or more than one value remains.
//   - ErrDivisionByZero for x / 0.
func EvalPostfix(tokens []Token) (int, error) {
	var stack []int
	for _, tok := range tokens {
		if tok.Kind == Number {
			stack = append(stack, tok.Value)
			continue
		}
		if tok.Kind != Operator {
			return 0, fmt.Errorf("%w: unexpected %s in postfix", ErrMalformed, tok)
		}
		if tok.Op == Neg {
			if len(stack) < 1 {
				return 0, fmt.Errorf("%w: negation without operand", ErrMalformed)
			}
			stack[len(stack)-1] = -stack[len(stack)-1]
			continue
		}
		if len(stack) < 2 {
			return 0, fmt.Errorf("%w: %q needs two operands", ErrMalformed, tok.Op)
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		v, err := apply(tok.Op, a, b)
		if err != nil {
			return 0, err
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformed, len(stack))
	}

	return stack[0], nil
}

func apply(op byte, a, b int) (int, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, ErrDivisionByZero
		}

		return a / b, nil
	}

	return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformed, op)
}

// Calculate evaluates an infix integer expression with + - * /, parentheses
// and unary minus, honouring the usual precedence and left associativity.
func Calculate(s string) (int, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return 0, err
	}
	post, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}

	return EvalPostfix(post)
}

// EvalRPN evaluates an expression given as Reverse Polish Notation tokens,
// e.g. ["2","1","+","3","*"] → 9. Operands may be negative ("-11").
//
// Errors:
//   - ErrMalformed for a token that is neither an operator nor an integer,
//     or a stack imbalance.
//   - ErrDivisionByZero for x / 0.
func EvalRPN(tokens []string) (int, error) {
	post := make([]Token, 0, len(tokens))
	for i, s := range tokens {
		if len(s) == 1 && precedence(s[0]) > 0 && s[0] != Neg {
			post = append(post, Token{Kind: Operator, Op: s[0], Pos: i})
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: token %d %q", ErrMalformed, i, s)
		}
		post = append(post, Token{Kind: Number, Value: v, Pos: i})
	}

	return EvalPostfix(post)
}
