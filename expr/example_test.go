package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvlkata/expr"
)

// ExampleCalculate evaluates an infix expression with unary minus.
func ExampleCalculate() {
	v, err := expr.Calculate("2*(3+-4) - 10/3")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v)
	// Output: -5
}

// ExampleEvalRPN evaluates Reverse Polish Notation.
func ExampleEvalRPN() {
	v, _ := expr.EvalRPN([]string{"2", "1", "+", "3", "*"})
	fmt.Println(v)
	// Output: 9
}

// ExampleDecodeString expands nested repeat groups.
func ExampleDecodeString() {
	s, _ := expr.DecodeString("3[a2[c]]")
	fmt.Println(s)
	// Output: accaccacc
}
