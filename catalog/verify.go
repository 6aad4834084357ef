package catalog

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvlkata/internal/casefile"
)

// Result is the outcome of one case.
type Result struct {
	Case string
	Pass bool
	Got  any   // normalised output, nil on error
	Want any   // normalised expectation, nil when none was declared
	Err  error // runner or normalisation error
}

// String renders the result as a single report line.
func (r Result) String() string {
	switch {
	case r.Pass:
		return fmt.Sprintf("PASS %s", r.Case)
	case r.Err != nil:
		return fmt.Sprintf("FAIL %s: %v", r.Case, r.Err)
	}

	return fmt.Sprintf("FAIL %s: got %v, want %v", r.Case, r.Got, r.Want)
}

// Verify runs every case through p and compares outputs with expectations.
// Both sides are normalised through YAML before comparison, so a runner may
// return [2]int where the case file wrote [0, 1].
//
// A case passes when:
//   - wantErr is set and the runner failed, or
//   - the runner succeeded and the output equals want, or
//   - the runner succeeded and the case declares no want.
func Verify(p Problem, cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for i, c := range cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		results = append(results, verifyOne(p, name, c))
	}

	return results
}

func verifyOne(p Problem, name string, c Case) Result {
	res := Result{Case: name}
	out, err := p.Run(c)
	if c.WantErr {
		res.Pass = err != nil
		if !res.Pass {
			res.Err = fmt.Errorf("%s: expected an error, got %v", p.Name, out)
		}

		return res
	}
	if err != nil {
		res.Err = err

		return res
	}
	if res.Got, err = casefile.Normalize(out); err != nil {
		res.Err = err

		return res
	}
	if !c.HasWant() {
		res.Pass = true

		return res
	}
	if res.Want, err = c.NormalizedWant(); err != nil {
		res.Err = err

		return res
	}
	res.Pass = reflect.DeepEqual(res.Got, res.Want)

	return res
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Pass {
			n++
		}
	}

	return n
}
