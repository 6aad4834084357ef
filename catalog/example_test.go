package catalog_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlkata/catalog"
	"github.com/katalvlaran/lvlkata/internal/casefile"
)

// ExampleVerify checks a small case document against the registered runner.
func ExampleVerify() {
	doc := `
problem: daily-temperatures
cases:
  - name: warming
    nums: [73, 74, 75, 71, 69, 72, 76, 73]
    want: [1, 1, 4, 2, 1, 1, 0, 0]
  - name: wrong on purpose
    nums: [30, 40]
    want: [0, 0]
`
	f, err := casefile.Load(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	p, err := catalog.Default().Lookup(f.Problem)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, res := range catalog.Verify(p, f.Cases) {
		fmt.Println(res)
	}
	// Output:
	// PASS warming
	// FAIL wrong on purpose: got [1 0], want [0 0]
}
