package catalog_test

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkata/catalog"
	"github.com/katalvlaran/lvlkata/internal/casefile"
)

//---// Registry //---//

func TestDefault_NamesSortedAndUnique(t *testing.T) {
	r := catalog.Default()
	names := r.Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))

	for _, want := range []string{"two-sum", "calculate", "tree-level-order", "kmp-index", "shortest-bridge", "sort"} {
		assert.Contains(t, names, want)
	}
	for _, p := range r.Problems() {
		assert.NotEmpty(t, p.Family, p.Name)
		assert.NotEmpty(t, p.Summary, p.Name)
	}
}

func TestProblems_OrderedByFamily(t *testing.T) {
	ps := catalog.Default().Problems()
	for i := 1; i < len(ps); i++ {
		prev, cur := ps[i-1], ps[i]
		ordered := prev.Family < cur.Family || (prev.Family == cur.Family && prev.Name < cur.Name)
		assert.True(t, ordered, "%s/%s before %s/%s", prev.Family, prev.Name, cur.Family, cur.Name)
	}
}

func TestLookup(t *testing.T) {
	r := catalog.Default()
	p, err := r.Lookup("two-sum")
	require.NoError(t, err)
	assert.Equal(t, "lookup", p.Family)

	_, err = r.Lookup("no-such-problem")
	assert.ErrorIs(t, err, catalog.ErrUnknownProblem)
}

func TestRegister_Errors(t *testing.T) {
	r := catalog.NewRegistry()
	run := func(catalog.Case) (any, error) { return nil, nil }

	require.NoError(t, r.Register(catalog.Problem{Name: "x", Run: run}))
	assert.ErrorIs(t, r.Register(catalog.Problem{Name: "x", Run: run}), catalog.ErrDuplicateProblem)
	assert.ErrorIs(t, r.Register(catalog.Problem{Name: "", Run: run}), catalog.ErrInvalidProblem)
	assert.ErrorIs(t, r.Register(catalog.Problem{Name: "y"}), catalog.ErrInvalidProblem)
}

//---// Verify //---//

// TestVerify_Fixtures runs every case file under testdata through the
// default registry; each file names its problem.
func TestVerify_Fixtures(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	r := catalog.Default()
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := casefile.LoadFile(path)
			require.NoError(t, err)
			p, err := r.Lookup(f.Problem)
			require.NoError(t, err)

			results := catalog.Verify(p, f.Cases)
			require.Len(t, results, len(f.Cases))
			for _, res := range results {
				assert.True(t, res.Pass, res.String())
			}
			assert.Zero(t, catalog.Failed(results))
		})
	}
}

func TestVerify_Outcomes(t *testing.T) {
	boom := errors.New("boom")
	p := catalog.Problem{
		Name: "echo",
		Run: func(c catalog.Case) (any, error) {
			if c.S == "fail" {
				return nil, boom
			}

			return c.Nums, nil
		},
	}
	load := func(doc string) []catalog.Case {
		f, err := casefile.Load(strings.NewReader(doc))
		require.NoError(t, err)

		return f.Cases
	}
	cases := load(`
problem: echo
cases:
  - name: match
    nums: [1, 2]
    want: [1, 2]
  - name: mismatch
    nums: [1, 2]
    want: [2, 1]
  - name: expected error
    s: fail
    wantErr: true
  - name: missing error
    wantErr: true
  - name: runner error
    s: fail
    want: 1
  - nums: [5]
`)
	results := catalog.Verify(p, cases)
	require.Len(t, results, 6)

	assert.True(t, results[0].Pass)
	assert.False(t, results[1].Pass)
	assert.NoError(t, results[1].Err)
	assert.Contains(t, results[1].String(), "FAIL mismatch: got")
	assert.True(t, results[2].Pass)
	assert.False(t, results[3].Pass)
	assert.Error(t, results[3].Err)
	assert.False(t, results[4].Pass)
	assert.ErrorIs(t, results[4].Err, boom)
	assert.True(t, results[5].Pass, "no want means the run only has to succeed")
	assert.Equal(t, "case 6", results[5].Case)

	assert.Equal(t, 3, catalog.Failed(results))
	assert.Equal(t, "PASS match", results[0].String())
}

func TestVerify_NullWantIsCompared(t *testing.T) {
	p := catalog.Problem{
		Name: "maybe",
		Run: func(c catalog.Case) (any, error) {
			if c.S == "nothing" {
				return nil, nil
			}

			return c.Nums, nil
		},
	}
	f, err := casefile.Load(strings.NewReader(`
problem: maybe
cases:
  - name: null matches nil
    s: nothing
    want: null
  - name: null rejects a value
    nums: [7]
    want: null
`))
	require.NoError(t, err)

	results := catalog.Verify(p, f.Cases)
	require.Len(t, results, 2)
	assert.True(t, results[0].Pass, results[0].String())
	assert.False(t, results[1].Pass)
	assert.Equal(t, "FAIL null rejects a value: got [7], want <nil>", results[1].String())
}

// TestDefault_EveryRunnerTolerantOfZeroCase makes sure no runner panics on
// a case with no inputs; an error is an acceptable answer.
func TestDefault_EveryRunnerTolerantOfZeroCase(t *testing.T) {
	for _, p := range catalog.Default().Problems() {
		assert.NotPanics(t, func() { _, _ = p.Run(catalog.Case{}) }, p.Name)
	}
}
