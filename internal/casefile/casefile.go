// Package casefile decodes YAML case files: a problem name followed by a
// list of inputs and expected outputs. The format is shared by the catalog
// runner, the CLI and the table-driven tests under testdata/.
//
//	problem: two-sum
//	cases:
//	  - name: basic
//	    nums: [2, 7, 11, 15]
//	    target: 9
//	    want: [0, 1]
package casefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoCases indicates a document without any case entries.
	ErrNoCases = errors.New("casefile: document has no cases")

	// ErrNoProblem indicates a document without a problem name.
	ErrNoProblem = errors.New("casefile: document has no problem name")
)

// File is one decoded case document.
type File struct {
	Problem string `yaml:"problem"`
	Cases   []Case `yaml:"cases"`
}

// Case holds the inputs of a single exercise run together with the
// expectation. Unused inputs are left at their zero value.
type Case struct {
	Name    string   `yaml:"name"`
	Nums    []int    `yaml:"nums"`
	Nums2   []int    `yaml:"nums2"`
	Matrix  [][]int  `yaml:"matrix"`
	Words   []string `yaml:"words"`
	Tree    []*int   `yaml:"tree"` // level order, null for a missing child
	Target  int      `yaml:"target"`
	K       int      `yaml:"k"`
	S       string   `yaml:"s"`
	T       string   `yaml:"t"`
	WantErr bool     `yaml:"wantErr"`

	// Want keeps the raw expectation node so it can be decoded into
	// whatever type the exercise returns. An explicit "want: null" is kept
	// as a !!null node and differs from a missing key (zero Kind).
	Want yaml.Node `yaml:"want"`
}

// HasWant reports whether the case declared an expectation, null included.
func (c Case) HasWant() bool { return c.Want.Kind != 0 }

// DecodeWant decodes the expectation into out.
func (c Case) DecodeWant(out any) error {
	if !c.HasWant() {
		return fmt.Errorf("casefile: no expectation to decode into %T", out)
	}

	return c.Want.Decode(out)
}

// Load decodes a single case document from r. Unknown fields are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCases
		}

		return nil, fmt.Errorf("casefile: decode: %w", err)
	}
	if f.Problem == "" {
		return nil, ErrNoProblem
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCases, f.Problem)
	}

	return &f, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("casefile: %w", err)
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Normalize round-trips v through YAML so values produced by Go code and
// values decoded from a case file compare equal with reflect.DeepEqual
// (arrays become []any, whole floats become ints, and so on).
func Normalize(v any) (any, error) {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("casefile: normalize: %w", err)
	}
	var out any
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("casefile: normalize: %w", err)
	}

	return out, nil
}

// NormalizedWant decodes the expectation generically and normalises it.
// A missing or null expectation normalises to nil.
func (c Case) NormalizedWant() (any, error) {
	if !c.HasWant() {
		return nil, nil
	}
	var raw any
	if err := c.DecodeWant(&raw); err != nil {
		return nil, err
	}

	return Normalize(raw)
}
