package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlkata/catalog"
	"github.com/katalvlaran/lvlkata/expr"
	"github.com/katalvlaran/lvlkata/internal/casefile"
	"github.com/katalvlaran/lvlkata/sorting"
)

// errCasesFailed is returned by verify when at least one case fails.
var errCasesFailed = errors.New("cases failed")

func (a *app) listCmd() *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every exercise with its family and summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			n := 0
			for _, p := range a.registry.Problems() {
				if family != "" && p.Family != family {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Family, p.Name, p.Summary)
				n++
			}
			a.log.Debug("listed problems", "count", n, "family", family)

			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only list problems of this family (e.g. strmatch)")

	return cmd
}

func (a *app) runCmd() *cobra.Command {
	var (
		c            catalog.Case
		tree, matrix string
	)
	cmd := &cobra.Command{
		Use:   "run <problem>",
		Short: "Run one exercise on inputs given as flags and print the result as YAML",
		Example: `  lvlkata run two-sum --nums 2,7,11,15 --target 9
  lvlkata run tree-level-order --tree 3,9,20,null,null,15,7
  lvlkata run merge-intervals --matrix "1,3;2,6;8,10"
  lvlkata run min-window --s ADOBECODEBANC --t ABC`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			if c.Tree, err = parseTree(tree); err != nil {
				return err
			}
			if c.Matrix, err = parseMatrix(matrix); err != nil {
				return err
			}
			a.log.Debug("running", "problem", p.Name, "family", p.Family)

			out, err := p.Run(c)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			raw, err := yaml.Marshal(out)
			if err != nil {
				return fmt.Errorf("%s: encode result: %w", p.Name, err)
			}
			_, err = cmd.OutOrStdout().Write(raw)

			return err
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&c.Nums, "nums", nil, "primary integer slice, comma separated")
	f.IntSliceVar(&c.Nums2, "nums2", nil, "secondary integer slice, comma separated")
	f.IntVar(&c.Target, "target", 0, "target value")
	f.IntVar(&c.K, "k", 0, "k parameter (window size, rank, count)")
	f.StringVar(&c.S, "s", "", "primary string")
	f.StringVar(&c.T, "t", "", "secondary string")
	f.StringSliceVar(&c.Words, "words", nil, "string list, comma separated")
	f.StringVar(&tree, "tree", "", "level-order tree, null for a missing child")
	f.StringVar(&matrix, "matrix", "", "integer matrix, rows separated by ';'")

	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.yaml>...",
		Short: "Run YAML case files and report PASS/FAIL per case",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed, total := 0, 0
			for _, path := range args {
				f, err := casefile.LoadFile(path)
				if err != nil {
					return err
				}
				p, err := a.registry.Lookup(f.Problem)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				results := catalog.Verify(p, f.Cases)
				for _, r := range results {
					fmt.Fprintf(out, "%s\t%s\n", p.Name, r)
				}
				failed += catalog.Failed(results)
				total += len(results)
				a.log.Debug("verified file", "path", path, "problem", p.Name, "cases", len(results))
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errCasesFailed, failed, total)
			}
			fmt.Fprintf(out, "ok\t%d cases\n", total)

			return nil
		},
	}
}

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an integer expression with + - * / and parentheses",
		Long: `Evaluate an integer expression. Arguments are joined with spaces.
Put "--" before an expression that starts with '-'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := strings.Join(args, " ")
			v, err := expr.Calculate(src)
			if err != nil {
				return err
			}
			a.log.Debug("evaluated", "expression", src, "value", v)
			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}

func (a *app) sortCmd() *cobra.Command {
	var (
		algo string
		desc bool
	)
	cmd := &cobra.Command{
		Use:   "sort <int>...",
		Short: "Sort integers with the chosen algorithm",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := sorting.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			vals := make([]int, len(args))
			for i, s := range args {
				if vals[i], err = strconv.Atoi(s); err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
			}
			opts := []sorting.Option{sorting.WithAlgorithm(alg)}
			if desc {
				opts = append(opts, sorting.WithDescending())
			}
			if err := sorting.Sort(vals, opts...); err != nil {
				return err
			}
			a.log.Debug("sorted", "algorithm", alg, "n", len(vals))
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(vals, " "))

			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", sorting.QuickSort.String(), "algorithm: "+algorithmNames())
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in non-increasing order")

	return cmd
}

func algorithmNames() string {
	names := make([]string, 0, len(sorting.Algorithms()))
	for _, alg := range sorting.Algorithms() {
		names = append(names, alg.String())
	}

	return strings.Join(names, ", ")
}

// parseTree reads "3,9,20,null,null,15,7"; "null" and "#" mark missing nodes.
func parseTree(s string) ([]*int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]*int, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "null" || p == "#" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("tree value %d: %w", i+1, err)
		}
		out[i] = &v
	}

	return out, nil
}

// parseMatrix reads "1,3;2,6": rows split on ';', cells on ','.
func parseMatrix(s string) ([][]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	rows := strings.Split(s, ";")
	out := make([][]int, len(rows))
	for r, row := range rows {
		for _, cell := range strings.Split(row, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("matrix row %d: %w", r+1, err)
			}
			out[r] = append(out[r], v)
		}
	}

	return out, nil
}

func joinInts(a []int, sep string) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, sep)
}
