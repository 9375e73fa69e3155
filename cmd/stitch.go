package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/edgarlab/edgar/xbrl"
	"github.com/edgarlab/edgar/xbrl/standard"
	"github.com/edgarlab/edgar/xbrl/stitch"
)

// Number of filings parsed in parallel
const stitchProcs = 4

var (
	stitchStatement   string
	stitchPolicy      string
	stitchMaxPeriods  int
	stitchStandardize bool

	stitchCmd = cobra.Command{
		Use:   "stitch filingDir...",
		Short: "Stitch one statement across multiple filings",
		Long: `Parses every filing directory, extracts the same statement from each
and merges them into one multi-period statement.`,
		Example: `
  - Three year comparison of income statements:

    $ edgar stitch ./filings/data/320193/* \
        --statement IncomeStatement --policy THREE_YEAR_COMPARISON`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cobra.CheckErr(stitchFilings(args))
		},
	}
)

func init() {
	rootCmd.AddCommand(&stitchCmd)
	stitchCmd.Flags().StringVar(&stitchStatement, "statement", "BalanceSheet",
		"statement type to stitch")
	stitchCmd.Flags().StringVar(&stitchPolicy, "policy",
		string(stitch.RecentPeriods), "period selection policy")
	stitchCmd.Flags().IntVar(&stitchMaxPeriods, "max-periods", 3,
		"max number of stitched periods")
	stitchCmd.Flags().BoolVar(&stitchStandardize, "standardize", false,
		"standardize line item labels before merging")
}

func stitchFilings(dirs []string) error {
	policy, err := stitch.ParsePolicy(stitchPolicy)
	if err != nil {
		return err
	}

	filings, err := parseFilings(dirs)
	if err != nil {
		return err
	}

	inputs := stitch.InputsFromFilings(filings, stitchStatement)
	if len(inputs) == 0 {
		return fmt.Errorf("no statement %q in %v filings",
			stitchStatement, len(filings))
	}

	var mapper *standard.Mapper
	if stitchStandardize {
		mapper = standard.NewMapper()
	}
	stitched, err := stitch.Statements(inputs, policy, stitchMaxPeriods, mapper)
	if err != nil {
		return fmt.Errorf("stitch %v filings: %w", len(inputs), err)
	}

	renderStitched(stitched)
	return nil
}

// parseFilings parses every filing dir, keeping the order of dirs.
func parseFilings(dirs []string) ([]*xbrl.XBRL, error) {
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(stitchProcs)

	filings := make([]*xbrl.XBRL, len(dirs))
	for i, dir := range dirs {
		i, dir := i, dir
		g.Go(func() error {
			x, err := xbrl.ParseDir(dir)
			if err != nil {
				return fmt.Errorf("parse %q: %w", dir, err)
			}
			filings[i] = x
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return filings, nil
}

func renderStitched(stmt *stitch.Statement) {
	r := newRenderer(os.Stdout)
	keys := make([]string, len(stmt.Periods))
	labels := make(map[string]string, len(stmt.Periods))
	for i, p := range stmt.Periods {
		keys[i] = p.Key
		labels[p.Key] = p.Label
	}

	r.header("", labels, keys)
	for i := range stmt.Rows {
		row := &stmt.Rows[i]
		label := row.Label
		if row.Abstract {
			label += ":"
		}
		r.row(indent(label, row.Level), row.Values, keys)
	}
}
