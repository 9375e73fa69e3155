package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/edgarlab/edgar/xbrl"
	"github.com/edgarlab/edgar/xbrl/standard"
)

var (
	statementsView        string
	statementsStandardize bool

	statementsCmd = cobra.Command{
		Use:   "statements filingDir [statement]",
		Short: "Show financial statements of a parsed XBRL filing",
		Long: `Without a statement argument lists every statement found in the
filing. With one, resolves it by statement type, role name or role URI
and renders its line items, one column per reporting period.`,
		Example: `
  - List statements of a filing:

    $ edgar statements ./filings/data/320193/000032019323000106

  - Render the balance sheet:

    $ edgar statements ./filings/data/320193/000032019323000106 BalanceSheet`,
		Args: cobra.RangeArgs(1, 2),
		Run: func(cmd *cobra.Command, args []string) {
			x, err := xbrl.ParseDir(args[0])
			cobra.CheckErr(err)
			if len(args) < 2 {
				listStatements(x)
				return
			}
			cobra.CheckErr(renderStatement(x, args[1]))
		},
	}
)

func init() {
	rootCmd.AddCommand(&statementsCmd)
	statementsCmd.Flags().StringVar(&statementsView, "view", "",
		"render periods of this period view")
	statementsCmd.Flags().BoolVar(&statementsStandardize, "standardize", false,
		"standardize line item labels")
}

func listStatements(x *xbrl.XBRL) {
	info := x.EntityInfo()
	fmt.Printf("%s (%s) %s\n\n", info.EntityName, info.Ticker, info.DocumentType)
	for _, stmt := range x.AllStatements() {
		name := stmt.Type
		if name == "" {
			name = "-"
		}
		fmt.Printf("%-24s %-48s %4d elements\n", name,
			truncate(stmt.RoleName, 48), stmt.ElementCount)
	}
}

func renderStatement(x *xbrl.XBRL, name string) error {
	items := x.Statement(name)
	if len(items) == 0 {
		return fmt.Errorf("no statement %q in filing", name)
	}
	if statementsStandardize {
		items = standard.StandardizeStatement(items, standard.NewMapper())
	}

	keys, err := viewPeriodKeys(x, name)
	if err != nil {
		return err
	}
	newRenderer(os.Stdout).RenderStatement(items, x.PeriodLabels(), keys)
	return nil
}

// viewPeriodKeys picks the periods to render: the named period view,
// the first suggested view, or every period mentioned by the items.
func viewPeriodKeys(x *xbrl.XBRL, statementType string) ([]string, error) {
	views := x.PeriodViews(statementType)
	if statementsView != "" {
		for _, view := range views {
			if view.Name == statementsView {
				return view.PeriodKeys, nil
			}
		}
		return nil, fmt.Errorf("no period view %q, have %v",
			statementsView, viewNames(views))
	}
	if len(views) > 0 {
		return views[0].PeriodKeys, nil
	}
	return itemPeriodKeys(x.Statement(statementType)), nil
}

func viewNames(views []xbrl.PeriodView) []string {
	names := make([]string, len(views))
	for i := range views {
		names[i] = views[i].Name
	}
	return names
}

func itemPeriodKeys(items []xbrl.LineItem) []string {
	seen := make(map[string]struct{})
	var keys []string
	for i := range items {
		for key := range items[i].Values {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)
	return keys
}
