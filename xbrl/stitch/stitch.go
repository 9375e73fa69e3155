// Package stitch combines the same logical statement across multiple
// filings into one normalized multi-period view.
package stitch

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/edgarlab/edgar/xbrl"
	"github.com/edgarlab/edgar/xbrl/standard"
)

// Policy selects which of the unioned periods survive into the
// stitched output.
type Policy string

const (
	RecentPeriods       Policy = "RECENT_PERIODS"
	ThreeYearComparison Policy = "THREE_YEAR_COMPARISON"
	ThreeQuarters       Policy = "THREE_QUARTERS"
	AnnualComparison    Policy = "ANNUAL_COMPARISON"
	AllPeriods          Policy = "ALL_PERIODS"
)

func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case RecentPeriods, ThreeYearComparison, ThreeQuarters,
		AnnualComparison, AllPeriods:
		return p, nil
	}
	return "", fmt.Errorf("unknown period view policy %q", s)
}

// Input is one filing's already-resolved statement: its line items
// plus its own period key -> display label map.
type Input struct {
	Items        []xbrl.LineItem
	PeriodLabels map[string]string
}

// InputsFromFilings resolves statementType against each parsed filing
// and packages the results, skipping filings where the statement is
// absent.
func InputsFromFilings(filings []*xbrl.XBRL, statementType string) []Input {
	inputs := make([]Input, 0, len(filings))
	for _, x := range filings {
		items := x.Statement(statementType)
		if len(items) == 0 {
			continue
		}
		inputs = append(inputs, Input{
			Items:        items,
			PeriodLabels: x.PeriodLabels(),
		})
	}
	return inputs
}

// PeriodColumn is one stitched output column.
type PeriodColumn struct {
	Key   string
	Label string
}

// Row is one merged concept. Values has no key for a period no filing
// supplied, never a zero.
type Row struct {
	Label         string
	OriginalLabel string
	Concept       string
	Level         int
	Abstract      bool
	Total         bool
	Values        map[string]float64
	Decimals      map[string]int
}

// Statement is the stitched result: ordered period columns and
// ordered, leveled concept rows.
type Statement struct {
	Periods []PeriodColumn
	Rows    []Row
}

// Statements stitches per-filing statement extractions into one
// multi-period statement. Periods are unioned across inputs, filtered
// by policy, and capped at maxPeriods. A non-nil mapper standardizes
// each input's labels before merging.
//
// Merged concepts are keyed by display label; the first filing to
// mention a concept establishes its level/abstract/total metadata and
// later filings only contribute values. Rows order by (level,
// first-seen) so the first filing's presentation survives within each
// level.
func Statements(inputs []Input, policy Policy, maxPeriods int,
	mapper *standard.Mapper,
) (*Statement, error) {
	if maxPeriods <= 0 {
		maxPeriods = 3
	}

	union := unionPeriods(inputs)
	selected, err := selectPeriods(union, policy, maxPeriods)
	if err != nil {
		return nil, err
	}
	selectedSet := make(map[string]struct{}, len(selected))
	for _, p := range selected {
		selectedSet[p.Key] = struct{}{}
	}

	m := newMerger(selectedSet)
	for i := range inputs {
		m.addFiling(&inputs[i], mapper)
	}

	return &Statement{Periods: selected, Rows: m.rows()}, nil
}

// stitchPeriod is one unioned period with its parsed end date.
type stitchPeriod struct {
	key   string
	label string
	end   time.Time
	start time.Time
	kind  string // "instant" or "duration"
}

// unionPeriods collects the distinct period keys across all inputs,
// sorted descending by end date. The first input mentioning a key
// supplies its display label.
func unionPeriods(inputs []Input) []stitchPeriod {
	seen := make(map[string]struct{})
	var union []stitchPeriod
	for i := range inputs {
		for key, label := range inputs[i].PeriodLabels {
			if _, ok := seen[key]; ok {
				continue
			}
			p, ok := parsePeriodKey(key)
			if !ok {
				continue
			}
			seen[key] = struct{}{}
			p.label = label
			union = append(union, p)
		}
	}

	slices.SortStableFunc(union, func(a, b stitchPeriod) int {
		switch {
		case a.end.After(b.end):
			return -1
		case a.end.Before(b.end):
			return 1
		}
		return strings.Compare(a.key, b.key)
	})
	return union
}

const dateLayout = "2006-01-02"

// parsePeriodKey recovers date structure from the stable key forms
// "instant_2024-12-31" and "duration_2024-01-01_2024-12-31".
func parsePeriodKey(key string) (stitchPeriod, bool) {
	p := stitchPeriod{key: key}
	switch {
	case strings.HasPrefix(key, "instant_"):
		end, err := time.Parse(dateLayout, strings.TrimPrefix(key, "instant_"))
		if err != nil {
			return p, false
		}
		p.kind, p.end = "instant", end
		return p, true
	case strings.HasPrefix(key, "duration_"):
		parts := strings.SplitN(strings.TrimPrefix(key, "duration_"), "_", 2)
		if len(parts) != 2 {
			return p, false
		}
		start, err := time.Parse(dateLayout, parts[0])
		if err != nil {
			return p, false
		}
		end, err := time.Parse(dateLayout, parts[1])
		if err != nil {
			return p, false
		}
		p.kind, p.start, p.end = "duration", start, end
		return p, true
	}
	return p, false
}

func (self *stitchPeriod) days() int {
	return int(self.end.Sub(self.start).Hours() / 24)
}

func selectPeriods(union []stitchPeriod, policy Policy, maxPeriods int,
) ([]PeriodColumn, error) {
	var filtered []stitchPeriod
	switch policy {
	case RecentPeriods, AllPeriods, "":
		filtered = union
	case ThreeYearComparison:
		filtered = onePerYear(union)
	case ThreeQuarters:
		filtered = filterDurations(union, xbrl.DurationQuarterly)
	case AnnualComparison:
		filtered = filterDurations(union, xbrl.DurationAnnual)
	default:
		return nil, fmt.Errorf("unknown period view policy %q", policy)
	}

	if len(filtered) > maxPeriods {
		filtered = filtered[:maxPeriods]
	}
	columns := make([]PeriodColumn, 0, len(filtered))
	for _, p := range filtered {
		columns = append(columns, PeriodColumn{Key: p.key, Label: p.label})
	}
	return columns, nil
}

// onePerYear keeps at most one instant per distinct calendar year,
// most recent first.
func onePerYear(union []stitchPeriod) []stitchPeriod {
	years := make(map[int]struct{})
	var out []stitchPeriod
	for _, p := range union {
		if p.kind != "instant" {
			continue
		}
		if _, ok := years[p.end.Year()]; ok {
			continue
		}
		years[p.end.Year()] = struct{}{}
		out = append(out, p)
	}
	return out
}

func filterDurations(union []stitchPeriod, durationType string) []stitchPeriod {
	var out []stitchPeriod
	for _, p := range union {
		if p.kind == "duration" && xbrl.ClassifyDuration(p.days()) == durationType {
			out = append(out, p)
		}
	}
	return out
}
