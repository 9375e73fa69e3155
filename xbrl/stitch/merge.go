package stitch

import (
	"slices"

	"github.com/edgarlab/edgar/xbrl"
	"github.com/edgarlab/edgar/xbrl/standard"
)

// merger accumulates concept rows across filings. Concepts are keyed
// by display label: two elements sharing a (possibly standardized)
// label merge into one row, and the first filing seen establishes the
// row's structural metadata. Concept keeps the first filing's element
// id so collisions stay auditable.
type merger struct {
	selected map[string]struct{}
	byLabel  map[string]*Row
	order    []string
}

func newMerger(selected map[string]struct{}) *merger {
	return &merger{
		selected: selected,
		byLabel:  make(map[string]*Row),
	}
}

// addFiling merges one filing's items. Filings contributing no value
// for any selected period are skipped entirely.
func (self *merger) addFiling(input *Input, mapper *standard.Mapper) {
	if !self.contributes(input) {
		return
	}

	items := input.Items
	if mapper != nil {
		items = standard.StandardizeStatement(items, mapper)
	}

	for i := range items {
		self.addItem(&items[i])
	}
}

func (self *merger) contributes(input *Input) bool {
	for key := range input.PeriodLabels {
		if _, ok := self.selected[key]; ok {
			return true
		}
	}
	return false
}

func (self *merger) addItem(item *xbrl.LineItem) {
	values := self.selectedValues(item)
	if len(values) == 0 && !item.Abstract && len(item.Children) == 0 {
		return
	}

	row, ok := self.byLabel[item.Label]
	if !ok {
		row = &Row{
			Label:         item.Label,
			OriginalLabel: item.OriginalLabel,
			Concept:       item.Concept,
			Level:         item.Level,
			Abstract:      item.Abstract,
			Total:         item.Total,
			Values:        make(map[string]float64),
			Decimals:      make(map[string]int),
		}
		self.byLabel[item.Label] = row
		self.order = append(self.order, item.Label)
	}

	// Later filings never overwrite an established value slot.
	for key, v := range values {
		if _, exists := row.Values[key]; exists {
			continue
		}
		row.Values[key] = v
		if d, ok := item.Decimals[key]; ok {
			row.Decimals[key] = d
		}
	}
}

func (self *merger) selectedValues(item *xbrl.LineItem) map[string]float64 {
	var values map[string]float64
	for key, v := range item.Values {
		if _, ok := self.selected[key]; !ok {
			continue
		}
		if values == nil {
			values = make(map[string]float64)
		}
		values[key] = v
	}
	return values
}

// rows orders the merged concepts by (level, first-seen), keeping the
// first filing's presentation within each level.
func (self *merger) rows() []Row {
	firstSeen := make(map[string]int, len(self.order))
	for i, label := range self.order {
		firstSeen[label] = i
	}

	labels := slices.Clone(self.order)
	slices.SortStableFunc(labels, func(a, b string) int {
		la, lb := self.byLabel[a].Level, self.byLabel[b].Level
		if la != lb {
			return la - lb
		}
		return firstSeen[a] - firstSeen[b]
	})

	rows := make([]Row, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, *self.byLabel[label])
	}
	return rows
}
