package xbrl

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// FactRecord is one fact joined with its context, period and catalog
// metadata, the shape query terminals return.
type FactRecord struct {
	Concept      string
	Label        string
	Value        string
	NumericValue *float64
	Decimals     string
	Unit         string
	ContextID    string
	PeriodKey    string
	PeriodType   string // "instant" or "duration"
	FiscalYear   int
	FiscalPeriod string
	Dimensions   map[string]string
}

// QueryTable is the tabular terminal of a fact query: ordered columns
// plus one row of rendered cells per fact.
type QueryTable struct {
	Columns []string
	Rows    [][]string
}

// Query starts a chainable fact query over this filing's facts.
func (self *XBRL) Query() *FactQuery {
	return &FactQuery{x: self}
}

type factPredicate func(*FactRecord) bool

// FactQuery accumulates filters; Execute and Table evaluate them.
// Filters compose with AND semantics.
type FactQuery struct {
	x       *XBRL
	filters []factPredicate
}

func (self *FactQuery) where(p factPredicate) *FactQuery {
	self.filters = append(self.filters, p)
	return self
}

// ByConcept filters on the exact element id, insensitive to the colon
// vs underscore separator.
func (self *FactQuery) ByConcept(id string) *FactQuery {
	want := NormalizeID(id)
	return self.where(func(r *FactRecord) bool { return r.Concept == want })
}

// MatchConcept filters element ids by regular expression.
func (self *FactQuery) MatchConcept(pattern string) (*FactQuery, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile concept pattern %q: %w", pattern, err)
	}
	return self.where(func(r *FactRecord) bool {
		return re.MatchString(r.Concept)
	}), nil
}

// ByLabel filters on a case-insensitive label substring.
func (self *FactQuery) ByLabel(substr string) *FactQuery {
	want := strings.ToLower(substr)
	return self.where(func(r *FactRecord) bool {
		return strings.Contains(strings.ToLower(r.Label), want)
	})
}

func (self *FactQuery) ByValue(v float64) *FactQuery {
	return self.where(func(r *FactRecord) bool {
		return r.NumericValue != nil && *r.NumericValue == v
	})
}

func (self *FactQuery) ByValueRange(min, max float64) *FactQuery {
	return self.where(func(r *FactRecord) bool {
		return r.NumericValue != nil &&
			*r.NumericValue >= min && *r.NumericValue <= max
	})
}

func (self *FactQuery) ByValueFn(pred func(float64) bool) *FactQuery {
	return self.where(func(r *FactRecord) bool {
		return r.NumericValue != nil && pred(*r.NumericValue)
	})
}

// ByPeriodType filters on "instant" or "duration".
func (self *FactQuery) ByPeriodType(periodType string) *FactQuery {
	return self.where(func(r *FactRecord) bool {
		return r.PeriodType == periodType
	})
}

func (self *FactQuery) ByPeriodKey(key string) *FactQuery {
	return self.where(func(r *FactRecord) bool { return r.PeriodKey == key })
}

// WithDimension keeps facts qualified by the dimension, any member.
// An empty id keeps any dimensioned fact.
func (self *FactQuery) WithDimension(dimensionID string) *FactQuery {
	want := NormalizeID(dimensionID)
	return self.where(func(r *FactRecord) bool {
		if want == "" {
			return len(r.Dimensions) > 0
		}
		_, ok := r.Dimensions[want]
		return ok
	})
}

func (self *FactQuery) ByDimension(dimensionID, memberID string) *FactQuery {
	wantDim, wantMember := NormalizeID(dimensionID), NormalizeID(memberID)
	return self.where(func(r *FactRecord) bool {
		return r.Dimensions[wantDim] == wantMember
	})
}

// ByStatementType keeps facts whose element appears in the resolved
// statement's presentation tree.
func (self *FactQuery) ByStatementType(statementType string) *FactQuery {
	members := make(map[string]struct{})
	if tree := self.x.resolveStatement(statementType); tree != nil {
		for id := range tree.Nodes {
			members[NormalizeID(id)] = struct{}{}
		}
	}
	return self.where(func(r *FactRecord) bool {
		_, ok := members[r.Concept]
		return ok
	})
}

func (self *FactQuery) ByFiscalYear(year int) *FactQuery {
	return self.where(func(r *FactRecord) bool { return r.FiscalYear == year })
}

func (self *FactQuery) ByFiscalPeriod(period string) *FactQuery {
	return self.where(func(r *FactRecord) bool {
		return strings.EqualFold(r.FiscalPeriod, period)
	})
}

func (self *FactQuery) ByUnit(measure string) *FactQuery {
	return self.where(func(r *FactRecord) bool {
		return strings.EqualFold(r.Unit, measure)
	})
}

// Search matches free text across concept and label.
func (self *FactQuery) Search(text string) *FactQuery {
	want := strings.ToLower(text)
	return self.where(func(r *FactRecord) bool {
		return strings.Contains(strings.ToLower(r.Concept), want) ||
			strings.Contains(strings.ToLower(r.Label), want)
	})
}

// Execute evaluates the query, ordered by (concept, period key,
// context id) for determinism.
func (self *FactQuery) Execute() []FactRecord {
	var out []FactRecord
	for _, fact := range self.x.facts {
		record := self.x.factRecord(fact)
		if self.matches(&record) {
			out = append(out, record)
		}
	}
	slices.SortFunc(out, func(a, b FactRecord) int {
		if n := strings.Compare(a.Concept, b.Concept); n != 0 {
			return n
		}
		if n := strings.Compare(a.PeriodKey, b.PeriodKey); n != 0 {
			return n
		}
		return strings.Compare(a.ContextID, b.ContextID)
	})
	return out
}

func (self *FactQuery) matches(r *FactRecord) bool {
	for _, pred := range self.filters {
		if !pred(r) {
			return false
		}
	}
	return true
}

var queryColumns = []string{
	"concept", "label", "value", "unit", "period", "fiscal_year",
	"fiscal_period",
}

// Table renders the query result as ordered columns and rows.
func (self *FactQuery) Table() *QueryTable {
	records := self.Execute()
	table := &QueryTable{Columns: slices.Clone(queryColumns)}
	for i := range records {
		r := &records[i]
		table.Rows = append(table.Rows, []string{
			r.Concept, r.Label, r.Value, r.Unit, r.PeriodKey,
			fmt.Sprintf("%d", r.FiscalYear), r.FiscalPeriod,
		})
	}
	return table
}

func (self *XBRL) factRecord(fact *Fact) FactRecord {
	record := FactRecord{
		Concept:      fact.ElementID,
		Label:        fact.ElementID,
		Value:        fact.Value,
		NumericValue: fact.NumericValue,
		Decimals:     fact.Decimals,
		ContextID:    fact.ContextID,
	}
	if entry, ok := self.catalog.Lookup(fact.ElementID); ok {
		record.Label = entry.StandardLabel()
	}
	if unit, ok := self.units[fact.UnitID]; ok {
		record.Unit = unit.Measure
		if unit.Measure == "" && unit.Numerator != "" {
			record.Unit = unit.Numerator + "/" + unit.Denominator
		}
	}
	if key, ok := self.periods.byContext[fact.ContextID]; ok {
		record.PeriodKey = key
		p := self.periods.byKey[key]
		record.PeriodType = p.Type
		record.FiscalYear = p.EndDate().Year()
		record.FiscalPeriod = fiscalPeriodOf(p)
	}
	if ctx, ok := self.contexts[fact.ContextID]; ok {
		record.Dimensions = ctx.Dimensions
	}
	return record
}

// fiscalPeriodOf approximates the fiscal period from the period
// shape: annual durations are FY, quarterly durations are bucketed by
// calendar quarter of their end month.
func fiscalPeriodOf(p *ReportingPeriod) string {
	if p.Type != "duration" {
		return ""
	}
	switch p.DurationType {
	case DurationAnnual:
		return "FY"
	case DurationQuarterly:
		return fmt.Sprintf("Q%d", (int(p.End.Month())+2)/3)
	}
	return ""
}

// Ratio divides numerator by denominator, returning nil when either
// side is absent or the denominator is zero. Every percentage or
// ratio computation built atop resolved facts goes through this
// guard; a missing denominator is data absence, not an error.
func Ratio(numerator, denominator *float64) *float64 {
	if numerator == nil || denominator == nil || *denominator == 0 {
		return nil
	}
	v := *numerator / *denominator
	return &v
}
