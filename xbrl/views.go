package xbrl

import (
	"fmt"
	"math"
	"time"
)

// PeriodView is a named, ordered selection of period keys appropriate
// for one statement type.
type PeriodView struct {
	Name        string
	Description string
	PeriodKeys  []string
}

// maxMixedColumns caps the "YTD and Quarterly Breakdown" view.
const maxMixedColumns = 5

// PeriodViews proposes period selections for a statement type. It is
// an ordered chain of view builders; whichever produce a view
// contribute, and a generic fallback covers the rest. Never errors:
// an entity with zero periods gets an empty list.
func (self *XBRL) PeriodViews(statementType string) []PeriodView {
	if len(self.periods.periods) == 0 {
		return nil
	}

	var builders []func() []PeriodView
	if self.types.periodType(statementType) == "instant" {
		builders = []func() []PeriodView{
			self.recentInstantViews,
			self.annualInstantViews,
		}
	} else {
		builders = []func() []PeriodView{
			self.annualDurationViews,
			self.quarterYoYView,
			self.recentQuarterViews,
			self.ytdViews,
			self.mixedYTDView,
		}
	}

	var views []PeriodView
	for _, build := range builders {
		views = append(views, build()...)
	}
	if len(views) == 0 {
		views = self.fallbackView()
	}
	return views
}

func periodKeys(periods []*ReportingPeriod, n int) []string {
	if n > len(periods) {
		n = len(periods)
	}
	keys := make([]string, 0, n)
	for _, p := range periods[:n] {
		keys = append(keys, p.Key)
	}
	return keys
}

func (self *XBRL) recentInstantViews() []PeriodView {
	instants := self.periods.instants()
	switch {
	case len(instants) >= 3:
		return []PeriodView{{
			Name:        "Three Recent Periods",
			Description: "Three most recent reporting dates",
			PeriodKeys:  periodKeys(instants, 3),
		}}
	case len(instants) == 2:
		return []PeriodView{{
			Name:        "Current vs. Previous Period",
			Description: "Most recent and previous reporting dates",
			PeriodKeys:  periodKeys(instants, 2),
		}}
	}
	return nil
}

// annualInstantViews proposes fiscal-year comparisons when at least
// two instants sit near the entity's fiscal year end.
func (self *XBRL) annualInstantViews() []PeriodView {
	info := self.EntityInfo()
	if info.FiscalYearEndMonth == 0 {
		return nil
	}

	var annual []*ReportingPeriod
	for _, p := range self.periods.instants() {
		if nearFiscalYearEnd(p.Instant, info.FiscalYearEndMonth,
			info.FiscalYearEndDay) {
			annual = append(annual, p)
		}
	}
	if len(annual) < 2 {
		return nil
	}

	name := "Annual Comparison"
	if len(annual) >= 3 {
		name = "Three-Year Annual Comparison"
	}
	return []PeriodView{{
		Name:        name,
		Description: "Year-end reporting dates",
		PeriodKeys:  periodKeys(annual, 3),
	}}
}

// nearFiscalYearEnd allows two weeks of drift around the fiscal
// year-end month/day, covering 52/53-week fiscal calendars.
func nearFiscalYearEnd(date time.Time, month, day int) bool {
	fye := time.Date(date.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	diff := math.Abs(date.Sub(fye).Hours() / 24)
	if diff <= 15 {
		return true
	}
	// Year boundary: Jan 2 vs a Dec 31 fiscal year end.
	fye = fye.AddDate(-1, 0, 0)
	return math.Abs(date.Sub(fye).Hours()/24) <= 15
}

func (self *XBRL) annualDurationViews() []PeriodView {
	annual := self.periods.durations(DurationAnnual)
	if len(annual) < 2 {
		return nil
	}
	name := "Annual Comparison"
	if len(annual) >= 3 {
		name = "Three-Year Annual Comparison"
	}
	return []PeriodView{{
		Name:        name,
		Description: "Most recent annual periods",
		PeriodKeys:  periodKeys(annual, 3),
	}}
}

// quarterYoYView pairs the most recent quarter with the same quarter
// one year earlier, located by its end date being ~350-380 days back.
func (self *XBRL) quarterYoYView() []PeriodView {
	quarters := self.periods.durations(DurationQuarterly)
	if len(quarters) < 2 {
		return nil
	}

	latest := quarters[0]
	for _, q := range quarters[1:] {
		days := int(latest.End.Sub(q.End).Hours() / 24)
		if days >= 350 && days <= 380 {
			return []PeriodView{{
				Name: "Quarter Year-over-Year",
				Description: fmt.Sprintf("%s vs. the same quarter a year ago",
					latest.Label),
				PeriodKeys: []string{latest.Key, q.Key},
			}}
		}
	}
	return nil
}

func (self *XBRL) recentQuarterViews() []PeriodView {
	quarters := self.periods.durations(DurationQuarterly)
	if len(quarters) < 3 {
		return nil
	}
	return []PeriodView{{
		Name:        "Three Recent Quarters",
		Description: "Three most recent sequential quarters",
		PeriodKeys:  periodKeys(quarters, 3),
	}}
}

func (self *XBRL) ytdViews() []PeriodView {
	ytd := self.periods.durations(DurationYTD)
	if len(ytd) < 2 {
		return nil
	}
	return []PeriodView{{
		Name:        "Year-to-Date Comparison",
		Description: "Most recent year-to-date periods",
		PeriodKeys:  periodKeys(ytd, 3),
	}}
}

// mixedYTDView combines the latest YTD period with up to four recent
// quarters, capped at five columns total.
func (self *XBRL) mixedYTDView() []PeriodView {
	ytd := self.periods.durations(DurationYTD)
	quarters := self.periods.durations(DurationQuarterly)
	if len(ytd) == 0 || len(quarters) == 0 {
		return nil
	}

	keys := []string{ytd[0].Key}
	for _, q := range quarters {
		if len(keys) >= maxMixedColumns {
			break
		}
		keys = append(keys, q.Key)
	}
	if len(keys) < 2 {
		return nil
	}
	return []PeriodView{{
		Name:        "YTD and Quarterly Breakdown",
		Description: "Latest year-to-date period with recent quarters",
		PeriodKeys:  keys,
	}}
}

func (self *XBRL) fallbackView() []PeriodView {
	return []PeriodView{{
		Name:        "Most Recent Periods",
		Description: "Most recent periods available",
		PeriodKeys:  periodKeys(self.periods.periods, 3),
	}}
}
