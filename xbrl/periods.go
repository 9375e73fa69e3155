package xbrl

import (
	"fmt"
	"slices"
	"time"
)

// Duration classifications by day count; the windows absorb leap-year
// and fiscal-calendar variance.
const (
	DurationAnnual    = "annual"
	DurationQuarterly = "quarterly"
	DurationYTD       = "ytd"
	DurationOther     = "other"
)

const dateLayout = "2006-01-02"

// ReportingPeriod is a derived instant or duration found in the
// contexts, with a stable key and a display label.
type ReportingPeriod struct {
	Type         string // "instant" or "duration"
	Key          string
	Label        string
	Instant      time.Time
	Start        time.Time
	End          time.Time
	Days         int
	DurationType string
	ContextIDs   []string
}

// EndDate is the instant date or the duration end, whichever applies.
func (self *ReportingPeriod) EndDate() time.Time {
	if self.Type == "instant" {
		return self.Instant
	}
	return self.End
}

// InstantKey and DurationKey build the stable period keys used
// throughout resolution and stitching.
func InstantKey(date string) string { return "instant_" + date }

func DurationKey(start, end string) string {
	return fmt.Sprintf("duration_%s_%s", start, end)
}

// ClassifyDuration buckets a duration by its day count: ~350-380
// annual, ~85-95 quarterly, ~175-190 or ~265-285 year-to-date. The
// stitcher re-buckets unioned periods through the same windows.
func ClassifyDuration(days int) string {
	switch {
	case days >= 350 && days <= 380:
		return DurationAnnual
	case days >= 85 && days <= 95:
		return DurationQuarterly
	case days >= 175 && days <= 190, days >= 265 && days <= 285:
		return DurationYTD
	}
	return DurationOther
}

type periodSet struct {
	periods   []*ReportingPeriod
	byKey     map[string]*ReportingPeriod
	byContext map[string]string // context id -> period key
}

// buildPeriods derives the distinct periods from the context set.
// Contexts with forever or unparseable dates are skipped, everything
// else lands in the context -> period map.
func buildPeriods(contexts map[string]*Context) *periodSet {
	ps := &periodSet{
		byKey:     make(map[string]*ReportingPeriod),
		byContext: make(map[string]string),
	}
	for _, ctx := range contexts {
		switch {
		case ctx.Period.IsInstant():
			ps.addInstant(ctx)
		case ctx.Period.IsDuration():
			ps.addDuration(ctx)
		}
	}

	// Most recent first is the default iteration order.
	slices.SortStableFunc(ps.periods, func(a, b *ReportingPeriod) int {
		ad, bd := a.EndDate(), b.EndDate()
		switch {
		case ad.After(bd):
			return -1
		case ad.Before(bd):
			return 1
		}
		// Durations before instants on equal dates, longest first.
		return b.Days - a.Days
	})
	return ps
}

func (self *periodSet) addInstant(ctx *Context) {
	date, err := time.Parse(dateLayout, ctx.Period.Instant)
	if err != nil {
		return
	}
	key := InstantKey(ctx.Period.Instant)
	p, ok := self.byKey[key]
	if !ok {
		p = &ReportingPeriod{
			Type:    "instant",
			Key:     key,
			Label:   date.Format("January 2, 2006"),
			Instant: date,
		}
		self.byKey[key] = p
		self.periods = append(self.periods, p)
	}
	p.ContextIDs = append(p.ContextIDs, ctx.ID)
	self.byContext[ctx.ID] = key
}

func (self *periodSet) addDuration(ctx *Context) {
	start, err := time.Parse(dateLayout, ctx.Period.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(dateLayout, ctx.Period.EndDate)
	if err != nil {
		return
	}

	key := DurationKey(ctx.Period.StartDate, ctx.Period.EndDate)
	p, ok := self.byKey[key]
	if !ok {
		days := int(end.Sub(start).Hours() / 24)
		p = &ReportingPeriod{
			Type:         "duration",
			Key:          key,
			Start:        start,
			End:          end,
			Days:         days,
			DurationType: ClassifyDuration(days),
		}
		p.Label = durationLabel(p)
		self.byKey[key] = p
		self.periods = append(self.periods, p)
	}
	p.ContextIDs = append(p.ContextIDs, ctx.ID)
	self.byContext[ctx.ID] = key
}

func durationLabel(p *ReportingPeriod) string {
	span := fmt.Sprintf("%s - %s",
		p.Start.Format("Jan 2, 2006"), p.End.Format("Jan 2, 2006"))
	switch p.DurationType {
	case DurationAnnual:
		return fmt.Sprintf("FY %d (%s)", p.End.Year(), span)
	case DurationQuarterly:
		return span + " (Quarterly)"
	case DurationYTD:
		return span + " (YTD)"
	}
	return span
}

func (self *periodSet) instants() []*ReportingPeriod {
	return self.ofType("instant", "")
}

func (self *periodSet) durations(durationType string) []*ReportingPeriod {
	return self.ofType("duration", durationType)
}

func (self *periodSet) ofType(typ, durationType string) []*ReportingPeriod {
	var out []*ReportingPeriod
	for _, p := range self.periods {
		if p.Type != typ {
			continue
		}
		if durationType != "" && p.DurationType != durationType {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Periods returns all reporting periods, most recent first.
func (self *XBRL) Periods() []*ReportingPeriod {
	return slices.Clone(self.periods.periods)
}

// PeriodKeyForContext reports the period key a context maps to. Total
// over all contexts with a recognizable period.
func (self *XBRL) PeriodKeyForContext(contextID string) (string, bool) {
	key, ok := self.periods.byContext[contextID]
	return key, ok
}

// PeriodLabels maps period key to display label, the shape the
// stitcher consumes.
func (self *XBRL) PeriodLabels() map[string]string {
	labels := make(map[string]string, len(self.periods.byKey))
	for key, p := range self.periods.byKey {
		labels[key] = p.Label
	}
	return labels
}
