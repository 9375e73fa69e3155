package xbrl

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// EntityInfo is extracted best-effort from the dei facts of the
// filing. Missing facts leave zero values; extraction never fails the
// parse.
type EntityInfo struct {
	EntityName         string
	Ticker             string
	Identifier         string // CIK, leading zeros stripped
	DocumentType       string
	FiscalYear         int
	FiscalPeriod       string
	AnnualReport       bool
	QuarterlyReport    bool
	Amendment          bool
	FiscalYearEndMonth int
	FiscalYearEndDay   int
	ReportingEndDate   time.Time
}

// EntityInfo returns the filing's entity information, computed once
// per parse.
func (self *XBRL) EntityInfo() EntityInfo {
	self.entityOnce.Do(func() {
		self.entity = self.extractEntityInfo()
	})
	return self.entity
}

func (self *XBRL) extractEntityInfo() EntityInfo {
	info := EntityInfo{
		EntityName:   self.deiValue("dei_EntityRegistrantName"),
		Ticker:       self.deiValue("dei_TradingSymbol"),
		DocumentType: self.deiValue("dei_DocumentType"),
		FiscalPeriod: self.deiValue("dei_DocumentFiscalPeriodFocus"),
	}

	info.Identifier = strings.TrimLeft(self.deiValue("dei_EntityCentralIndexKey"), "0")

	docType := strings.ToUpper(info.DocumentType)
	info.Amendment = strings.HasSuffix(docType, "/A")
	docType = strings.TrimSuffix(docType, "/A")
	info.AnnualReport = docType == "10-K" || docType == "20-F" || docType == "40-F"
	info.QuarterlyReport = docType == "10-Q"

	if s := self.deiValue("dei_DocumentFiscalYearFocus"); s != "" {
		if fy, err := strconv.Atoi(s); err == nil {
			info.FiscalYear = fy
		} else {
			self.log.Warn("unparseable fiscal year focus", slog.String("value", s))
		}
	}

	if s := self.deiValue("dei_DocumentPeriodEndDate"); s != "" {
		if t, err := time.Parse(dateLayout, s); err == nil {
			info.ReportingEndDate = t
		} else {
			self.log.Warn("unparseable document period end date",
				slog.String("value", s))
		}
	}

	info.FiscalYearEndMonth, info.FiscalYearEndDay = self.fiscalYearEnd(&info)
	return info
}

// fiscalYearEnd reads dei:CurrentFiscalYearEndDate ("--12-31"),
// falling back to the reporting end date of an annual report.
func (self *XBRL) fiscalYearEnd(info *EntityInfo) (month, day int) {
	s := strings.TrimLeft(self.deiValue("dei_CurrentFiscalYearEndDate"), "-")
	if s != "" {
		if t, err := time.Parse("01-02", s); err == nil {
			return int(t.Month()), t.Day()
		}
		self.log.Warn("unparseable fiscal year end", slog.String("value", s))
	}
	if info.AnnualReport && !info.ReportingEndDate.IsZero() {
		return int(info.ReportingEndDate.Month()), info.ReportingEndDate.Day()
	}
	return 0, 0
}

// deiValue returns the first non-empty dei fact value for an element,
// in document order.
func (self *XBRL) deiValue(elementID string) string {
	facts := self.factsByElement[NormalizeID(elementID)]
	for _, fact := range facts {
		if v := strings.TrimSpace(fact.Value); v != "" {
			return v
		}
	}
	return ""
}
