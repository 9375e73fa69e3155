package repo

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// StatementFact is one resolved line item value of one filing:
// a concept placed on a statement, valued for one reporting period.
type StatementFact struct {
	CIK       uint32 `db:"company_cik"`
	ConceptId uint32 `db:"concept_id"`

	Statement string      `db:"statement"`
	PeriodKey string      `db:"period_key"`
	Start     pgtype.Date `db:"fact_start"`
	End       time.Time   `db:"fact_end"`
	Val       float64     `db:"val"`
	Decimals  pgtype.Int4 `db:"decimals"`
	Accn      string      `db:"accn"`
	FY        uint        `db:"fy"`
	FP        string      `db:"fp"`
	Form      string      `db:"form"`
	Filed     time.Time   `db:"filed"`
}

func (self *StatementFact) WithStart(d time.Time) *StatementFact {
	self.Start = pgtype.Date{Time: d, Valid: true}
	return self
}

func (self *StatementFact) WithDecimals(d int) *StatementFact {
	self.Decimals = pgtype.Int4{Int32: int32(d), Valid: true}
	return self
}

func (self *StatementFact) NamedArgs() pgx.NamedArgs {
	return pgx.NamedArgs{
		"company_cik": self.CIK,
		"concept_id":  self.ConceptId,

		"statement":  self.Statement,
		"period_key": self.PeriodKey,
		"fact_start": self.Start,
		"fact_end":   self.End,
		"val":        self.Val,
		"decimals":   self.Decimals,
		"accn":       self.Accn,
		"fy":         self.FY,
		"fp":         self.FP,
		"form":       self.Form,
		"filed":      self.Filed,
	}
}
