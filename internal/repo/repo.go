package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var statementFactCols = [...]string{
	"company_cik", "concept_id", "statement", "period_key", "fact_start",
	"fact_end", "val", "decimals", "accn", "fy", "fp", "form", "filed",
}

func New(db Postgreser) *Repo {
	return &Repo{db: db}
}

type Repo struct {
	db Postgreser
}

type Postgreser interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string,
		rowSrc pgx.CopyFromSource) (int64, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

func (self *Repo) AddCompany(ctx context.Context, cik uint32, name string,
) (bool, error) {
	cmdTag, err := self.db.Exec(ctx, `
INSERT INTO companies (cik, entity_name)
  VALUES              ($1,  $2)
  ON CONFLICT DO NOTHING`, cik, name)
	if err != nil {
		return false, fmt.Errorf("add company CIK=%v %q: %w", cik, name, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// AddConcept inserts one catalog concept, like "us-gaap_Assets", with
// its standard label and returns its id. An already known concept
// keeps its first label and returns the existing id.
func (self *Repo) AddConcept(ctx context.Context, concept, label string,
) (uint32, error) {
	makeErr := func(err error) error {
		return fmt.Errorf("add concept %q: %w", concept, err)
	}

	rows, err := self.db.Query(ctx, `
INSERT INTO concepts (concept, label)
  VALUES             ($1,      $2)
  ON CONFLICT DO NOTHING
  RETURNING id`, concept, label)
	if err != nil {
		return 0, makeErr(err)
	}

	if id, err := pgx.CollectOneRow(rows, pgx.RowTo[uint32]); err == nil {
		return id, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return 0, makeErr(err)
	}

	rows, err = self.db.Query(ctx,
		`SELECT id FROM concepts WHERE concept = $1`, concept)
	if err != nil {
		return 0, makeErr(err)
	}

	id, err := pgx.CollectExactlyOneRow(rows, pgx.RowTo[uint32])
	if err != nil {
		return 0, makeErr(err)
	}

	return id, nil
}

func (self *Repo) Concepts(ctx context.Context) (map[string]uint32, error) {
	rows, err := self.db.Query(ctx, `SELECT id, concept FROM concepts`)
	if err != nil {
		return nil, fmt.Errorf("repo.Concepts: %w", err)
	}

	type conceptItem struct {
		Id      uint32 `db:"id"`
		Concept string `db:"concept"`
	}

	conceptItems, err := pgx.CollectRows(rows, pgx.RowToStructByName[conceptItem])
	if err != nil {
		return nil, fmt.Errorf("repo.Concepts: %w", err)
	}

	concepts := make(map[string]uint32, len(conceptItems))
	for _, item := range conceptItems {
		concepts[item.Concept] = item.Id
	}
	return concepts, nil
}

func (self *Repo) AddStatementFact(ctx context.Context, fact StatementFact,
) error {
	_, err := self.db.Exec(ctx, `
INSERT INTO statement_facts (company_cik,  concept_id,  statement,
                             period_key,   fact_start,  fact_end,  val,
                             decimals,     accn,        fy,        fp,
                             form,         filed)
  VALUES                    (@company_cik, @concept_id, @statement,
                             @period_key,  @fact_start, @fact_end, @val,
                             @decimals,    @accn,       @fy,       @fp,
                             @form,        @filed)`, fact.NamedArgs())
	if err != nil {
		return fmt.Errorf("failed add statement fact: %w", err)
	}
	return nil
}

func (self *Repo) CopyStatementFacts(ctx context.Context, length int,
	next func(i int) (StatementFact, error),
) error {
	return self.copyStatementFacts(ctx, self.db, length, next)
}

func (self *Repo) copyStatementFacts(ctx context.Context, conn Postgreser,
	length int, next func(i int) (StatementFact, error),
) error {
	n, err := conn.CopyFrom(ctx, pgx.Identifier{"statement_facts"},
		statementFactCols[:],
		pgx.CopyFromSlice(length, func(i int) ([]any, error) {
			fact, err := next(i)
			if err != nil {
				return nil, err
			}
			values := []any{
				fact.CIK, fact.ConceptId, fact.Statement, fact.PeriodKey,
				fact.Start, fact.End, fact.Val, fact.Decimals, fact.Accn,
				fact.FY, fact.FP, fact.Form, fact.Filed,
			}
			return values, nil
		}))
	if err != nil {
		return fmt.Errorf("failed copy %v statement facts: %w", length, err)
	} else if n != int64(length) {
		return fmt.Errorf("copied %v statement facts instead of %v", n, length)
	}
	return nil
}

func (self *Repo) LastFiled(ctx context.Context) (map[uint32]time.Time, error) {
	rows, err := self.db.Query(ctx, `
SELECT company_cik, MAX(filed) AS last_filed
  FROM statement_facts GROUP BY company_cik`)
	if err != nil {
		return nil, fmt.Errorf("repo.LastFiled: %w", err)
	}

	type lastFiled struct {
		CIK   uint32    `db:"company_cik"`
		Filed time.Time `db:"last_filed"`
	}

	cikFiled, err := pgx.CollectRows(rows, pgx.RowToStructByName[lastFiled])
	if err != nil {
		return nil, fmt.Errorf("repo.LastFiled: %w", err)
	}

	filedByCIK := make(map[uint32]time.Time, len(cikFiled))
	for i := range cikFiled {
		item := &cikFiled[i]
		filedByCIK[item.CIK] = item.Filed
	}

	return filedByCIK, nil
}

func (self *Repo) FiledCounts(ctx context.Context, cik uint32,
) (map[time.Time]uint32, error) {
	rows, err := self.db.Query(ctx, `
SELECT filed, COUNT(*) AS facts FROM statement_facts
  WHERE company_cik = $1
  GROUP BY company_cik, filed`, cik)
	if err != nil {
		return nil, fmt.Errorf("repo.FiledCounts: %w", err)
	}

	type filedCount struct {
		Filed time.Time `db:"filed"`
		Facts uint32    `db:"facts"`
	}

	filedCounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[filedCount])
	if err != nil {
		return nil, fmt.Errorf("repo.FiledCounts: %w", err)
	}

	counts := make(map[time.Time]uint32, len(filedCounts))
	for _, item := range filedCounts {
		counts[item.Filed] = item.Facts
	}
	return counts, nil
}

// ReplaceStatementFacts transactionally replaces everything the
// company filed on lastFiled or later with the given facts. Refiling
// the same accession stays idempotent that way.
func (self *Repo) ReplaceStatementFacts(ctx context.Context, cik uint32,
	lastFiled time.Time, length int, next func(i int) (StatementFact, error),
) error {
	err := pgx.BeginFunc(ctx, self.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
DELETE FROM statement_facts WHERE company_cik = $1 AND filed >= $2`,
			cik, lastFiled)
		if err != nil {
			return err //nolint:wrapcheck // wrap it below
		}
		return self.copyStatementFacts(ctx, tx, length, next)
	})
	if err != nil {
		return fmt.Errorf("repo.ReplaceStatementFacts: %w", err)
	}
	return nil
}
