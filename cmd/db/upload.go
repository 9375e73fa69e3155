package db

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/edgarlab/edgar/internal/repo"
	"github.com/edgarlab/edgar/xbrl"
)

func NewUpload(repo Repository) *Upload {
	return &Upload{
		repo:     repo,
		concepts: newConcepts(),
		procs:    1,
		log:      slog.Default(),
	}
}

// Repository persists parsed statements.
type Repository interface {
	AddCompany(ctx context.Context, cik uint32, name string) (bool, error)
	AddConcept(ctx context.Context, concept, label string) (uint32, error)
	Concepts(ctx context.Context) (map[string]uint32, error)
	ReplaceStatementFacts(ctx context.Context, cik uint32,
		lastFiled time.Time, length int,
		next func(i int) (repo.StatementFact, error)) error
}

type Upload struct {
	repo     Repository
	concepts concepts

	procs int
	log   *slog.Logger
}

func (self *Upload) WithLogger(l *slog.Logger) *Upload {
	self.log = l
	return self
}

func (self *Upload) WithProcsLimit(n int) *Upload {
	self.procs = n
	return self
}

// Upload parses every filing directory and stores its resolved
// statement line items.
func (self *Upload) Upload(dirs []string) error {
	ctx := context.Background()
	known, err := self.repo.Concepts(ctx)
	if err != nil {
		return fmt.Errorf("known concepts: %w", err)
	}
	self.concepts.Prime(known)
	self.log.Info("known concepts", slog.Int("count", len(known)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(self.procs)
	for _, dir := range dirs {
		dir := dir
		g.Go(func() error { return self.processFiling(ctx, dir) })
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("upload %v filings: %w", len(dirs), err)
	}
	return nil
}

func (self *Upload) processFiling(ctx context.Context, dir string) error {
	x, err := xbrl.ParseDir(dir)
	if err != nil {
		return fmt.Errorf("parse %q: %w", dir, err)
	}

	info := x.EntityInfo()
	cik, err := strconv.ParseUint(info.Identifier, 10, 32)
	if err != nil {
		return fmt.Errorf("CIK of %q: %w", dir, err)
	}

	l := ContextLogger(ctx, self.log).With(
		slog.Uint64("cik", cik), slog.String("form", info.DocumentType))
	isNew, err := self.repo.AddCompany(ctx, uint32(cik), info.EntityName)
	if err != nil {
		return fmt.Errorf("upload %q: %w", dir, err)
	} else if isNew {
		l.Info("new company added", slog.String("name", info.EntityName))
	}

	facts, err := self.statementFacts(ctx, x, uint32(cik), filepath.Base(dir))
	if err != nil {
		return fmt.Errorf("upload %q: %w", dir, err)
	} else if len(facts) == 0 {
		l.Warn("no statement facts in filing", slog.String("dir", dir))
		return nil
	}

	err = self.repo.ReplaceStatementFacts(ctx, uint32(cik),
		info.ReportingEndDate, len(facts),
		func(i int) (repo.StatementFact, error) { return facts[i], nil })
	if err != nil {
		return fmt.Errorf("upload %q: %w", dir, err)
	}
	l.Info("uploaded filing", slog.String("dir", dir),
		slog.Int("facts", len(facts)))
	return nil
}

// statementFacts flattens every classified statement of the filing
// into rows. Dimension rows and valueless items are skipped.
func (self *Upload) statementFacts(ctx context.Context, x *xbrl.XBRL,
	cik uint32, accn string,
) ([]repo.StatementFact, error) {
	info := x.EntityInfo()
	periods := make(map[string]*xbrl.ReportingPeriod)
	for _, p := range x.Periods() {
		periods[p.Key] = p
	}

	var facts []repo.StatementFact
	for _, stmt := range x.AllStatements() {
		if stmt.Type == "" {
			continue
		}
		for _, item := range x.Statement(stmt.Role) {
			if item.Abstract || item.Dimension || !item.HasValues {
				continue
			}
			conceptId, err := self.conceptId(ctx, &item)
			if err != nil {
				return nil, err
			}
			facts = append(facts, itemFacts(&item, periods, &info,
				cik, conceptId, stmt.Type, accn)...)
		}
	}
	return facts, nil
}

func (self *Upload) conceptId(ctx context.Context, item *xbrl.LineItem,
) (uint32, error) {
	id, err := self.concepts.Id(item.Concept, func() (uint32, error) {
		id, err := self.repo.AddConcept(ctx, item.Concept, item.Label)
		if err != nil {
			return 0, fmt.Errorf("create concept %q: %w", item.Concept, err)
		}
		return id, nil
	})
	if err != nil {
		return 0, err //nolint:wrapcheck // already wrapped inside Id
	}
	return id, nil
}

func itemFacts(item *xbrl.LineItem, periods map[string]*xbrl.ReportingPeriod,
	info *xbrl.EntityInfo, cik, conceptId uint32, statement, accn string,
) []repo.StatementFact {
	facts := make([]repo.StatementFact, 0, len(item.Values))
	for key, val := range item.Values {
		p, ok := periods[key]
		if !ok {
			continue
		}
		fact := repo.StatementFact{
			CIK:       cik,
			ConceptId: conceptId,
			Statement: statement,
			PeriodKey: key,
			End:       p.EndDate(),
			Val:       val,
			Accn:      accn,
			FY:        uint(info.FiscalYear),
			FP:        info.FiscalPeriod,
			Form:      info.DocumentType,
			Filed:     info.ReportingEndDate,
		}
		if p.Type == "duration" {
			fact.WithStart(p.Start)
		}
		if d, ok := item.Decimals[key]; ok && d != xbrl.DecimalsInf {
			fact.WithDecimals(d)
		}
		facts = append(facts, fact)
	}
	return facts
}
