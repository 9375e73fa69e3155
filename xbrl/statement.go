package xbrl

import (
	"slices"
	"sort"
	"strings"
)

// The five core financial statement types. Core statements suppress
// dimensional breakdowns; anything else may display them.
const (
	BalanceSheet        = "BalanceSheet"
	IncomeStatement     = "IncomeStatement"
	CashFlowStatement   = "CashFlowStatement"
	StatementOfEquity   = "StatementOfEquity"
	ComprehensiveIncome = "ComprehensiveIncome"
)

// StatementSpec describes one standard statement type: the primary
// concept expected near its root and definition keywords used when
// the concept is absent.
type StatementSpec struct {
	Type           string
	PrimaryConcept string
	PeriodType     string // "instant" or "duration"
	Keywords       []string
	Core           bool
}

// StatementTypes is the statement-type registry. It is explicitly
// constructed configuration, passed to the resolver at construction
// time; tests may supply alternate taxonomies.
type StatementTypes []StatementSpec

// DefaultStatementTypes is the us-gaap registry.
func DefaultStatementTypes() StatementTypes {
	return StatementTypes{
		{
			Type:           BalanceSheet,
			PrimaryConcept: "us-gaap_StatementOfFinancialPositionAbstract",
			PeriodType:     "instant",
			Keywords:       []string{"balance sheet", "financial position"},
			Core:           true,
		},
		{
			Type:           IncomeStatement,
			PrimaryConcept: "us-gaap_IncomeStatementAbstract",
			PeriodType:     "duration",
			Keywords:       []string{"income", "operations", "earnings"},
			Core:           true,
		},
		{
			Type:           CashFlowStatement,
			PrimaryConcept: "us-gaap_StatementOfCashFlowsAbstract",
			PeriodType:     "duration",
			Keywords:       []string{"cash flow"},
			Core:           true,
		},
		{
			Type:           StatementOfEquity,
			PrimaryConcept: "us-gaap_StatementOfStockholdersEquityAbstract",
			PeriodType:     "duration",
			Keywords:       []string{"stockholders equity", "shareholders equity", "changes in equity"},
			Core:           true,
		},
		{
			Type:           ComprehensiveIncome,
			PrimaryConcept: "us-gaap_StatementOfIncomeAndComprehensiveIncomeAbstract",
			PeriodType:     "duration",
			Keywords:       []string{"comprehensive income"},
			Core:           true,
		},
	}
}

func (self StatementTypes) byType(name string) (StatementSpec, bool) {
	for _, spec := range self {
		if strings.EqualFold(spec.Type, name) {
			return spec, true
		}
	}
	return StatementSpec{}, false
}

func (self StatementTypes) periodType(name string) string {
	if spec, ok := self.byType(name); ok {
		return spec.PeriodType
	}
	return "duration"
}

// classify names the statement type of a presentation tree, by
// primary concept first, then definition keywords.
func (self StatementTypes) classify(tree *PresentationTree) string {
	for _, spec := range self {
		if _, ok := tree.Nodes[spec.PrimaryConcept]; ok {
			return spec.Type
		}
	}
	def := strings.ToLower(tree.Definition)
	for _, spec := range self {
		for _, kw := range spec.Keywords {
			if strings.Contains(def, kw) {
				return spec.Type
			}
		}
	}
	return ""
}

func (self StatementTypes) isCore(name string) bool {
	spec, ok := self.byType(name)
	return ok && spec.Core
}

// StatementInfo summarizes one available statement role.
type StatementInfo struct {
	Role           string
	Definition     string
	ElementCount   int
	Type           string
	PrimaryConcept string
	RoleName       string
}

// LineItem is one row of a resolved statement. Values and Decimals
// are keyed by period key; a period with no resolved fact has no key.
type LineItem struct {
	Concept       string
	Label         string
	OriginalLabel string
	Level         int
	Abstract      bool
	Total         bool
	Dimension     bool
	Children      []string
	Values        map[string]float64
	Decimals      map[string]int
	HasValues     bool
}

// AllStatements lists every presentation role, classified against the
// statement-type registry, sorted by role URI.
func (self *XBRL) AllStatements() []StatementInfo {
	infos := make([]StatementInfo, 0, len(self.presentation))
	for role, tree := range self.presentation {
		infos = append(infos, StatementInfo{
			Role:           role,
			Definition:     tree.Definition,
			ElementCount:   len(tree.Nodes),
			Type:           self.types.classify(tree),
			PrimaryConcept: tree.Root,
			RoleName:       roleShortName(role),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Role < infos[j].Role })
	return infos
}

// Statement resolves roleOrType to a presentation tree and generates
// its line items. An unresolvable identifier yields an empty list,
// not an error: absent statements are an expected outcome across the
// filing population. periodFilter, when non-empty, limits emitted
// values to those period keys.
func (self *XBRL) Statement(roleOrType string, periodFilter ...string) []LineItem {
	tree := self.resolveStatement(roleOrType)
	if tree == nil {
		return nil
	}

	filter := make(map[string]struct{}, len(periodFilter))
	for _, key := range periodFilter {
		filter[key] = struct{}{}
	}

	gen := &lineItemGen{
		x:          self,
		tree:       tree,
		filter:     filter,
		dimensions: self.displaysDimensions(tree),
	}
	gen.walk(tree.Root, 0)
	return gen.items
}

// resolveStatement tries the ordered matcher chain: exact role URI,
// registry primary concept, short role name, normalized definition,
// and finally role-name substring.
func (self *XBRL) resolveStatement(roleOrType string) *PresentationTree {
	matchers := []func(string) *PresentationTree{
		self.matchRoleURI,
		self.matchStatementType,
		self.matchRoleName,
		self.matchDefinition,
		self.matchRoleSubstring,
	}
	for _, match := range matchers {
		if tree := match(roleOrType); tree != nil {
			return tree
		}
	}
	return nil
}

func (self *XBRL) matchRoleURI(s string) *PresentationTree {
	return self.presentation[s]
}

func (self *XBRL) matchStatementType(s string) *PresentationTree {
	spec, ok := self.types.byType(s)
	if !ok {
		return nil
	}
	for _, role := range self.sortedRoles() {
		if _, ok := self.presentation[role].Nodes[spec.PrimaryConcept]; ok {
			return self.presentation[role]
		}
	}
	for _, role := range self.sortedRoles() {
		tree := self.presentation[role]
		def := strings.ToLower(tree.Definition)
		for _, kw := range spec.Keywords {
			if strings.Contains(def, kw) {
				return tree
			}
		}
	}
	return nil
}

func (self *XBRL) matchRoleName(s string) *PresentationTree {
	for _, role := range self.sortedRoles() {
		if strings.EqualFold(roleShortName(role), s) {
			return self.presentation[role]
		}
	}
	return nil
}

func (self *XBRL) matchDefinition(s string) *PresentationTree {
	want := normalizeMatch(s)
	if want == "" {
		return nil
	}
	for _, role := range self.sortedRoles() {
		if normalizeMatch(self.presentation[role].Definition) == want {
			return self.presentation[role]
		}
	}
	return nil
}

func (self *XBRL) matchRoleSubstring(s string) *PresentationTree {
	want := normalizeMatch(s)
	if want == "" {
		return nil
	}
	for _, role := range self.sortedRoles() {
		if strings.Contains(normalizeMatch(roleShortName(role)), want) {
			return self.presentation[role]
		}
	}
	return nil
}

func (self *XBRL) sortedRoles() []string {
	roles := make([]string, 0, len(self.presentation))
	for role := range self.presentation {
		roles = append(roles, role)
	}
	slices.Sort(roles)
	return roles
}

func normalizeMatch(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var dimensionKeywords = [...]string{
	"segment", "geograph", "product", "business",
}

// displaysDimensions reports whether dimensional facts become child
// rows for this statement. Core statements never display dimensions;
// other roles do when their definition names a segment-like breakdown.
func (self *XBRL) displaysDimensions(tree *PresentationTree) bool {
	stmtType := self.types.classify(tree)
	if self.types.isCore(stmtType) {
		return false
	}
	def := strings.ToLower(tree.Definition)
	for _, kw := range dimensionKeywords {
		if strings.Contains(def, kw) {
			return true
		}
	}
	return false
}

type lineItemGen struct {
	x          *XBRL
	tree       *PresentationTree
	filter     map[string]struct{}
	dimensions bool
	items      []LineItem
}

func (self *lineItemGen) walk(id string, level int) {
	node, ok := self.tree.Nodes[id]
	if !ok {
		return
	}

	item := LineItem{
		Concept:  id,
		Label:    self.nodeLabel(node),
		Level:    level,
		Abstract: node.Abstract,
		Total:    strings.Contains(strings.ToLower(node.PreferredLabel), "total"),
		Children: slices.Clone(node.Children),
	}
	item.OriginalLabel = item.Label

	plain, dimensioned := self.collectFacts(id)
	if self.dimensions && len(dimensioned) > 0 {
		// Parent becomes a header row above its synthetic member
		// children, kept even when it carries no plain totals.
		self.items = append(self.items, item)
		self.emitDimensionRows(id, level+1, dimensioned)
	} else {
		// Dimension-qualified facts still compete when the statement
		// suppresses dimensions, losing to any undimensioned fact for
		// the same period.
		item.Values, item.Decimals = pickLeastDimensioned(
			append(plain, dimensioned...))
		item.HasValues = len(item.Values) > 0
		self.emit(item)
	}

	for _, child := range node.Children {
		self.walk(child, level+1)
	}
}

func (self *lineItemGen) nodeLabel(node *PresentationNode) string {
	if node.PreferredLabel != "" {
		if s, ok := node.Labels[node.PreferredLabel]; ok && s != "" {
			return s
		}
	}
	if node.StandardLabel != "" {
		return node.StandardLabel
	}
	return node.ElementID
}

// emit appends the item unless it resolved no values and is neither a
// structural header nor a parent.
func (self *lineItemGen) emit(item LineItem) {
	if !item.HasValues && !item.Abstract && len(item.Children) == 0 {
		return
	}
	self.items = append(self.items, item)
}

type periodFact struct {
	periodKey string
	fact      *Fact
	context   *Context
}

// collectFacts gathers every candidate fact for an element, split
// into undimensioned and dimensioned, restricted to the period
// filter when one is set.
func (self *lineItemGen) collectFacts(id string) (plain, dimensioned []periodFact) {
	for _, fact := range self.x.factsByElement[NormalizeID(id)] {
		periodKey, ok := self.x.periods.byContext[fact.ContextID]
		if !ok {
			continue
		}
		if len(self.filter) > 0 {
			if _, ok := self.filter[periodKey]; !ok {
				continue
			}
		}
		ctx := self.x.contexts[fact.ContextID]
		pf := periodFact{periodKey: periodKey, fact: fact, context: ctx}
		if ctx != nil && len(ctx.Dimensions) > 0 {
			dimensioned = append(dimensioned, pf)
		} else {
			plain = append(plain, pf)
		}
	}
	return
}

// pickLeastDimensioned selects one fact per period, preferring the
// fewest dimensional qualifiers; ties break on context id so the
// choice is deterministic.
func pickLeastDimensioned(candidates []periodFact,
) (map[string]float64, map[string]int) {
	byPeriod := make(map[string][]periodFact)
	for _, pf := range candidates {
		byPeriod[pf.periodKey] = append(byPeriod[pf.periodKey], pf)
	}

	values := make(map[string]float64)
	decimals := make(map[string]int)
	for periodKey, group := range byPeriod {
		slices.SortStableFunc(group, func(a, b periodFact) int {
			ad, bd := dimCount(a.context), dimCount(b.context)
			if ad != bd {
				return ad - bd
			}
			return strings.Compare(a.fact.ContextID, b.fact.ContextID)
		})
		best := group[0]
		if best.fact.NumericValue == nil {
			continue
		}
		values[periodKey] = *best.fact.NumericValue
		decimals[periodKey] = best.fact.DecimalsInt()
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, decimals
}

func dimCount(ctx *Context) int {
	if ctx == nil {
		return 0
	}
	return len(ctx.Dimensions)
}

// emitDimensionRows groups dimensioned facts by their dimension-value
// combination and emits one child row per combination.
func (self *lineItemGen) emitDimensionRows(parent string, level int,
	facts []periodFact,
) {
	type comboRow struct {
		label    string
		values   map[string]float64
		decimals map[string]int
	}
	combos := make(map[string]*comboRow)
	var order []string

	for _, pf := range facts {
		comboKey := dimensionComboKey(pf.context)
		row, ok := combos[comboKey]
		if !ok {
			row = &comboRow{
				label:    self.dimensionComboLabel(pf.context),
				values:   make(map[string]float64),
				decimals: make(map[string]int),
			}
			combos[comboKey] = row
			order = append(order, comboKey)
		}
		if pf.fact.NumericValue == nil {
			continue
		}
		if _, exists := row.values[pf.periodKey]; !exists {
			row.values[pf.periodKey] = *pf.fact.NumericValue
			row.decimals[pf.periodKey] = pf.fact.DecimalsInt()
		}
	}

	slices.Sort(order)
	for _, comboKey := range order {
		row := combos[comboKey]
		self.items = append(self.items, LineItem{
			Concept:       parent,
			Label:         row.label,
			OriginalLabel: row.label,
			Level:         level,
			Dimension:     true,
			Values:        row.values,
			Decimals:      row.decimals,
			HasValues:     len(row.values) > 0,
		})
	}
}

func dimensionComboKey(ctx *Context) string {
	if ctx == nil {
		return ""
	}
	dims := make([]string, 0, len(ctx.Dimensions))
	for dim, member := range ctx.Dimensions {
		dims = append(dims, dim+"="+member)
	}
	slices.Sort(dims)
	return strings.Join(dims, "|")
}

// dimensionComboLabel names a combination by its member labels,
// joined with " - " when more than one dimension applies.
func (self *lineItemGen) dimensionComboLabel(ctx *Context) string {
	dims := make([]string, 0, len(ctx.Dimensions))
	for dim := range ctx.Dimensions {
		dims = append(dims, dim)
	}
	slices.Sort(dims)

	labels := make([]string, 0, len(dims))
	for _, dim := range dims {
		member := ctx.Dimensions[dim]
		label := member
		if entry, ok := self.x.catalog.Lookup(member); ok {
			label = entry.StandardLabel()
		}
		labels = append(labels, strings.TrimSuffix(label, " [Member]"))
	}
	return strings.Join(labels, " - ")
}
