package xbrl

import (
	"encoding/xml"
	"slices"
	"strconv"
	"strings"
)

// Dimensional arcroles from the XBRL Dimensions specification.
const (
	arcroleAll                = "all"
	arcroleHypercubeDimension = "hypercube-dimension"
	arcroleDimensionDomain    = "dimension-domain"
	arcroleDomainMember       = "domain-member"
)

// PresentationNode is one element's position in a presentation tree.
type PresentationNode struct {
	ElementID      string
	Parent         string // empty for the root
	Children       []string
	Depth          int
	Order          float64
	Abstract       bool
	Labels         map[string]string
	PreferredLabel string
	StandardLabel  string
}

// PresentationTree is the display hierarchy for one extended-link
// role.
type PresentationTree struct {
	Role       string
	Definition string
	Root       string
	Nodes      map[string]*PresentationNode
}

// CalculationNode carries the signed roll-up weight for one element.
type CalculationNode struct {
	ElementID  string
	Parent     string
	Children   []string
	Weight     float64
	Order      float64
	Balance    string
	PeriodType string
}

type CalculationTree struct {
	Role       string
	Definition string
	Root       string
	Nodes      map[string]*CalculationNode
}

// Axis, Domain and Table model a role's dimensional hypercubes.
type Axis struct {
	ElementID string
	Label     string
	Domain    string
}

type Domain struct {
	ElementID string
	Label     string
	Members   []string
}

type Table struct {
	ElementID string
	Label     string
	Role      string
	Axes      []string
	LineItems []string
}

// arc is one XLink arc with its locators already resolved.
type arc struct {
	from           string
	to             string
	order          float64
	weight         float64
	preferredLabel string
	arcrole        string
}

// extendedLink is the raw content of one presentationLink,
// calculationLink or definitionLink element.
type extendedLink struct {
	role string
	arcs []arc
}

// parseExtendedLinks walks a linkbase and resolves each extended
// link's loc/arc pairs. arcName selects presentationArc,
// calculationArc or definitionArc.
func parseExtendedLinks(fname, content, linkName, arcName string,
) ([]extendedLink, error) {
	var links []extendedLink
	var cur *extendedLink
	locators := make(map[string]string)
	var rawArcs []struct {
		from, to, order, weight, preferred, arcrole string
	}

	flush := func() {
		if cur == nil {
			return
		}
		for _, ra := range rawArcs {
			from, okFrom := locators[ra.from]
			to, okTo := locators[ra.to]
			if !okFrom || !okTo {
				continue
			}
			a := arc{
				from:           NormalizeID(from),
				to:             NormalizeID(to),
				order:          parseOrder(ra.order),
				weight:         parseWeight(ra.weight),
				preferredLabel: ra.preferred,
				arcrole:        arcroleKind(ra.arcrole),
			}
			cur.arcs = append(cur.arcs, a)
		}
		links = append(links, *cur)
		cur = nil
	}

	err := walkElements(content, func(d *xml.Decoder, e xml.StartElement) error {
		switch e.Name.Local {
		case linkName:
			flush()
			cur = &extendedLink{role: attrValue(e, "role")}
			locators = make(map[string]string)
			rawArcs = rawArcs[:0]
		case "loc":
			if cur != nil {
				locators[attrValue(e, "label")] = hrefElementID(attrValue(e, "href"))
			}
		case arcName:
			if cur != nil {
				rawArcs = append(rawArcs, struct {
					from, to, order, weight, preferred, arcrole string
				}{
					from:      attrValue(e, "from"),
					to:        attrValue(e, "to"),
					order:     attrValue(e, "order"),
					weight:    attrValue(e, "weight"),
					preferred: attrValue(e, "preferredLabel"),
					arcrole:   attrValue(e, "arcrole"),
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, newParseError(fname, err)
	}
	flush()
	return links, nil
}

func parseOrder(s string) float64 {
	if s == "" {
		return 1.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1.0
	}
	return v
}

func parseWeight(s string) float64 {
	if s == "" {
		return 1.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1.0
	}
	return v
}

func arcroleKind(arcrole string) string {
	if n := strings.LastIndexByte(arcrole, '/'); n >= 0 {
		return arcrole[n+1:]
	}
	return arcrole
}

// findRoot returns the element that appears as a from but never as a
// to. Roles without such an element build no tree.
func findRoot(arcs []arc) (string, bool) {
	tos := make(map[string]struct{}, len(arcs))
	for _, a := range arcs {
		tos[a.to] = struct{}{}
	}

	var roots []string
	seen := make(map[string]struct{})
	for _, a := range arcs {
		if _, isTo := tos[a.from]; isTo {
			continue
		}
		if _, ok := seen[a.from]; ok {
			continue
		}
		seen[a.from] = struct{}{}
		roots = append(roots, a.from)
	}
	if len(roots) == 0 {
		return "", false
	}
	slices.Sort(roots)
	return roots[0], true
}

// childArcs groups arcs by parent, children sorted by order.
func childArcs(arcs []arc) map[string][]arc {
	children := make(map[string][]arc)
	for _, a := range arcs {
		children[a.from] = append(children[a.from], a)
	}
	for _, cc := range children {
		slices.SortStableFunc(cc, func(a, b arc) int {
			switch {
			case a.order < b.order:
				return -1
			case a.order > b.order:
				return 1
			}
			return 0
		})
	}
	return children
}

func (self *XBRL) parsePresentation(fname, content string) error {
	links, err := parseExtendedLinks(fname, content,
		"presentationLink", "presentationArc")
	if err != nil {
		return err
	}

	for _, link := range links {
		root, ok := findRoot(link.arcs)
		if !ok {
			continue
		}
		tree := &PresentationTree{
			Role:       link.role,
			Definition: self.roleDefinition(link.role),
			Root:       root,
			Nodes:      make(map[string]*PresentationNode),
		}
		self.buildPresentationNode(tree, childArcs(link.arcs), root, "", "", 0, 1.0)
		self.presentation[link.role] = tree
	}
	return nil
}

// buildPresentationNode descends top-down; children already sorted by
// order, depth grows by exactly one per level.
func (self *XBRL) buildPresentationNode(tree *PresentationTree,
	children map[string][]arc, id, parent, preferred string,
	depth int, order float64,
) {
	node := &PresentationNode{
		ElementID:      id,
		Parent:         parent,
		Depth:          depth,
		Order:          order,
		PreferredLabel: preferred,
		StandardLabel:  id,
	}
	if entry, ok := self.catalog.Lookup(id); ok {
		node.Abstract = entry.Abstract
		node.Labels = entry.Labels
		node.StandardLabel = entry.StandardLabel()
	}
	tree.Nodes[id] = node

	for _, a := range children[id] {
		if _, ok := tree.Nodes[a.to]; ok {
			continue // already placed; taxonomies occasionally repeat arcs
		}
		node.Children = append(node.Children, a.to)
		self.buildPresentationNode(tree, children, a.to, id,
			a.preferredLabel, depth+1, a.order)
	}
}

func (self *XBRL) parseCalculation(fname, content string) error {
	links, err := parseExtendedLinks(fname, content,
		"calculationLink", "calculationArc")
	if err != nil {
		return err
	}

	for _, link := range links {
		root, ok := findRoot(link.arcs)
		if !ok {
			continue
		}
		tree := &CalculationTree{
			Role:       link.role,
			Definition: self.roleDefinition(link.role),
			Root:       root,
			Nodes:      make(map[string]*CalculationNode),
		}
		self.buildCalculationNode(tree, childArcs(link.arcs), root, "", 1.0, 1.0)
		self.calculation[link.role] = tree
	}
	return nil
}

func (self *XBRL) buildCalculationNode(tree *CalculationTree,
	children map[string][]arc, id, parent string, weight, order float64,
) {
	node := &CalculationNode{
		ElementID: id,
		Parent:    parent,
		Weight:    weight,
		Order:     order,
	}
	if entry, ok := self.catalog.Lookup(id); ok {
		node.Balance = entry.Balance
		node.PeriodType = entry.PeriodType
	}
	tree.Nodes[id] = node

	for _, a := range children[id] {
		if _, ok := tree.Nodes[a.to]; ok {
			continue
		}
		node.Children = append(node.Children, a.to)
		self.buildCalculationNode(tree, children, a.to, id, a.weight, a.order)
	}
}

// parseDefinition classifies definition arcs into the four
// dimensional relationship kinds and builds Axis/Domain/Table
// records. A table without at least one axis is discarded.
func (self *XBRL) parseDefinition(fname, content string) error {
	links, err := parseExtendedLinks(fname, content,
		"definitionLink", "definitionArc")
	if err != nil {
		return err
	}

	for _, link := range links {
		tables := make(map[string]*Table)
		for _, a := range link.arcs {
			switch a.arcrole {
			case arcroleAll:
				// from = line items root, to = table
				t := self.definitionTable(tables, a.to, link.role)
				t.LineItems = append(t.LineItems, a.from)
			case arcroleHypercubeDimension:
				t := self.definitionTable(tables, a.from, link.role)
				t.Axes = append(t.Axes, a.to)
				self.definitionAxis(a.to)
			case arcroleDimensionDomain:
				axis := self.definitionAxis(a.from)
				axis.Domain = a.to
				self.definitionDomain(a.to)
			case arcroleDomainMember:
				dom := self.definitionDomain(a.from)
				if !slices.Contains(dom.Members, a.to) {
					dom.Members = append(dom.Members, a.to)
				}
			}
		}
		for _, t := range tables {
			if len(t.Axes) > 0 {
				self.tables = append(self.tables, t)
			}
		}
	}
	return nil
}

func (self *XBRL) definitionTable(tables map[string]*Table, id, role string,
) *Table {
	if t, ok := tables[id]; ok {
		return t
	}
	t := &Table{ElementID: id, Role: role, Label: self.elementLabel(id)}
	tables[id] = t
	return t
}

func (self *XBRL) definitionAxis(id string) *Axis {
	if a, ok := self.axes[id]; ok {
		return a
	}
	a := &Axis{ElementID: id, Label: self.elementLabel(id)}
	self.axes[id] = a
	return a
}

func (self *XBRL) definitionDomain(id string) *Domain {
	if d, ok := self.domains[id]; ok {
		return d
	}
	d := &Domain{ElementID: id, Label: self.elementLabel(id)}
	self.domains[id] = d
	return d
}

func (self *XBRL) elementLabel(id string) string {
	if entry, ok := self.catalog.Lookup(id); ok {
		return entry.StandardLabel()
	}
	return id
}

func (self *XBRL) roleDefinition(role string) string {
	if def, ok := self.roleDefs[role]; ok {
		return def
	}
	// Fall back to the role URI's last path segment split on camel
	// case, e.g. ".../BalanceSheet" -> "Balance Sheet".
	return splitCamelCase(roleShortName(role))
}

func roleShortName(role string) string {
	if n := strings.LastIndexByte(role, '/'); n >= 0 {
		return role[n+1:]
	}
	return role
}

func splitCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := s[i-1]
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
