package xbrl

import "strings"

// Label linkbase role URIs. StdLabel is the role every element should
// at least attempt to carry.
const (
	StdLabel        = "http://www.xbrl.org/2003/role/label"
	TerseLabel      = "http://www.xbrl.org/2003/role/terseLabel"
	TotalLabel      = "http://www.xbrl.org/2003/role/totalLabel"
	NegatedLabel    = "http://www.xbrl.org/2009/role/negatedLabel"
	PeriodStartText = "periodStartLabel"
	PeriodEndText   = "periodEndLabel"
)

// NormalizeID converts an element id to the underscore form used as
// lookup key everywhere: "us-gaap:Assets" -> "us-gaap_Assets". Ids
// already in underscore form pass through unchanged.
func NormalizeID(id string) string {
	return strings.ReplaceAll(id, ":", "_")
}

// Element is one catalog entry built from the schema and label
// linkbases. Immutable once the catalog is built.
type Element struct {
	ID         string // underscore form
	Name       string // local name without namespace
	Type       string
	PeriodType string // "instant" or "duration"
	Balance    string // "debit", "credit" or ""
	Abstract   bool
	Labels     map[string]string // label role URI -> en-US text
}

// Label returns the label for role, falling back to the standard
// label and finally to the element id itself.
func (self *Element) Label(role string) string {
	if self == nil {
		return ""
	}
	if s, ok := self.Labels[role]; ok && s != "" {
		return s
	}
	if s, ok := self.Labels[StdLabel]; ok && s != "" {
		return s
	}
	return self.ID
}

func (self *Element) StandardLabel() string { return self.Label(StdLabel) }

// Catalog maps normalized element ids to their entries.
type Catalog map[string]*Element

// Lookup is insensitive to the colon vs underscore separator.
func (self Catalog) Lookup(id string) (*Element, bool) {
	e, ok := self[NormalizeID(id)]
	return e, ok
}

// placeholder returns the existing entry for id or creates an empty
// one, so labels arriving before the schema declaration are kept.
func (self Catalog) placeholder(id string) *Element {
	key := NormalizeID(id)
	if e, ok := self[key]; ok {
		return e
	}
	e := &Element{
		ID:         key,
		Name:       localName(key),
		PeriodType: "duration",
		Labels:     make(map[string]string),
	}
	self[key] = e
	return e
}

func localName(id string) string {
	if n := strings.LastIndexByte(id, '_'); n >= 0 {
		return id[n+1:]
	}
	return id
}
