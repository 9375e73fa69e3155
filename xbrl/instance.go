package xbrl

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// DecimalsInf is the sentinel for decimals="INF": infinite precision,
// no scaling applied on display.
const DecimalsInf = 1 << 15

// Entity identifies the reporting company inside a context.
type Entity struct {
	Identifier string
	Scheme     string
}

// Period is a context's period descriptor. Exactly one of Instant,
// StartDate+EndDate or Forever is set.
type Period struct {
	Instant   string
	StartDate string
	EndDate   string
	Forever   bool
}

func (self *Period) IsInstant() bool { return self.Instant != "" }

func (self *Period) IsDuration() bool {
	return self.StartDate != "" && self.EndDate != ""
}

// Context is one xbrli:context: entity, period and dimensional
// qualifiers. Immutable once parsed; many facts reference one context.
type Context struct {
	ID         string
	Entity     Entity
	Period     Period
	Dimensions map[string]string // normalized dimension id -> member id or typed value
}

// Unit is one xbrli:unit. For divide units both Numerator and
// Denominator are set and Measure is empty.
type Unit struct {
	ID          string
	Measure     string
	Numerator   string
	Denominator string
}

// Fact is one reported value. Identity is the (element, context)
// pair; later duplicates in the source overwrite earlier ones. Facts
// are value objects: the sign-correction pass replaces entries in the
// store instead of mutating them.
type Fact struct {
	ElementID    string // underscore form
	ContextID    string
	Value        string
	UnitID       string
	Decimals     string // raw attribute, "INF" allowed
	NumericValue *float64
}

func (self *Fact) key() string { return self.ElementID + "|" + self.ContextID }

// DecimalsInt parses the decimals attribute, mapping INF to
// DecimalsInf. Absent or unparseable decimals report 0.
func (self *Fact) DecimalsInt() int {
	if self.Decimals == "INF" {
		return DecimalsInf
	}
	n, err := strconv.Atoi(self.Decimals)
	if err != nil {
		return 0
	}
	return n
}

type xmlContext struct {
	ID     string `xml:"id,attr"`
	Entity struct {
		Identifier struct {
			Scheme string `xml:"scheme,attr"`
			Value  string `xml:",chardata"`
		} `xml:"identifier"`
		Segment *xmlSegment `xml:"segment"`
	} `xml:"entity"`
	Period struct {
		Instant   string    `xml:"instant"`
		StartDate string    `xml:"startDate"`
		EndDate   string    `xml:"endDate"`
		Forever   *struct{} `xml:"forever"`
	} `xml:"period"`
}

type xmlSegment struct {
	Explicit []struct {
		Dimension string `xml:"dimension,attr"`
		Member    string `xml:",chardata"`
	} `xml:"explicitMember"`
	Typed []struct {
		Dimension string `xml:"dimension,attr"`
		Inner     string `xml:",innerxml"`
	} `xml:"typedMember"`
}

type xmlUnit struct {
	ID      string `xml:"id,attr"`
	Measure string `xml:"measure"`
	Divide  *struct {
		Numerator   string `xml:"unitNumerator>measure"`
		Denominator string `xml:"unitDenominator>measure"`
	} `xml:"divide"`
}

// parseInstance extracts contexts, units and facts from the instance
// document. Facts are discovered as direct children of the document
// root and one level inside them, to tolerate wrapper elements.
func (self *XBRL) parseInstance(fname, content string) error {
	prefixes := namespacePrefixes(content)

	d := xml.NewDecoder(strings.NewReader(content))
	depth := 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return newParseError(fname, err)
		}

		switch e := tok.(type) {
		case xml.StartElement:
			depth++
			if consumed, err := self.instanceElement(d, e, depth, prefixes); err != nil {
				return newParseError(fname, err)
			} else if consumed {
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// instanceElement dispatches one start element. It reports whether
// the element's subtree was consumed from the decoder.
func (self *XBRL) instanceElement(d *xml.Decoder, e xml.StartElement,
	depth int, prefixes map[string]string,
) (bool, error) {
	switch e.Name.Local {
	case "context":
		if err := self.instanceContext(d, e); err != nil {
			return true, err
		}
		return true, nil
	case "unit":
		if err := self.instanceUnit(d, e); err != nil {
			return true, err
		}
		return true, nil
	case "schemaRef", "xbrl":
		return false, nil
	}

	// Fact elements carry a contextRef and sit at most one level
	// below the root's children.
	if depth > 3 || attrValue(e, "contextRef") == "" {
		return false, nil
	}
	if err := self.instanceFact(d, e, prefixes); err != nil {
		return true, err
	}
	return true, nil
}

func (self *XBRL) instanceContext(d *xml.Decoder, e xml.StartElement) error {
	var xc xmlContext
	if err := d.DecodeElement(&xc, &e); err != nil {
		return fmt.Errorf("decode context: %w", err)
	}

	ctx := &Context{
		ID: xc.ID,
		Entity: Entity{
			Identifier: strings.TrimSpace(xc.Entity.Identifier.Value),
			Scheme:     xc.Entity.Identifier.Scheme,
		},
		Period: Period{
			Instant:   strings.TrimSpace(xc.Period.Instant),
			StartDate: strings.TrimSpace(xc.Period.StartDate),
			EndDate:   strings.TrimSpace(xc.Period.EndDate),
			Forever:   xc.Period.Forever != nil,
		},
		Dimensions: segmentDimensions(xc.Entity.Segment),
	}
	self.contexts[ctx.ID] = ctx
	return nil
}

func segmentDimensions(seg *xmlSegment) map[string]string {
	if seg == nil {
		return nil
	}
	dims := make(map[string]string, len(seg.Explicit)+len(seg.Typed))
	for _, m := range seg.Explicit {
		if m.Dimension == "" {
			continue
		}
		dims[NormalizeID(m.Dimension)] = NormalizeID(strings.TrimSpace(m.Member))
	}
	for _, m := range seg.Typed {
		if m.Dimension == "" {
			continue
		}
		// The tag name of the single child stands in for the typed value.
		dims[NormalizeID(m.Dimension)] = typedMemberValue(m.Inner)
	}
	if len(dims) == 0 {
		return nil
	}
	return dims
}

var typedTagRe = regexp.MustCompile(`<\s*([^\s/>]+)`)

func typedMemberValue(inner string) string {
	m := typedTagRe.FindStringSubmatch(inner)
	if m == nil {
		return strings.TrimSpace(inner)
	}
	return NormalizeID(m[1])
}

func (self *XBRL) instanceUnit(d *xml.Decoder, e xml.StartElement) error {
	var xu xmlUnit
	if err := d.DecodeElement(&xu, &e); err != nil {
		return fmt.Errorf("decode unit: %w", err)
	}

	u := &Unit{ID: xu.ID, Measure: strings.TrimSpace(xu.Measure)}
	if xu.Divide != nil {
		u.Measure = ""
		u.Numerator = strings.TrimSpace(xu.Divide.Numerator)
		u.Denominator = strings.TrimSpace(xu.Divide.Denominator)
	}
	self.units[u.ID] = u
	return nil
}

func (self *XBRL) instanceFact(d *xml.Decoder, e xml.StartElement,
	prefixes map[string]string,
) error {
	contextRef := attrValue(e, "contextRef")
	unitRef := attrValue(e, "unitRef")
	decimals := attrValue(e, "decimals")

	var body struct {
		Chardata string `xml:",chardata"`
		Inner    string `xml:",innerxml"`
	}
	if err := d.DecodeElement(&body, &e); err != nil {
		return fmt.Errorf("decode fact %q: %w", e.Name.Local, err)
	}

	value := strings.TrimSpace(body.Chardata)
	if value == "" {
		// One level of nesting tolerated before giving up.
		value = innerText(body.Inner)
	}

	fact := &Fact{
		ElementID:    NormalizeID(elementID(e.Name, prefixes)),
		ContextID:    contextRef,
		Value:        value,
		UnitID:       unitRef,
		Decimals:     decimals,
		NumericValue: parseNumeric(value),
	}
	self.storeFact(fact)
	return nil
}

// storeFact deduplicates by (element, context): a later occurrence
// overwrites the earlier entry instead of duplicating it.
func (self *XBRL) storeFact(fact *Fact) {
	key := fact.key()
	if old, ok := self.facts[key]; ok {
		byElem := self.factsByElement[fact.ElementID]
		for i, f := range byElem {
			if f == old {
				byElem[i] = fact
				break
			}
		}
		self.facts[key] = fact
		return
	}
	self.facts[key] = fact
	self.factsByElement[fact.ElementID] = append(
		self.factsByElement[fact.ElementID], fact)
}

// parseNumeric strips thousands separators and attempts a float
// conversion. A non-numeric value yields nil, not zero.
func parseNumeric(value string) *float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Well-known taxonomy namespaces, matched against a fact's namespace
// URI when the document declares no usable prefix for it.
var wellKnownPrefixes = [...]struct{ match, prefix string }{
	{"us-gaap", "us-gaap"},
	{"ifrs", "ifrs"},
	{"/dei", "dei"},
	{"xbrldi", "xbrldi"},
	{"srt", "srt"},
}

// namespacePrefixes inverts the instance document's xmlns
// declarations into a URI -> prefix map.
func namespacePrefixes(content string) map[string]string {
	prefixes := make(map[string]string)
	_ = walkElements(content, func(d *xml.Decoder, e xml.StartElement) error {
		for _, a := range e.Attr {
			if a.Name.Space == "xmlns" {
				prefixes[a.Value] = a.Name.Local
			}
		}
		return io.EOF // root element only
	})
	delete(prefixes, "")
	return prefixes
}

// elementID derives "prefix:local" for a fact's XML name. When the
// namespace URI has no declared prefix it falls back to well-known
// taxonomy prefixes and finally to the bare tag name.
func elementID(name xml.Name, prefixes map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	if prefix, ok := prefixes[name.Space]; ok && prefix != "" {
		return prefix + ":" + name.Local
	}
	for _, known := range wellKnownPrefixes {
		if strings.Contains(name.Space, known.match) {
			return known.prefix + ":" + name.Local
		}
	}
	return name.Local
}
