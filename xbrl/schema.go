package xbrl

import (
	"encoding/xml"
	"log/slog"
	"strings"
)

// EmbeddedLinkbases holds linkbases inlined into a schema's
// xsd:appinfo block. Standalone linkbase files take precedence over
// these, per linkbase kind.
type EmbeddedLinkbases struct {
	Label        string
	Presentation string
	Calculation  string
	Definition   string
}

// parseSchema reads element declarations and roleType definitions
// into the catalog and role map. Embedded linkbase extraction is
// best-effort: a failure there is logged and yields no embedded
// content, it does not fail the schema parse.
func (self *XBRL) parseSchema(fname, content string) (EmbeddedLinkbases, error) {
	var embedded EmbeddedLinkbases
	err := walkElements(content, func(d *xml.Decoder, e xml.StartElement) error {
		switch e.Name.Local {
		case "element":
			self.schemaElement(e)
		case "roleType":
			if err := self.schemaRoleType(d, e); err != nil {
				return err
			}
		case "linkbase":
			self.embeddedLinkbase(d, e, &embedded)
		}
		return nil
	})
	if err != nil {
		return embedded, newParseError(fname, err)
	}
	return embedded, nil
}

func (self *XBRL) schemaElement(e xml.StartElement) {
	id := attrValue(e, "id")
	if id == "" {
		if id = attrValue(e, "name"); id == "" {
			return
		}
	}

	entry := self.catalog.placeholder(id)
	entry.Type = attrValue(e, "type")
	entry.Abstract = attrValue(e, "abstract") == "true"
	if pt := attrValue(e, "periodType"); pt != "" {
		entry.PeriodType = pt
	}
	entry.Balance = attrValue(e, "balance")
	if name := attrValue(e, "name"); name != "" {
		entry.Name = name
	}
}

func (self *XBRL) schemaRoleType(d *xml.Decoder, e xml.StartElement) error {
	roleURI := attrValue(e, "roleURI")
	if roleURI == "" {
		return nil
	}

	var rt struct {
		Definition string `xml:"definition"`
	}
	if err := d.DecodeElement(&rt, &e); err != nil {
		return err //nolint:wrapcheck // wrapped by parseSchema
	}
	if def := strings.TrimSpace(rt.Definition); def != "" {
		self.roleDefs[roleURI] = def
	}
	return nil
}

func (self *XBRL) embeddedLinkbase(d *xml.Decoder, e xml.StartElement,
	embedded *EmbeddedLinkbases,
) {
	content, err := captureElement(d, e)
	if err != nil {
		self.log.Warn("skip embedded linkbase", slog.Any("error", err))
		return
	}

	switch {
	case strings.Contains(content, "presentationLink"):
		embedded.Presentation = content
	case strings.Contains(content, "calculationLink"):
		embedded.Calculation = content
	case strings.Contains(content, "definitionLink"):
		embedded.Definition = content
	case strings.Contains(content, "labelLink"):
		embedded.Label = content
	}
}
