package xbrl

import (
	"encoding/xml"
	"strings"
)

const labelLang = "en-US"

type labelResource struct {
	role string
	text string
}

// parseLabels joins the label linkbase's two-hop path: locator
// (href -> element id) -> labelArc (from -> to) -> label resource
// (text by role and language). Only en-US labels are kept. Elements
// not yet in the catalog get placeholder entries.
func (self *XBRL) parseLabels(fname, content string) error {
	locators := make(map[string]string)        // xlink:label -> element id
	arcs := make(map[string][]string)          // locator label -> label resource ids
	labels := make(map[string][]labelResource) // resource id -> labels

	err := walkElements(content, func(d *xml.Decoder, e xml.StartElement) error {
		switch e.Name.Local {
		case "loc":
			if label := attrValue(e, "label"); label != "" {
				locators[label] = hrefElementID(attrValue(e, "href"))
			}
		case "labelArc":
			from, to := attrValue(e, "from"), attrValue(e, "to")
			if from != "" && to != "" {
				arcs[from] = append(arcs[from], to)
			}
		case "label":
			self.labelResource(d, e, labels)
		}
		return nil
	})
	if err != nil {
		return newParseError(fname, err)
	}

	for locLabel, elementID := range locators {
		for _, resourceID := range arcs[locLabel] {
			for _, res := range labels[resourceID] {
				entry := self.catalog.placeholder(elementID)
				entry.Labels[res.role] = res.text
			}
		}
	}
	return nil
}

func (self *XBRL) labelResource(d *xml.Decoder, e xml.StartElement,
	labels map[string][]labelResource,
) {
	id := attrValue(e, "label")
	role := attrValue(e, "role")
	if lang := attrValue(e, "lang"); lang != "" && lang != labelLang {
		_ = d.Skip()
		return
	}

	var text string
	if err := d.DecodeElement(&text, &e); err != nil {
		return
	}
	text = strings.TrimSpace(text)
	if id == "" || text == "" {
		return
	}
	if role == "" {
		role = StdLabel
	}
	labels[id] = append(labels[id], labelResource{role: role, text: text})
}
