package xbrl

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// attrValue returns an attribute by its local name, ignoring the
// namespace prefix. EDGAR filings mix xlink: prefixes freely.
func attrValue(e xml.StartElement, local string) string {
	for _, a := range e.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// hrefElementID resolves an XLink locator href to the element id it
// points at: "us-gaap-2023.xsd#us-gaap_Assets" -> "us-gaap_Assets".
func hrefElementID(href string) string {
	if n := strings.IndexByte(href, '#'); n >= 0 {
		return href[n+1:]
	}
	return href
}

// captureElement re-serializes the subtree rooted at start, so an
// embedded linkbase can be handed to the standalone linkbase parsers
// as its own document.
func captureElement(d *xml.Decoder, start xml.StartElement) (string, error) {
	var b strings.Builder
	enc := xml.NewEncoder(&b)
	if err := enc.EncodeToken(start); err != nil {
		return "", fmt.Errorf("encode start token: %w", err)
	}

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
		if err := enc.EncodeToken(tok); err != nil {
			return "", fmt.Errorf("encode token: %w", err)
		}
	}

	if err := enc.Flush(); err != nil {
		return "", fmt.Errorf("flush captured element: %w", err)
	}
	return b.String(), nil
}

// walkElements runs fn for every start element of doc. fn may consume
// the element's subtree via the decoder; skipping is fine too.
func walkElements(doc string, fn func(d *xml.Decoder, e xml.StartElement) error) error {
	d := xml.NewDecoder(strings.NewReader(doc))
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("walk tokens: %w", err)
		}
		if e, ok := tok.(xml.StartElement); ok {
			if err := fn(d, e); err != nil {
				return err
			}
		}
	}
}

// innerText extracts character data from a raw XML fragment, used as
// a fallback when a fact wraps its value in one nested element.
func innerText(fragment string) string {
	var text strings.Builder
	d := xml.NewDecoder(strings.NewReader(fragment))
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			text.Write(cd)
		}
	}
	return strings.TrimSpace(text.String())
}
