package cmd

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/edgarlab/edgar/xbrl"
)

const indentWidth = 2

func newRenderer(w io.Writer) *renderer {
	return &renderer{
		w: w,
		p: message.NewPrinter(language.English),
	}
}

// renderer writes line items as an indented text table, one column per
// period, with grouped thousands in numbers.
type renderer struct {
	w io.Writer
	p *message.Printer
}

func (self *renderer) RenderStatement(items []xbrl.LineItem,
	periodLabels map[string]string, periodKeys []string,
) {
	self.header("", periodLabels, periodKeys)
	for i := range items {
		item := &items[i]
		self.row(self.itemLabel(item), item.Values, periodKeys)
	}
}

func (self *renderer) itemLabel(item *xbrl.LineItem) string {
	label := item.Label
	if item.Abstract {
		label += ":"
	}
	return indent(label, item.Level)
}

func indent(s string, level int) string {
	return strings.Repeat(" ", level*indentWidth) + s
}

func (self *renderer) header(title string, periodLabels map[string]string,
	periodKeys []string,
) {
	cols := make([]string, len(periodKeys))
	for i, key := range periodKeys {
		if label, ok := periodLabels[key]; ok {
			cols[i] = label
		} else {
			cols[i] = key
		}
	}
	self.p.Fprintf(self.w, "%-60s", title)
	for _, col := range cols {
		self.p.Fprintf(self.w, " %24s", col)
	}
	fmt.Fprintln(self.w)
	fmt.Fprintln(self.w, strings.Repeat("-", 60+25*len(cols)))
}

func (self *renderer) row(label string, values map[string]float64,
	periodKeys []string,
) {
	self.p.Fprintf(self.w, "%-60s", truncate(label, 60))
	for _, key := range periodKeys {
		if v, ok := values[key]; ok {
			self.p.Fprintf(self.w, " %24.0f", v)
		} else {
			self.p.Fprintf(self.w, " %24s", "")
		}
	}
	fmt.Fprintln(self.w)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
