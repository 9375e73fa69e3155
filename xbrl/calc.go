package xbrl

import (
	"log/slog"
	"sort"
	"strings"
)

// applyCalculationWeights flips the sign of every fact whose element
// is a calculation-tree child with negative weight, so e.g. "increase
// in inventory" correctly reduces cash flow. Parse invokes it exactly
// once, after all trees and facts are loaded; running it twice would
// double-negate. Corrected facts replace the originals in the store;
// Fact values themselves stay immutable.
//
// Failures here are logged and skipped, never propagated: one
// misbehaving element must not block the rest of the dataset.
func (self *XBRL) applyCalculationWeights() {
	roles := make([]string, 0, len(self.calculation))
	for role := range self.calculation {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	weights := make(map[string]float64)
	for _, role := range roles {
		// Last writer wins when an element appears under several
		// roles; sorted role order keeps the winner stable.
		for id, node := range self.calculation[role].Nodes {
			if node.Parent != "" {
				weights[NormalizeID(id)] = node.Weight
			}
		}
	}

	for key, fact := range self.facts {
		w, ok := weights[fact.ElementID]
		if !ok || w >= 0 || fact.NumericValue == nil {
			continue
		}
		corrected, ok := negatedFact(fact)
		if !ok {
			self.log.Warn("skip sign correction",
				slog.String("element", fact.ElementID),
				slog.String("context", fact.ContextID))
			continue
		}
		self.facts[key] = corrected
		self.replaceByElement(fact, corrected)
	}
}

func (self *XBRL) replaceByElement(old, corrected *Fact) {
	byElem := self.factsByElement[old.ElementID]
	for i, f := range byElem {
		if f == old {
			byElem[i] = corrected
			return
		}
	}
}

// negatedFact returns a copy of fact with both representations
// flipped: the numeric value negated and the raw string negated
// textually, so the two stay consistent.
func negatedFact(fact *Fact) (*Fact, bool) {
	if fact.NumericValue == nil {
		return nil, false
	}
	v := -*fact.NumericValue

	corrected := *fact
	corrected.NumericValue = &v
	corrected.Value = negateText(fact.Value)
	return &corrected, true
}

func negateText(s string) string {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "-") {
		return strings.TrimPrefix(trimmed, "-")
	}
	return "-" + trimmed
}
