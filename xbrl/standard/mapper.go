package standard

import (
	"github.com/edgarlab/edgar/xbrl"
)

// ConfidenceThreshold gates label-similarity inference: a candidate
// mapping must score strictly above this to be applied.
const ConfidenceThreshold = 0.8

// Mapper resolves company-specific concepts to the standard
// vocabulary: exact table lookup first, label-similarity inference
// second. Immutable after construction.
type Mapper struct {
	mappings  map[string]string
	concepts  map[string]Concept
	order     []string
	threshold float64
}

type MapperOption func(m *Mapper)

// WithMappings replaces the curated element-id table.
func WithMappings(mappings map[string]string) MapperOption {
	return func(m *Mapper) { m.mappings = mappings }
}

// WithConcepts replaces the standard vocabulary.
func WithConcepts(concepts []Concept) MapperOption {
	return func(m *Mapper) { m.setConcepts(concepts) }
}

// WithThreshold overrides the inference confidence gate.
func WithThreshold(threshold float64) MapperOption {
	return func(m *Mapper) { m.threshold = threshold }
}

func NewMapper(opts ...MapperOption) *Mapper {
	m := &Mapper{
		mappings:  DefaultMappings(),
		threshold: ConfidenceThreshold,
	}
	m.setConcepts(DefaultConcepts())
	for _, fn := range opts {
		fn(m)
	}
	return m
}

func (self *Mapper) setConcepts(concepts []Concept) {
	self.concepts = make(map[string]Concept, len(concepts))
	self.order = self.order[:0]
	for _, c := range concepts {
		self.concepts[c.Key] = c
		self.order = append(self.order, c.Key)
	}
}

// Map resolves an element id and its display label to a standard
// concept. Below-threshold inferences return no mapping rather than a
// guess.
func (self *Mapper) Map(elementID, label string) (Concept, bool) {
	if key, ok := self.mappings[xbrl.NormalizeID(elementID)]; ok {
		if c, ok := self.concepts[key]; ok {
			return c, true
		}
	}

	c, confidence := self.infer(label)
	if confidence > self.threshold {
		return c, true
	}
	return Concept{}, false
}

// infer scores the label against every concept's label and synonyms,
// returning the best-scoring concept.
func (self *Mapper) infer(label string) (Concept, float64) {
	if label == "" {
		return Concept{}, 0
	}

	var best Concept
	var bestScore float64
	for _, key := range self.order {
		c := self.concepts[key]
		score := similarity(label, c.Label)
		for _, syn := range c.Synonyms {
			if s := similarity(label, syn); s > score {
				score = s
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore
}

// StandardizeStatement rewrites each line item's label to its
// standard concept's canonical label, keeping the original under
// OriginalLabel for traceability. Items without a mapping pass
// through unchanged. Dimension rows are never rewritten: their labels
// are member names, not concepts.
func StandardizeStatement(items []xbrl.LineItem, mapper *Mapper) []xbrl.LineItem {
	out := make([]xbrl.LineItem, len(items))
	for i, item := range items {
		out[i] = item
		if item.Dimension {
			continue
		}
		if c, ok := mapper.Map(item.Concept, item.Label); ok {
			out[i].OriginalLabel = item.Label
			out[i].Label = c.Label
		}
	}
	return out
}
