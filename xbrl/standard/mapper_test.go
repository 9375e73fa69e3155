package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgarlab/edgar/xbrl"
)

func TestMapper_exactMapping(t *testing.T) {
	m := NewMapper()

	c, ok := m.Map("us-gaap_NetIncomeLoss", "Net income attributable to Acme")
	require.True(t, ok)
	assert.Equal(t, "net_income", c.Key)
	assert.Equal(t, "Net Income", c.Label)

	c, ok = m.Map("us-gaap:Revenues", "")
	require.True(t, ok, "the table is insensitive to the separator form")
	assert.Equal(t, "revenue", c.Key)
}

func TestMapper_inference(t *testing.T) {
	m := NewMapper()

	c, ok := m.Map("acme_TotalNetSales", "Net sales")
	require.True(t, ok, "a synonym match above the threshold applies")
	assert.Equal(t, "revenue", c.Key)

	_, ok = m.Map("acme_WeirdItem", "Deferred contract acquisition costs")
	assert.False(t, ok, "a below-threshold guess is no mapping at all")

	_, ok = m.Map("acme_NoLabel", "")
	assert.False(t, ok)
}

func TestMapper_thresholdIsStrict(t *testing.T) {
	concepts := []Concept{{Key: "k", Label: "alpha beta gamma"}}

	// "alpha beta" vs "alpha beta gamma" scores exactly 0.8.
	m := NewMapper(WithConcepts(concepts), WithMappings(nil),
		WithThreshold(0.8))
	_, ok := m.Map("acme_X", "alpha beta")
	assert.False(t, ok, "a score equal to the threshold does not apply")

	m = NewMapper(WithConcepts(concepts), WithMappings(nil),
		WithThreshold(0.79))
	c, ok := m.Map("acme_X", "alpha beta")
	require.True(t, ok)
	assert.Equal(t, "k", c.Key)
}

func TestMapper_customMappings(t *testing.T) {
	m := NewMapper(WithMappings(map[string]string{
		"acme_HouseConcept": "total_assets",
	}))

	c, ok := m.Map("acme_HouseConcept", "whatever")
	require.True(t, ok)
	assert.Equal(t, "total_assets", c.Key)

	// A table entry pointing at an unknown concept key falls back to
	// inference.
	m = NewMapper(WithMappings(map[string]string{"acme_X": "no_such_key"}))
	_, ok = m.Map("acme_X", "zzz qqq")
	assert.False(t, ok)
}

func TestStandardizeStatement(t *testing.T) {
	items := []xbrl.LineItem{
		{
			Concept:       "us-gaap_Revenues",
			Label:         "Net revenues",
			OriginalLabel: "Net revenues",
			Values:        map[string]float64{"duration_2023-01-01_2023-12-31": 500000},
		},
		{
			Concept:       "us-gaap_Revenues",
			Label:         "Widgets",
			OriginalLabel: "Widgets",
			Dimension:     true,
		},
		{
			Concept:       "acme_ObscureItem",
			Label:         "Amortization of acquired intangibles",
			OriginalLabel: "Amortization of acquired intangibles",
		},
	}

	out := StandardizeStatement(items, NewMapper())
	require.Len(t, out, 3)

	assert.Equal(t, "Revenue", out[0].Label)
	assert.Equal(t, "Net revenues", out[0].OriginalLabel)
	assert.Equal(t, items[0].Values, out[0].Values)

	assert.Equal(t, "Widgets", out[1].Label,
		"dimension rows keep their member labels")

	assert.Equal(t, "Amortization of acquired intangibles", out[2].Label,
		"unmapped items pass through")

	assert.Equal(t, "Net revenues", items[0].Label,
		"the input slice stays untouched")
}

func TestDefaultMappings_keysNormalized(t *testing.T) {
	for id, key := range DefaultMappings() {
		assert.Equal(t, xbrl.NormalizeID(id), id,
			"mapping key %q is not in underscore form", id)
		_, ok := NewMapper().concepts[key]
		assert.True(t, ok, "mapping %q points at unknown concept %q", id, key)
	}
}
