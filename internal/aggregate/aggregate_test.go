package aggregate

import (
	"testing"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/argstruct/internal/model"
)

type words []string

func (w words) Contains(word string) bool { return collections.SliceContains(w, word) }
func (w words) Entries() []string         { return w }

func prov(source, id string) model.Provenance {
	return model.Provenance{SourceID: source, SentenceID: id}
}

func TestListingOrderAndLastProvenance(t *testing.T) {
	l := NewListing(model.CategoryNonDomObject)
	l.Add("किताब", prov("a", "1"))
	l.Add("फल", prov("a", "2"))
	l.Add("किताब", prov("b", "7"))

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "किताब", items[0].Item)
	assert.Equal(t, prov("b", "7"), items[0].Provenance)
	assert.Equal(t, "फल", items[1].Item)
	assert.Equal(t, model.CategoryNonDomObject, items[1].Category)
}

func TestListingMerge(t *testing.T) {
	first := NewListing(model.CategoryErgativeSubject)
	first.Add("राम", prov("a", "1"))
	second := NewListing(model.CategoryErgativeSubject)
	second.Add("सीता", prov("b", "1"))
	second.Add("राम", prov("b", "3"))

	first.Merge(second)
	assert.Equal(t, 2, first.Len())
	items := first.Items()
	assert.Equal(t, "राम", items[0].Item)
	assert.Equal(t, prov("b", "3"), items[0].Provenance)
}

func TestListingsRouteByCategory(t *testing.T) {
	ls := NewListings()
	ls.AddAll([]model.ClassifiedItem{
		{Item: "किताब", Category: model.CategoryNonDomObject, Provenance: prov("a", "1")},
		{Item: "राम", Category: model.CategoryErgativeSubject, Provenance: prov("a", "1")},
		{Item: "सो", Category: model.CategoryIntransitiveVerb, Provenance: prov("a", "2")},
	})
	for _, c := range model.Categories {
		assert.Equal(t, 1, ls.Get(c).Len(), c)
	}
	assert.Equal(t, 0, ls.Get(model.Category("other")).Len())
}

func TestAnimacyCounter(t *testing.T) {
	c := NewAnimacyCounter(
		words{"सो", "रो", "हँस"},
		words{"लड़का", "बच्चा"},
		words{"पत्ता", "बच्चा"},
	)
	n := c.ObserveAll([]model.SubjectObservation{
		{Verb: "सो", Noun: "लड़का"},
		{Verb: "सो", Noun: "पत्ता"},
		{Verb: "सो", Noun: "पत्ता"},
		{Verb: "रो", Noun: "बच्चा"},
		{Verb: "रो", Noun: "अज्ञात"},
		{Verb: "पढ़", Noun: "लड़का"},
	})
	assert.Equal(t, 4, n)

	rows := c.Percentages()
	require.Len(t, rows, 3)
	assert.Equal(t, model.VerbAnimacyCount{Verb: "सो", Erg: 1, NonDom: 2}, rows[0])
	assert.Equal(t, model.VerbAnimacyCount{Verb: "रो", Erg: 1, NonDom: 0}, rows[1])
	assert.Equal(t, model.VerbAnimacyCount{Verb: "हँस"}, rows[2])

	assert.Equal(t, "0.3333333333333333", rows[0].FormatRatio())
	assert.Equal(t, "1", rows[1].FormatRatio())
	assert.Equal(t, "NA", rows[2].FormatRatio())
}

func TestFormatRatioWholeNumbers(t *testing.T) {
	assert.Equal(t, "0.0", model.VerbAnimacyCount{NonDom: 3}.FormatRatio())
	assert.Equal(t, "0.5", model.VerbAnimacyCount{Erg: 2, NonDom: 2}.FormatRatio())
}

func TestLightVerbCounterRegroup(t *testing.T) {
	c := NewLightVerbCounter(words{"बैठ", "उठ", "गिर"})
	c.ObserveAll([]model.LightVerbPairing{
		{Verb: "बैठ", LightVerb: "जा"},
		{Verb: "उठ", LightVerb: "आ"},
		{Verb: "बैठ", LightVerb: "जा"},
		{Verb: "बैठ", LightVerb: "ले"},
		{Verb: "बैठ", LightVerb: "पड़"},
		{Verb: "पढ़", LightVerb: "ले"},
	})
	assert.Equal(t, 2, c.Count(model.LightVerbPairing{Verb: "बैठ", LightVerb: "जा"}))
	assert.Equal(t, 0, c.Count(model.LightVerbPairing{Verb: "पढ़", LightVerb: "ले"}))

	rows := c.Regroup()
	require.Len(t, rows, 2)

	assert.Equal(t, "बैठ", rows[0].Verb)
	assert.Equal(t, []model.LightVerbCount{
		{LightVerb: "जा", Count: 2},
		{LightVerb: "ले", Count: 1},
		{LightVerb: "पड़", Count: 1},
	}, rows[0].Counts)
	assert.Equal(t, 2, rows[0].ComeGo)
	assert.Equal(t, 1, rows[0].GiveTake)
	assert.Equal(t, 3, rows[0].Combined())

	assert.Equal(t, "उठ", rows[1].Verb)
	assert.Equal(t, 1, rows[1].ComeGo)
	assert.Equal(t, 0, rows[1].GiveTake)
}
