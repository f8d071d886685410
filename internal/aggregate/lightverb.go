package aggregate

import (
	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/ppiankov/argstruct/internal/model"
	"github.com/ppiankov/argstruct/internal/ssf"
)

// LightVerbCounter counts verb and light-verb pairings of intransitive verbs
type LightVerbCounter struct {
	intransitives Vocabulary
	order         []model.LightVerbPairing
	counts        map[model.LightVerbPairing]int
}

// NewLightVerbCounter creates a counter restricted to intransitives
func NewLightVerbCounter(intransitives Vocabulary) *LightVerbCounter {
	return &LightVerbCounter{
		intransitives: intransitives,
		counts:        make(map[model.LightVerbPairing]int),
	}
}

// Observe counts p when its verb is on the intransitive list
func (c *LightVerbCounter) Observe(p model.LightVerbPairing) bool {
	if p.Verb == "" || !c.intransitives.Contains(p.Verb) {
		return false
	}
	if _, seen := c.counts[p]; !seen {
		c.order = append(c.order, p)
	}
	c.counts[p]++
	return true
}

// ObserveAll counts the pairings of one file
func (c *LightVerbCounter) ObserveAll(pairs []model.LightVerbPairing) int {
	var n int
	for _, p := range pairs {
		if c.Observe(p) {
			n++
		}
	}
	return n
}

// Count returns how many times p was observed
func (c *LightVerbCounter) Count(p model.LightVerbPairing) int {
	return c.counts[p]
}

// Regroup lists, per verb, the counts of its light verbs in first-seen order
// together with the come/go and give/take totals
func (c *LightVerbCounter) Regroup() []model.VerbLightVerbs {
	var rows []model.VerbLightVerbs
	index := make(map[string]int)
	for _, p := range c.order {
		i, ok := index[p.Verb]
		if !ok {
			i = len(rows)
			index[p.Verb] = i
			rows = append(rows, model.VerbLightVerbs{Verb: p.Verb})
		}
		n := c.counts[p]
		row := &rows[i]
		row.Counts = append(row.Counts, model.LightVerbCount{LightVerb: p.LightVerb, Count: n})
		switch {
		case collections.SliceContains(ssf.ComeGoLightVerbs, p.LightVerb):
			row.ComeGo += n
		case collections.SliceContains(ssf.GiveTakeLightVerbs, p.LightVerb):
			row.GiveTake += n
		}
	}
	return rows
}
