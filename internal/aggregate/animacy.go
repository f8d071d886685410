package aggregate

import "github.com/ppiankov/argstruct/internal/model"

// Vocabulary is a word list the counters are restricted to
type Vocabulary interface {
	Contains(word string) bool
	Entries() []string
}

// AnimacyCounter counts, for every verb of the intransitive list, how many
// of its subjects are on the ergative and on the non-DOM list
type AnimacyCounter struct {
	intransitives Vocabulary
	ergatives     Vocabulary
	nonDoms       Vocabulary
	erg           map[string]int
	nonDom        map[string]int
}

// NewAnimacyCounter creates a counter over the three vocabulary lists
func NewAnimacyCounter(intransitives, ergatives, nonDoms Vocabulary) *AnimacyCounter {
	return &AnimacyCounter{
		intransitives: intransitives,
		ergatives:     ergatives,
		nonDoms:       nonDoms,
		erg:           make(map[string]int),
		nonDom:        make(map[string]int),
	}
}

// Observe counts one subject observation and reports whether it was counted.
// A noun on both lists counts as ergative.
func (c *AnimacyCounter) Observe(obs model.SubjectObservation) bool {
	if obs.Verb == "" || !c.intransitives.Contains(obs.Verb) {
		return false
	}
	switch {
	case c.ergatives.Contains(obs.Noun):
		c.erg[obs.Verb]++
	case c.nonDoms.Contains(obs.Noun):
		c.nonDom[obs.Verb]++
	default:
		return false
	}
	return true
}

// ObserveAll counts every observation of one file
func (c *AnimacyCounter) ObserveAll(observations []model.SubjectObservation) int {
	var n int
	for _, obs := range observations {
		if c.Observe(obs) {
			n++
		}
	}
	return n
}

// Percentages returns one row per intransitive verb in list order,
// including verbs that were never observed
func (c *AnimacyCounter) Percentages() []model.VerbAnimacyCount {
	entries := c.intransitives.Entries()
	rows := make([]model.VerbAnimacyCount, 0, len(entries))
	for _, verb := range entries {
		rows = append(rows, model.VerbAnimacyCount{
			Verb:   verb,
			Erg:    c.erg[verb],
			NonDom: c.nonDom[verb],
		})
	}
	return rows
}
