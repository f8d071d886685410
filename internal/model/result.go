package model

import (
	"strconv"
	"strings"
)

// Category classifies an extracted lexical item
type Category string

const (
	CategoryNonDomObject     Category = "nondom"  // Case-unmarked k2 object (inanimacy evidence)
	CategoryErgativeSubject  Category = "erg"     // ने-marked subject (animacy evidence)
	CategoryIntransitiveVerb Category = "intrans" // Verb with k1 as its only k-relation
)

// Categories lists the categories in output order
var Categories = []Category{CategoryNonDomObject, CategoryErgativeSubject, CategoryIntransitiveVerb}

// ClassifiedItem is a lexical item with the place it was found
type ClassifiedItem struct {
	Item       string     `json:"item" yaml:"item"`
	Category   Category   `json:"category" yaml:"category"`
	Provenance Provenance `json:"provenance" yaml:"provenance"`
}

// SubjectObservation is one k1 subject bound to the root of its governing verb
type SubjectObservation struct {
	Verb string `json:"verb" yaml:"verb"`
	Noun string `json:"noun" yaml:"noun"`
}

// VerbAnimacyCount counts the subjects of one intransitive verb
type VerbAnimacyCount struct {
	Verb   string `json:"verb"`
	Erg    int    `json:"erg"`
	NonDom int    `json:"nondom"`
}

// Total returns the number of classified subjects
func (c VerbAnimacyCount) Total() int {
	return c.Erg + c.NonDom
}

// Ratio returns erg/(erg+nondom); ok is false when both counters are zero
func (c VerbAnimacyCount) Ratio() (ratio float64, ok bool) {
	if c.Total() == 0 {
		return 0, false
	}
	return float64(c.Erg) / float64(c.Total()), true
}

// FormatRatio renders the ratio as written to the percentages file:
// "NA" when there is no data, "1" when only ergative subjects were seen
func (c VerbAnimacyCount) FormatRatio() string {
	if c.NonDom == 0 {
		if c.Erg == 0 {
			return "NA"
		}
		return "1"
	}
	ratio, _ := c.Ratio()
	s := strconv.FormatFloat(ratio, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// LightVerbPairing is a bare verb root followed by a light verb
type LightVerbPairing struct {
	Verb      string `json:"verb" yaml:"verb"`
	LightVerb string `json:"light_verb" yaml:"light_verb"`
}

// LightVerbCount is the number of times a light verb follows a verb
type LightVerbCount struct {
	LightVerb string `json:"light_verb"`
	Count     int    `json:"count"`
}

// VerbLightVerbs groups the light-verb counts of one verb
type VerbLightVerbs struct {
	Verb     string           `json:"verb"`
	Counts   []LightVerbCount `json:"counts"`
	ComeGo   int              `json:"come_go"`   // आ + जा
	GiveTake int              `json:"give_take"` // दे + ले
}

// Combined returns ComeGo + GiveTake
func (v VerbLightVerbs) Combined() int {
	return v.ComeGo + v.GiveTake
}
