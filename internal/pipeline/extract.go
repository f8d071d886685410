package pipeline

import (
	"github.com/ppiankov/argstruct/internal/model"
	"github.com/ppiankov/argstruct/internal/ssf"
)

// SentenceResult is everything extracted from one sentence
type SentenceResult struct {
	Index            int                        `json:"index" yaml:"index"`
	Provenance       model.Provenance           `json:"provenance" yaml:"provenance"`
	HasOwnID         bool                       `json:"has_own_id" yaml:"has_own_id"`
	NonDomObjects    []string                   `json:"nondom_objects,omitempty" yaml:"nondom_objects,omitempty"`
	ErgativeSubjects []string                   `json:"ergative_subjects,omitempty" yaml:"ergative_subjects,omitempty"`
	Intransitives    []string                   `json:"intransitives,omitempty" yaml:"intransitives,omitempty"`
	Subjects         []model.SubjectObservation `json:"subjects,omitempty" yaml:"subjects,omitempty"`
	LightVerbs       []model.LightVerbPairing   `json:"light_verbs,omitempty" yaml:"light_verbs,omitempty"`
	Malformed        []string                   `json:"malformed,omitempty" yaml:"malformed,omitempty"`
}

// Items returns the classified items of the sentence in category order
func (r *SentenceResult) Items() []model.ClassifiedItem {
	var items []model.ClassifiedItem
	add := func(words []string, c model.Category) {
		for _, w := range words {
			items = append(items, model.ClassifiedItem{Item: w, Category: c, Provenance: r.Provenance})
		}
	}
	add(r.NonDomObjects, model.CategoryNonDomObject)
	add(r.ErgativeSubjects, model.CategoryErgativeSubject)
	add(r.Intransitives, model.CategoryIntransitiveVerb)
	return items
}

func heads(matches []ssf.PhraseMatch) []string {
	var words []string
	for _, m := range matches {
		if head, ok := ssf.ExtractLexicalHead(m.Node); ok {
			words = append(words, head)
		}
	}
	return words
}

// ExtractSentence runs every extractor over one parsed sentence
func ExtractSentence(tree *ssf.Tree) *SentenceResult {
	res := &SentenceResult{
		Index:      tree.Record.Index,
		Provenance: tree.Provenance(),
		HasOwnID:   tree.Record.HasOwnID,
	}
	res.NonDomObjects = heads(ssf.FindNonDomObjects(tree))
	res.ErgativeSubjects = heads(ssf.FindErgativeSubjects(tree))

	verbs, malformed := ssf.FindIntransitives(tree)
	for _, v := range verbs {
		res.Intransitives = append(res.Intransitives, v.Root)
	}
	subjects, subjMalformed := ssf.FindSubjectObservations(tree)
	res.Subjects = subjects
	res.LightVerbs = ssf.FindLightVerbConstructions(tree)

	for _, err := range append(malformed, subjMalformed...) {
		res.Malformed = append(res.Malformed, err.Error())
	}
	return res
}
