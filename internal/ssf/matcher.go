package ssf

import (
	"strings"

	"github.com/ppiankov/argstruct/internal/model"
)

const (
	nounPhraseTag   = "NP"
	postpositionPOS = "PSP"
	passiveVoice    = "passive"

	relationSubject = "k1"
	relationObject  = "k2"
)

// headTagPrefixes are the POS tags that can head an argument:
// common and proper nouns (NN, NNC, NNP, NNPC) and pronouns
var headTagPrefixes = []string{"NN", "PRP", "WC"}

// MatchKind tells which sort of chunk a PhraseMatch located
type MatchKind int

const (
	NounPhrase MatchKind = iota
	VerbPhraseGroup
)

func (k MatchKind) String() string {
	if k == VerbPhraseGroup {
		return "VerbPhraseGroup"
	}
	return "NounPhrase"
}

// PhraseMatch is a located chunk together with its relation to a verb phrase
type PhraseMatch struct {
	Kind           MatchKind
	Node           *Node
	RawSpan        string
	Relation       Relation
	GoverningLabel string
}

func (t *Tree) match(kind MatchKind, n *Node) PhraseMatch {
	m := PhraseMatch{
		Kind:    kind,
		Node:    n,
		RawSpan: t.Span(n),
	}
	if n.HasRelation {
		m.Relation = n.Relation
		m.GoverningLabel = n.Relation.Target
	}
	return m
}

func isNounPhrase(n *Node) bool {
	return strings.HasPrefix(n.Tag, nounPhraseTag)
}

// hasDirectCase looks for an unmarked-case analysis in the chunk or its tokens
func hasDirectCase(n *Node) bool {
	if n.FS.AF().IsDirectCase() {
		return true
	}
	for _, tok := range n.AllTokens() {
		if tok.FS.AF().IsDirectCase() {
			return true
		}
	}
	return false
}

func hasPostposition(n *Node) bool {
	for _, tok := range n.AllTokens() {
		if tok.POS == postpositionPOS {
			return true
		}
	}
	return false
}

func hasErgativeMarker(n *Node) bool {
	if n.FS.AF().IsErgativeMarker() {
		return true
	}
	for _, tok := range n.AllTokens() {
		if tok.FS.AF().IsErgativeMarker() {
			return true
		}
	}
	return false
}

// IsPassive reports whether the chunk named label carries passive voice.
// A label without a chunk or without voice information is not passive.
func (t *Tree) IsPassive(label string) bool {
	n, ok := t.byName[label]
	if !ok {
		return false
	}
	return n.FS.Voice() == passiveVoice
}

// FindNonDomObjects returns k2 noun phrases in the direct case without a
// postposition. Objects of passive verbs are skipped: a promoted object is
// unmarked regardless of animacy.
func FindNonDomObjects(t *Tree) []PhraseMatch {
	var matches []PhraseMatch
	for _, n := range t.Nodes {
		if !isNounPhrase(n) || !n.HasRelation || n.Relation.Kind != relationObject {
			continue
		}
		if !hasDirectCase(n) || hasPostposition(n) {
			continue
		}
		if t.IsPassive(n.Relation.Target) {
			continue
		}
		matches = append(matches, t.match(NounPhrase, n))
	}
	return matches
}

// FindErgativeSubjects returns noun phrases marked with the ergative ने
func FindErgativeSubjects(t *Tree) []PhraseMatch {
	var matches []PhraseMatch
	for _, n := range t.Nodes {
		if isNounPhrase(n) && hasErgativeMarker(n) {
			matches = append(matches, t.match(NounPhrase, n))
		}
	}
	return matches
}

// FindSubjects returns the k1 noun phrases governed by one of labels
func FindSubjects(t *Tree, labels []string) []PhraseMatch {
	var matches []PhraseMatch
	for _, n := range t.Nodes {
		if !isNounPhrase(n) || !n.HasRelation || n.Relation.Kind != relationSubject {
			continue
		}
		for _, label := range labels {
			if n.Relation.Target == label {
				matches = append(matches, t.match(NounPhrase, n))
				break
			}
		}
	}
	return matches
}

// ExtractLexicalHead returns the name of the first noun or pronoun in a chunk
func ExtractLexicalHead(n *Node) (string, bool) {
	for _, tok := range n.AllTokens() {
		if !isHeadTag(tok.POS) {
			continue
		}
		if name := tok.FS.Name(); name != "" {
			return name, true
		}
		if tok.Form != "" {
			return tok.Form, true
		}
	}
	return "", false
}

func isHeadTag(pos string) bool {
	for _, prefix := range headTagPrefixes {
		if strings.HasPrefix(pos, prefix) {
			return true
		}
	}
	return false
}

// FindSubjectObservations pairs every k1 subject head with the root of its
// governing verb phrase. Subjects of verb phrases without a resolvable root
// are reported as malformed.
func FindSubjectObservations(t *Tree) ([]model.SubjectObservation, []error) {
	var (
		observations []model.SubjectObservation
		malformed    []error
	)
	labels := EnumerateVerbPhraseLabels(t)
	for _, m := range FindSubjects(t, labels) {
		noun, ok := ExtractLexicalHead(m.Node)
		if !ok {
			continue
		}
		verb, err := ExtractVerbRoot(t, m.GoverningLabel)
		if err != nil {
			malformed = append(malformed, &model.MalformedRecordError{
				Provenance: t.Provenance(),
				Field:      m.GoverningLabel,
				Err:        err,
			})
			continue
		}
		observations = append(observations, model.SubjectObservation{Verb: verb, Noun: noun})
	}
	return observations, malformed
}
