package ssf

import (
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/ppiankov/argstruct/internal/model"
)

const (
	// BaseVerbPhraseLabel is the name of the first finite verb group
	BaseVerbPhraseLabel = "VGF"

	mainVerbPOS          = "VM"
	complexPredicateKind = "pof"
)

// EnumerateVerbPhraseLabels returns VGF, VGF2, VGF3, ... up to the first
// suffix the sentence does not mention. Labels past a gap are not searched.
func EnumerateVerbPhraseLabels(t *Tree) []string {
	labels := []string{BaseVerbPhraseLabel}
	for i := 2; ; i++ {
		label := BaseVerbPhraseLabel + strconv.Itoa(i)
		if !t.Mentions(label) {
			return labels
		}
		labels = append(labels, label)
	}
}

// ExcludeComplexPredicateHosts drops the labels targeted by a pof relation.
// The incorporated nominal of a complex predicate is not an argument, so its
// host would otherwise look intransitive.
func ExcludeComplexPredicateHosts(t *Tree, labels []string) []string {
	hosts := collections.NewSet[string]()
	for _, rel := range t.Relations() {
		if rel.Kind == complexPredicateKind {
			hosts.Add(rel.Target)
		}
	}
	kept := make([]string, 0, len(labels))
	for _, label := range labels {
		if !hosts.Contains(label) {
			kept = append(kept, label)
		}
	}
	return kept
}

// ArgumentBinding maps verb-phrase labels to the distinct karaka relation
// prefixes ("k1:", "k2:", ...) bound to them
type ArgumentBinding struct {
	labels []string
	kinds  map[string]*collections.Set[string]
}

// Labels returns the bound labels in enumeration order
func (b *ArgumentBinding) Labels() []string {
	return b.labels
}

// Kinds returns the sorted relation prefixes bound to label
func (b *ArgumentBinding) Kinds(label string) []string {
	set, ok := b.kinds[label]
	if !ok {
		return nil
	}
	return set.ToOrderedSlice()
}

// Has reports whether prefix is bound to label
func (b *ArgumentBinding) Has(label, prefix string) bool {
	set, ok := b.kinds[label]
	return ok && set.Contains(prefix)
}

// Len returns the number of distinct relation kinds bound to label
func (b *ArgumentBinding) Len(label string) int {
	set, ok := b.kinds[label]
	if !ok {
		return 0
	}
	return set.Size()
}

// BindArgumentsToVerbPhrases collects, for every label mentioned in the
// sentence, the karaka relations that point at it. A relation kind occurring
// several times for the same label is kept once.
func BindArgumentsToVerbPhrases(t *Tree, labels []string) *ArgumentBinding {
	b := &ArgumentBinding{
		kinds: make(map[string]*collections.Set[string]),
	}
	for _, label := range labels {
		if !t.Mentions(label) {
			continue
		}
		if _, dup := b.kinds[label]; dup {
			continue
		}
		b.labels = append(b.labels, label)
		b.kinds[label] = collections.NewSet[string]()
	}
	for _, rel := range t.Relations() {
		if !rel.IsKaraka() {
			continue
		}
		if set, ok := b.kinds[rel.Target]; ok {
			set.Add(rel.Prefix())
		}
	}
	return b
}

// ExtractVerbRoot returns the lexical root of the main verb of the chunk
// named label
func ExtractVerbRoot(t *Tree, label string) (string, error) {
	n, ok := t.Lookup(label)
	if !ok {
		return "", model.ErrNoVerbPhrase
	}
	for _, tok := range n.Tokens {
		if !strings.HasPrefix(tok.POS, mainVerbPOS) {
			continue
		}
		if root := tok.FS.AF().Root(); root != "" {
			return root, nil
		}
		return "", model.ErrNoMainVerb
	}
	return "", model.ErrNoMainVerb
}

// VerbMatch is a verb-phrase label with its main verb root
type VerbMatch struct {
	Label string
	Root  string
}

// FindIntransitives returns the verb phrases whose only karaka relation is
// k1. Verb phrases hosting a complex predicate are not considered.
func FindIntransitives(t *Tree) ([]VerbMatch, []error) {
	var (
		verbs     []VerbMatch
		malformed []error
	)
	labels := ExcludeComplexPredicateHosts(t, EnumerateVerbPhraseLabels(t))
	binding := BindArgumentsToVerbPhrases(t, labels)
	subject := relationSubject + ":"
	for _, label := range binding.Labels() {
		if binding.Len(label) != 1 || !binding.Has(label, subject) {
			continue
		}
		root, err := ExtractVerbRoot(t, label)
		if err != nil {
			malformed = append(malformed, &model.MalformedRecordError{
				Provenance: t.Provenance(),
				Field:      label,
				Err:        err,
			})
			continue
		}
		verbs = append(verbs, VerbMatch{Label: label, Root: root})
	}
	return verbs, malformed
}
