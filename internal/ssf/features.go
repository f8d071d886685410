package ssf

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

const (
	bareVerbRootSuffix = ",v,any,any,any,,0,0"
	directCaseMarker   = ",d,"
	ergativeAFPrefix   = "ने,psp"
)

// Features is the attribute set of one SSF feature structure (<fs ...>)
type Features map[string]string

// ParseFeatures reads the first <fs> element of s. Ambiguous analyses
// (<fs ..>|<fs ..>) keep only the first alternative.
func ParseFeatures(s string) Features {
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return nil
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "fs" {
				continue
			}
			fs := make(Features)
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				fs[string(key)] = string(val)
			}
			return fs
		}
	}
}

// Name returns the name attribute
func (f Features) Name() string {
	return f["name"]
}

// Voice returns the voicetype attribute
func (f Features) Voice() string {
	return f["voicetype"]
}

// AF returns the morphological analysis
func (f Features) AF() AF {
	return AF(f["af"])
}

// Relation returns the parsed drel attribute
func (f Features) Relation() (Relation, bool) {
	return ParseRelation(f["drel"])
}

// AF is the comma separated morphological analysis:
// root,category,gender,number,person,case,vibhakti,suffix
type AF string

// Root returns the lexical root (text up to the first comma)
func (a AF) Root() string {
	root, _, _ := strings.Cut(string(a), ",")
	return root
}

// IsBareVerbRoot reports an uninflected verb root
func (a AF) IsBareVerbRoot() bool {
	return strings.HasSuffix(string(a), bareVerbRootSuffix)
}

// IsDirectCase reports an analysis carrying the direct (unmarked) case
func (a AF) IsDirectCase() bool {
	return strings.Contains(string(a), directCaseMarker)
}

// IsErgativeMarker reports the ergative postposition ने
func (a AF) IsErgativeMarker() bool {
	return strings.HasPrefix(string(a), ergativeAFPrefix)
}

// Relation is a parsed drel value such as "k1:VGF"
type Relation struct {
	Kind   string `json:"kind" yaml:"kind"`
	Target string `json:"target" yaml:"target"`
}

// ParseRelation splits a drel value into its kind and target label
func ParseRelation(s string) (Relation, bool) {
	kind, target, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || kind == "" || target == "" {
		return Relation{}, false
	}
	return Relation{Kind: kind, Target: target}, true
}

// Prefix returns the relation kind with its separator, e.g. "k1:"
func (r Relation) Prefix() string {
	return r.Kind + ":"
}

// String returns the drel form
func (r Relation) String() string {
	return r.Kind + ":" + r.Target
}

// IsKaraka reports a karaka relation (k1, k2, k7t, ...)
func (r Relation) IsKaraka() bool {
	if len(r.Kind) < 2 || r.Kind[0] != 'k' {
		return false
	}
	for _, c := range r.Kind[1:] {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return false
		}
	}
	return true
}
