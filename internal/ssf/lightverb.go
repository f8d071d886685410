package ssf

import (
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"

	"github.com/ppiankov/argstruct/internal/model"
)

// LightVerbs is the closed set of light-verb roots:
// come, sit, walk, leave behind, put, give, go, take, hit, fall
var LightVerbs = []string{"आ", "बैठ", "चल", "छोड़", "डाल", "दे", "जा", "ले", "मार", "पड़"}

var (
	ComeGoLightVerbs   = []string{"आ", "जा"}
	GiveTakeLightVerbs = []string{"दे", "ले"}
)

// IsLightVerb reports whether root belongs to LightVerbs
func IsLightVerb(root string) bool {
	return collections.SliceContains(LightVerbs, root)
}

func isLightVerbGroup(n *Node) bool {
	return n.Tag == "VGF" || n.Tag == "VGNF"
}

// FindLightVerbConstructions returns bare main-verb roots immediately followed by
// a light verb inside a finite or non-finite verb group. A root paired with
// itself is not a construction and is skipped.
func FindLightVerbConstructions(t *Tree) []model.LightVerbPairing {
	var pairs []model.LightVerbPairing
	for _, n := range t.Nodes {
		if !isLightVerbGroup(n) {
			continue
		}
		for i := 0; i+1 < len(n.Tokens); i++ {
			tok := n.Tokens[i]
			af := tok.FS.AF()
			if !strings.HasPrefix(tok.POS, mainVerbPOS) || !af.IsBareVerbRoot() {
				continue
			}
			light := n.Tokens[i+1].FS.AF().Root()
			if !IsLightVerb(light) {
				continue
			}
			verb := af.Root()
			if verb == "" || verb == light {
				continue
			}
			pairs = append(pairs, model.LightVerbPairing{Verb: verb, LightVerb: light})
		}
	}
	return pairs
}
