package ssf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tree := parseText(transitiveSentence("active"))
	require.Len(t, tree.Nodes, 3)

	np := tree.Nodes[0]
	assert.Equal(t, "NP", np.Tag)
	assert.Equal(t, "NP", np.Name())
	assert.Equal(t, "1", np.Addr)
	require.True(t, np.HasRelation)
	assert.Equal(t, Relation{Kind: "k1", Target: "VGF"}, np.Relation)
	require.Len(t, np.Tokens, 2)
	assert.Equal(t, "राम", np.Tokens[0].Form)
	assert.Equal(t, "NNP", np.Tokens[0].POS)
	assert.Equal(t, "PSP", np.Tokens[1].POS)

	vgf, ok := tree.Lookup("VGF")
	require.True(t, ok)
	assert.Same(t, vgf, np.Governor)
	assert.Same(t, vgf, tree.Nodes[1].Governor)
	assert.False(t, vgf.HasRelation)
	assert.Nil(t, vgf.Governor)

	assert.Len(t, tree.Relations(), 2)
}

func TestParseSpan(t *testing.T) {
	tree := parseText(transitiveSentence("active"))
	span := tree.Span(tree.Nodes[1])
	assert.True(t, strings.HasPrefix(span, "2\t((\tNP"))
	assert.True(t, strings.HasSuffix(span, "\t))"))
	assert.Contains(t, span, "किताब")
	assert.NotContains(t, span, "राम")
}

func TestParseNested(t *testing.T) {
	text := sentence("1",
		chunk("1", "NP", "<fs drel='k1:VGF' name='NP'>"),
		chunk("1.1", "JJP", "<fs name='JJP'>"),
		token("1.1.1", "बड़ा", "JJ", "<fs af='बड़ा,adj,m,sg,,d,,' name='बड़ा'>"),
		closing,
		token("1.2", "घर", "NN", "<fs af='घर,n,m,sg,3,d,0,0' name='घर'>"),
		closing,
	)
	tree := parseText(text)
	require.Len(t, tree.Nodes, 2)
	np, jjp := tree.Nodes[0], tree.Nodes[1]
	assert.Same(t, np, jjp.Parent)
	assert.Len(t, np.Children, 1)
	assert.Len(t, np.Tokens, 1)
	assert.Len(t, np.AllTokens(), 2)
}

func TestParseUnterminatedChunk(t *testing.T) {
	text := sentence("1",
		chunk("1", "NP", "<fs drel='k1:VGF' name='NP'>"),
		token("1.1", "घर", "NN", "<fs af='घर,n,m,sg,3,d,0,0' name='घर'>"),
	)
	tree := parseText(text)
	require.Len(t, tree.Nodes, 1)
	assert.Contains(t, tree.Span(tree.Nodes[0]), "घर")
}

func TestParseTokenOutsideChunk(t *testing.T) {
	text := sentence("1",
		token("0.1", "तो", "CC", "<fs af='तो,avy,,,,,,' drel='ccof:VGF' name='तो'>"),
		chunk("1", "VGF", "<fs name='VGF'>"),
		token("1.1", "सोया", "VM", "<fs af='सो,v,m,sg,any,,या,या' name='सोया'>"),
		closing,
	)
	tree := parseText(text)
	require.Len(t, tree.Nodes, 1)
	require.Len(t, tree.Nodes[0].Tokens, 1)
	assert.Equal(t, "सोया", tree.Nodes[0].Tokens[0].Form)
	assert.Equal(t, []Relation{{Kind: "ccof", Target: "VGF"}}, tree.Relations())
}

func TestMentions(t *testing.T) {
	tree := parseText(combinedSentence("1"))
	assert.True(t, tree.Mentions("VGF"))
	assert.True(t, tree.Mentions("VGF2"))
	assert.True(t, tree.Mentions("NP3"))
	assert.False(t, tree.Mentions("VGF3"))
}
