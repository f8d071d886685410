package ssf

import (
	"strings"

	"github.com/ppiankov/argstruct/internal/model"
)

const (
	chunkOpen  = "(("
	chunkClose = "))"
)

// Token is one word line inside a chunk
type Token struct {
	Addr string   // Position address, e.g. "1.2"
	Form string   // Surface form
	POS  string   // Part-of-speech tag
	FS   Features // Feature structure
}

// Node is a bracketed chunk (NP, VGF, ...)
type Node struct {
	ID          int
	Addr        string
	Tag         string
	FS          Features
	Relation    Relation
	HasRelation bool
	Parent      *Node
	Governor    *Node // Chunk named by Relation.Target, nil when absent
	Children    []*Node
	Tokens      []Token

	first, last int // line span within the sentence
}

// Name returns the chunk's name attribute (the label other chunks refer to)
func (n *Node) Name() string {
	return n.FS.Name()
}

// AllTokens returns the tokens of the node and of its nested chunks
func (n *Node) AllTokens() []Token {
	if len(n.Children) == 0 {
		return n.Tokens
	}
	tokens := append([]Token(nil), n.Tokens...)
	for _, c := range n.Children {
		tokens = append(tokens, c.AllTokens()...)
	}
	return tokens
}

// Tree is the parsed form of one sentence record
type Tree struct {
	Record model.SentenceRecord
	Nodes  []*Node // pre-order

	lines     []string
	byName    map[string]*Node
	relations []Relation
}

// Parse builds the chunk tree of a sentence record in a single pass
func Parse(rec model.SentenceRecord) *Tree {
	t := &Tree{
		Record: rec,
		lines:  strings.Split(rec.RawText, "\n"),
		byName: make(map[string]*Node),
	}

	var stack []*Node
	for i, raw := range t.lines {
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "<") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		switch strings.TrimSpace(fields[1]) {
		case chunkOpen:
			n := &Node{
				ID:    len(t.Nodes),
				Addr:  strings.TrimSpace(fields[0]),
				first: i,
				last:  i,
			}
			if len(fields) > 2 {
				n.Tag = strings.TrimSpace(fields[2])
			}
			if len(fields) > 3 {
				n.FS = ParseFeatures(fields[3])
			}
			if rel, ok := n.FS.Relation(); ok {
				n.Relation = rel
				n.HasRelation = true
				t.relations = append(t.relations, rel)
			}
			if len(stack) > 0 {
				n.Parent = stack[len(stack)-1]
				n.Parent.Children = append(n.Parent.Children, n)
			}
			if name := n.Name(); name != "" {
				if _, seen := t.byName[name]; !seen {
					t.byName[name] = n
				}
			}
			t.Nodes = append(t.Nodes, n)
			stack = append(stack, n)

		case chunkClose:
			if len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].last = i
			stack = stack[:len(stack)-1]

		default:
			tok := Token{
				Addr: strings.TrimSpace(fields[0]),
				Form: strings.TrimSpace(fields[1]),
			}
			if len(fields) > 2 {
				tok.POS = strings.TrimSpace(fields[2])
			}
			if len(fields) > 3 {
				tok.FS = ParseFeatures(fields[3])
			}
			if rel, ok := tok.FS.Relation(); ok {
				t.relations = append(t.relations, rel)
			}
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Tokens = append(top.Tokens, tok)
				top.last = i
			}
		}
	}

	// unterminated chunks run to the end of the record
	for _, n := range stack {
		n.last = len(t.lines) - 1
	}

	for _, n := range t.Nodes {
		if n.HasRelation {
			n.Governor = t.byName[n.Relation.Target]
		}
	}
	return t
}

// Lookup returns the first chunk named label
func (t *Tree) Lookup(label string) (*Node, bool) {
	n, ok := t.byName[label]
	return n, ok
}

// Relations returns every drel found in the sentence in document order
func (t *Tree) Relations() []Relation {
	return t.relations
}

// Mentions reports whether label names a chunk or is the target of a relation
func (t *Tree) Mentions(label string) bool {
	if _, ok := t.byName[label]; ok {
		return true
	}
	for _, rel := range t.relations {
		if rel.Target == label {
			return true
		}
	}
	return false
}

// Span returns the raw lines of a chunk, brackets included
func (t *Tree) Span(n *Node) string {
	return strings.Join(t.lines[n.first:n.last+1], "\n")
}

// Provenance returns the provenance of the parsed record
func (t *Tree) Provenance() model.Provenance {
	return t.Record.Provenance()
}
