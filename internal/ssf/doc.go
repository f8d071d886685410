// Package ssf reads dependency-annotated sentences in Shakti Standard Format
// and extracts argument structures from them.
//
// A sentence is parsed once into a Tree of chunk nodes. Each node keeps its
// feature structure, its tokens and its parsed drel relation, so that all
// matching, classification and verb-phrase resolution are queries over the
// tree instead of repeated scans of the raw text.
package ssf
