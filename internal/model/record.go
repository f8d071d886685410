package model

import "fmt"

// SentenceRecord is the raw SSF text of one sentence with its provenance
type SentenceRecord struct {
	Index      int    `json:"index"`       // Position of the sentence within its file (0-based)
	SourceID   string `json:"source_id"`   // File path without extension
	SentenceID string `json:"sentence_id"` // Numeric id from <Sentence id='..'>, may be empty
	HasOwnID   bool   `json:"has_own_id"`  // False when SentenceID was inherited from the previous record
	RawText    string `json:"-"`
}

// Provenance returns the record's provenance pair
func (r SentenceRecord) Provenance() Provenance {
	return Provenance{SourceID: r.SourceID, SentenceID: r.SentenceID}
}

// Provenance identifies where an extracted item was found
type Provenance struct {
	SourceID   string `json:"source_id" yaml:"source_id"`
	SentenceID string `json:"sentence_id" yaml:"sentence_id"`
}

// String renders the provenance as written in the *_info listings
func (p Provenance) String() string {
	if p.SentenceID == "" {
		return p.SourceID + "\t-"
	}
	return fmt.Sprintf("%s\tid='%s'", p.SourceID, p.SentenceID)
}
