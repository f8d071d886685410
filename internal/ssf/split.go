package ssf

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ppiankov/argstruct/internal/model"
)

// SentenceTerminator closes every sentence record in a corpus file
const SentenceTerminator = "</Sentence>"

var sentenceIDPattern = regexp.MustCompile(`id='(\d+)'`)

// SourceID derives the provenance source id from a file path
func SourceID(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// SplitRecords cuts corpus text into sentence records. Content after the last
// terminator is not a sentence and is dropped.
//
// A record without its own id inherits the id of the closest preceding record
// that had one and is flagged with HasOwnID=false. Records are kept per
// position, so two sentences with identical text stay two records.
func SplitRecords(text, path string) []model.SentenceRecord {
	sourceID := SourceID(path)
	fragments := strings.Split(text, SentenceTerminator)
	fragments = fragments[:len(fragments)-1]

	records := make([]model.SentenceRecord, 0, len(fragments))
	var cursor string
	for i, fragment := range fragments {
		rec := model.SentenceRecord{
			Index:    i,
			SourceID: sourceID,
			RawText:  fragment,
		}
		if m := sentenceIDPattern.FindStringSubmatch(fragment); m != nil {
			cursor = m[1]
			rec.HasOwnID = true
		}
		rec.SentenceID = cursor
		records = append(records, rec)
	}
	return records
}
