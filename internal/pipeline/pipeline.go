package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/ppiankov/argstruct/internal/cache"
	"github.com/ppiankov/argstruct/internal/model"
	"github.com/ppiankov/argstruct/internal/ssf"
)

// Pipeline orchestrates the extraction of one corpus file
type Pipeline struct {
	cache  cache.Cache // Optional result cache (nil if disabled)
	config *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return &Pipeline{
		cache:  c,
		config: cfg,
	}
}

// FileResult contains the extraction result of one corpus file
type FileResult struct {
	Path       string                     `json:"path"`
	SourceID   string                     `json:"source_id"`
	Sentences  int                        `json:"sentences"`
	MissingIDs int                        `json:"missing_ids"` // Sentences without their own id
	Items      []model.ClassifiedItem     `json:"items"`
	Subjects   []model.SubjectObservation `json:"subjects"`
	LightVerbs []model.LightVerbPairing   `json:"light_verbs"`
	Malformed  []string                   `json:"malformed"`
	Cached     bool                       `json:"-"`
}

// ProcessFile reads a corpus file and extracts all its sentences
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 1. Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.IOFailureError{Path: path, Err: err}
	}

	// 2. Look up the cache
	key := cache.CacheKey(path, data, p.config.Lexicon.Normalize)
	if p.cache != nil {
		if res, ok := p.cached(key); ok {
			log.Debug().Str("path", path).Msg("using cached extraction")
			return res, nil
		}
	}

	// 3. Split, parse and extract
	res := p.ProcessText(string(data), path)

	// 4. Store in cache
	if p.cache != nil {
		if encoded, err := json.Marshal(res); err == nil {
			if err := p.cache.Set(key, encoded, p.config.Cache.DiskTTL); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("failed to cache extraction")
			}
		}
	}
	return res, nil
}

func (p *Pipeline) cached(key string) (*FileResult, bool) {
	encoded, found := p.cache.Get(key)
	if !found {
		return nil, false
	}
	var res FileResult
	if err := json.Unmarshal(encoded, &res); err != nil {
		return nil, false
	}
	res.Cached = true
	return &res, true
}

// ProcessText extracts all sentences of an SSF document. Invalid UTF-8
// sequences are dropped before splitting and the text is NFC normalised
// when the vocabulary lists are.
func (p *Pipeline) ProcessText(text, path string) *FileResult {
	res := &FileResult{
		Path:     path,
		SourceID: ssf.SourceID(path),
	}
	for _, sent := range p.Sentences(text, path) {
		res.Sentences++
		if !sent.HasOwnID {
			res.MissingIDs++
		}
		res.Items = append(res.Items, sent.Items()...)
		res.Subjects = append(res.Subjects, sent.Subjects...)
		res.LightVerbs = append(res.LightVerbs, sent.LightVerbs...)
		res.Malformed = append(res.Malformed, sent.Malformed...)
	}
	if res.MissingIDs > 0 {
		log.Debug().Str("path", path).Int("count", res.MissingIDs).Msg("sentences without own id")
	}
	for _, m := range res.Malformed {
		log.Debug().Str("path", path).Msg(m)
	}
	return res
}

// Sentences returns the per-sentence extraction of an SSF document
func (p *Pipeline) Sentences(text, path string) []*SentenceResult {
	text = strings.ToValidUTF8(text, "")
	if p.config.Lexicon.Normalize {
		text = norm.NFC.String(text)
	}
	records := ssf.SplitRecords(text, path)
	results := make([]*SentenceResult, 0, len(records))
	for _, rec := range records {
		results = append(results, ExtractSentence(ssf.Parse(rec)))
	}
	return results
}
