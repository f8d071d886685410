package worker

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	gokitfs "github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/ppiankov/argstruct/internal/model"
	"github.com/ppiankov/argstruct/internal/pipeline"
)

// Processor defines the interface for extracting one corpus file
type Processor interface {
	ProcessFile(ctx context.Context, path string) (*pipeline.FileResult, error)
}

// FileJob represents the extraction of one corpus file
type FileJob struct {
	Index     int
	Path      string
	Processor Processor
	Limiter   *Limiter // nil when reads are not throttled
	done      func()
}

// Execute executes the file job
func (j *FileJob) Execute(ctx context.Context) Result {
	if j.done != nil {
		defer j.done()
	}
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Path); err != nil {
			return &FileResult{Index: j.Index, Path: j.Path, Error: err}
		}
	}
	res, err := j.Processor.ProcessFile(ctx, j.Path)
	if err != nil {
		return &FileResult{Index: j.Index, Path: j.Path, Error: err}
	}
	return &FileResult{Index: j.Index, Path: j.Path, Result: res}
}

// FileResult represents the result of a file job
type FileResult struct {
	Index  int
	Path   string
	Result *pipeline.FileResult
	Error  error
}

// GetError returns the error from the file result
func (r *FileResult) GetError() error {
	return r.Error
}

// BatchProcessor processes corpus files concurrently
type BatchProcessor struct {
	processor   Processor
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. A filesPerSecond of zero
// disables read throttling.
func NewBatchProcessor(processor Processor, concurrency int, filesPerSecond float64, burst int) *BatchProcessor {
	var limiter *Limiter
	if filesPerSecond > 0 {
		limiter = NewLimiter(filesPerSecond, burst)
	}
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
		limiter:     limiter,
	}
}

// ProcessFiles processes files concurrently and returns one result per path
// in the order of paths, whatever order the workers finished in. Files not
// processed because ctx ended carry the context error.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	var finished atomic.Int64
	progress := rate.Sometimes{First: 1, Interval: 2 * time.Second}
	done := func() {
		n := finished.Add(1)
		progress.Do(func() {
			log.Info().Int64("done", n).Int("total", len(paths)).Msg("processing corpus")
		})
	}

	jobs := make([]Job, len(paths))
	for i, path := range paths {
		jobs[i] = &FileJob{
			Index:     i,
			Path:      path,
			Processor: b.processor,
			Limiter:   b.limiter,
			done:      done,
		}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()
	results := pool.Run(jobs)

	ordered := make([]*FileResult, len(paths))
	for _, result := range results {
		fr := result.(*FileResult)
		ordered[fr.Index] = fr
	}
	for i, fr := range ordered {
		if fr == nil {
			err := ctx.Err()
			if err == nil {
				err = fmt.Errorf("file not processed")
			}
			ordered[i] = &FileResult{Index: i, Path: paths[i], Error: err}
		}
	}
	return ordered
}

// ListCorpusFiles walks root and returns the files whose extension is in
// extensions (all files when extensions is empty), in lexical order
func ListCorpusFiles(root string, extensions []string) ([]string, error) {
	isDir, err := gokitfs.IsDir(root)
	if err != nil {
		return nil, &model.IOFailureError{Path: root, Err: err}
	}
	if !isDir {
		return nil, &model.IOFailureError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	exts := make([]string, len(extensions))
	for i, e := range extensions {
		exts[i] = strings.ToLower("." + strings.TrimPrefix(e, "."))
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &model.IOFailureError{Path: path, Err: err}
		}
		if d.IsDir() {
			return nil
		}
		if len(exts) > 0 && !collections.SliceContains(exts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
