package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ppiankov/argstruct/internal/model"
	"github.com/ppiankov/argstruct/internal/pipeline"
	"github.com/ppiankov/argstruct/internal/worker"
)

// processCorpus extracts every file under the corpus root and hands the
// successful results to each in corpus order. Failed files are reported and
// skipped; the run only fails when the corpus cannot be listed.
func processCorpus(
	ctx context.Context,
	c *model.Config,
	stderr io.Writer,
	each func(*pipeline.FileResult) error,
) (*pipeline.Summary, error) {
	start := time.Now()
	summary := &pipeline.Summary{RunID: runID}

	files, err := worker.ListCorpusFiles(c.Corpus.Root, c.Corpus.Extensions)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}
	fmt.Fprintf(stderr, "✓ Found %d corpus files\n", len(files))
	fmt.Fprintf(stderr, "⚙️  Processing with %d workers...\n\n", c.Concurrency.Workers)

	p := pipeline.NewPipeline(c)
	processor := worker.NewBatchProcessor(p, c.Concurrency.Workers, c.IO.FilesPerSecond, c.IO.Burst)

	for _, result := range processor.ProcessFiles(ctx, files) {
		if result.Error != nil {
			summary.Failed = append(summary.Failed, result.Path)
			fmt.Fprintf(stderr, "✗ %s: %v\n", result.Path, result.Error)
			log.Error().Err(result.Error).Str("path", result.Path).Msg("failed to process file")
			continue
		}
		summary.Add(result.Result)
		if err := each(result.Result); err != nil {
			return nil, err
		}
	}
	summary.Duration = time.Since(start)
	log.Info().
		Int("files", summary.Files).
		Int("failed", len(summary.Failed)).
		Int("sentences", summary.Sentences).
		Int("malformed", summary.Malformed).
		Msg("corpus processed")
	return summary, nil
}

func banner(w io.Writer, title string, c *model.Config) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Corpus:       %s\n", c.Corpus.Root)
	fmt.Fprintf(w, "  Output dir:   %s\n", c.Output.Dir)
	fmt.Fprintf(w, "  Workers:      %d\n", c.Concurrency.Workers)
	fmt.Fprintf(w, "\n")
}

func runContext() (context.Context, context.CancelFunc) {
	if runTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), runTimeout)
}
