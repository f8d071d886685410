package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/argstruct/internal/aggregate"
	"github.com/ppiankov/argstruct/internal/model"
)

const (
	AnimacyFile           = "anim_percents.txt"
	LightVerbCountsFile   = "tel_counts"
	LightVerbPercentsFile = "tel_percents"
)

// listingFiles maps a category to the base name of its two listing files
var listingFiles = map[model.Category]string{
	model.CategoryNonDomObject:     "nondomNs",
	model.CategoryErgativeSubject:  "ergNs",
	model.CategoryIntransitiveVerb: "intranVs",
}

// ListingPaths returns the plain and the _info listing file of category
func ListingPaths(dir string, category model.Category) (plain, info string) {
	base := filepath.Join(dir, listingFiles[category])
	return base + ".txt", base + "_info.txt"
}

// Renderer writes extraction results to the output directory
type Renderer struct {
	dir     string
	verbose bool
}

// NewRenderer creates a renderer writing into dir
func NewRenderer(dir string, verbose bool) *Renderer {
	return &Renderer{dir: dir, verbose: verbose}
}

// AppendListings appends the listings of one file to the six listing files.
// Existing content is kept, so a re-run needs the old files removed first.
func (r *Renderer) AppendListings(ls *aggregate.Listings) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, c := range model.Categories {
		plain, info := ListingPaths(r.dir, c)
		items := ls.Get(c).Items()
		err := appendTo(plain, func(w *bufio.Writer) {
			for _, it := range items {
				fmt.Fprintf(w, "%s\n", it.Item)
			}
		})
		if err != nil {
			return err
		}
		err = appendTo(info, func(w *bufio.Writer) {
			for _, it := range items {
				fmt.Fprintf(w, "%s\n%s\n\n", it.Item, it.Provenance)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteAnimacy writes one "verb\tratio\ttotal" line per verb
func (r *Renderer) WriteAnimacy(rows []model.VerbAnimacyCount) (string, error) {
	path := filepath.Join(r.dir, AnimacyFile)
	err := writeTo(path, func(w *bufio.Writer) {
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%d\n", row.Verb, row.FormatRatio(), row.Total())
		}
	})
	return path, err
}

// WriteLightVerbs writes the per-verb light-verb counts and the
// come/go and give/take totals
func (r *Renderer) WriteLightVerbs(rows []model.VerbLightVerbs) ([]string, error) {
	counts := filepath.Join(r.dir, LightVerbCountsFile)
	err := writeTo(counts, func(w *bufio.Writer) {
		for _, row := range rows {
			fields := make([]string, 0, len(row.Counts)+1)
			fields = append(fields, row.Verb)
			for _, c := range row.Counts {
				fields = append(fields, fmt.Sprintf("%s:%d", c.LightVerb, c.Count))
			}
			fmt.Fprintf(w, "%s\n", strings.Join(fields, "\t"))
		}
	})
	if err != nil {
		return nil, err
	}

	percents := filepath.Join(r.dir, LightVerbPercentsFile)
	err = writeTo(percents, func(w *bufio.Writer) {
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", row.Verb, row.ComeGo, row.GiveTake, row.Combined())
		}
	})
	if err != nil {
		return nil, err
	}
	return []string{counts, percents}, nil
}

func appendTo(path string, fill func(w *bufio.Writer)) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &model.IOFailureError{Path: path, Err: err}
	}
	return flushAndClose(path, f, fill)
}

func writeTo(path string, fill func(w *bufio.Writer)) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return &model.IOFailureError{Path: path, Err: err}
	}
	return flushAndClose(path, f, fill)
}

func flushAndClose(path string, f *os.File, fill func(w *bufio.Writer)) error {
	w := bufio.NewWriter(f)
	fill(w)
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return &model.IOFailureError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &model.IOFailureError{Path: path, Err: err}
	}
	return nil
}

// Summary describes a finished corpus run
type Summary struct {
	RunID      string
	Files      int
	Failed     []string
	Cached     int
	Sentences  int
	MissingIDs int
	Malformed  int
	Counted    int // Observations that entered the statistics
	Outputs    []string
	Duration   time.Duration
}

// Add accounts for one processed file
func (s *Summary) Add(res *FileResult) {
	s.Files++
	s.Sentences += res.Sentences
	s.MissingIDs += res.MissingIDs
	s.Malformed += len(res.Malformed)
	if res.Cached {
		s.Cached++
	}
}

// RenderSummary prints the run summary
func (r *Renderer) RenderSummary(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "\n=== Summary (run %s) ===\n", s.RunID)
	fmt.Fprintf(w, "Files:      %d processed, %d failed", s.Files, len(s.Failed))
	if s.Cached > 0 {
		fmt.Fprintf(w, " (%d from cache)", s.Cached)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Sentences:  %d (%d without own id)\n", s.Sentences, s.MissingIDs)
	fmt.Fprintf(w, "Malformed:  %d\n", s.Malformed)
	if s.Counted > 0 {
		fmt.Fprintf(w, "Counted:    %d\n", s.Counted)
	}
	fmt.Fprintf(w, "Duration:   %s\n", s.Duration.Round(time.Millisecond))
	for _, out := range s.Outputs {
		fmt.Fprintf(w, "✓ Wrote %s\n", out)
	}
	if r.verbose {
		for _, path := range s.Failed {
			fmt.Fprintf(w, "✗ %s\n", path)
		}
	}
}
