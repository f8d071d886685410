package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/argstruct/internal/model"
	"github.com/ppiankov/argstruct/internal/pipeline"
)

var inspectAll bool

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show what is extracted from every sentence of one file",
	Long: `Inspect prints, as YAML, the objects, subjects, verbs and light-verb
pairs extracted from each sentence of a single treebank file, together with
the records found malformed. Sentences yielding nothing are skipped unless
--all is given.

Example:
  argstruct inspect ./HDTB/InterChunk/SSF/utf/news/file-1.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cfg, cmd.OutOrStdout(), args[0], inspectAll)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectAll, "all", false, "include sentences without findings")
}

func runInspect(c *model.Config, out io.Writer, path string, all bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &model.IOFailureError{Path: path, Err: err}
	}

	sentences := pipeline.NewPipeline(c).Sentences(string(data), path)
	shown := make([]*pipeline.SentenceResult, 0, len(sentences))
	for _, s := range sentences {
		if all || !empty(s) {
			shown = append(shown, s)
		}
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(shown); err != nil {
		return fmt.Errorf("encode sentences: %w", err)
	}
	return enc.Close()
}

func empty(s *pipeline.SentenceResult) bool {
	return len(s.NonDomObjects) == 0 &&
		len(s.ErgativeSubjects) == 0 &&
		len(s.Intransitives) == 0 &&
		len(s.Subjects) == 0 &&
		len(s.LightVerbs) == 0 &&
		len(s.Malformed) == 0
}
