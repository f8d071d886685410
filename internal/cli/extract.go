package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/argstruct/internal/aggregate"
	"github.com/ppiankov/argstruct/internal/model"
	"github.com/ppiankov/argstruct/internal/pipeline"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "List non-DOM objects, ergative subjects and intransitive verbs",
	Long: `Extract walks the treebank and appends, for every file, the lexical
items found in it to six listing files in the output directory:

  nondomNs.txt / nondomNs_info.txt   case-unmarked k2 objects
  ergNs.txt    / ergNs_info.txt      ने-marked subjects
  intranVs.txt / intranVs_info.txt   verbs whose only karaka argument is k1

The _info files add the source file and sentence id of every item. Data is
appended, so remove the previous files before re-running.

Example:
  argstruct extract --corpus ./HDTB/InterChunk/SSF/utf --output-dir out`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext()
		defer cancel()
		_, err := runExtract(ctx, cfg, os.Stderr)
		return err
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(ctx context.Context, c *model.Config, stderr io.Writer) (*pipeline.Summary, error) {
	banner(stderr, "argstruct extract", c)
	renderer := pipeline.NewRenderer(c.Output.Dir, c.Output.Verbose)

	summary, err := processCorpus(ctx, c, stderr, func(res *pipeline.FileResult) error {
		listings := aggregate.NewListings()
		listings.AddAll(res.Items)
		return renderer.AppendListings(listings)
	})
	if err != nil {
		return nil, err
	}
	for _, category := range model.Categories {
		plain, info := pipeline.ListingPaths(c.Output.Dir, category)
		summary.Outputs = append(summary.Outputs, plain, info)
	}
	renderer.RenderSummary(stderr, summary)
	return summary, nil
}
