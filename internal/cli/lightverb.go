package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/argstruct/internal/aggregate"
	"github.com/ppiankov/argstruct/internal/lexicon"
	"github.com/ppiankov/argstruct/internal/model"
	"github.com/ppiankov/argstruct/internal/pipeline"
)

// lightVerbCmd represents the lightverb command
var lightVerbCmd = &cobra.Command{
	Use:   "lightverb <intransitives>",
	Short: "Count the light verbs combining with intransitive verbs",
	Long: `Lightverb finds bare verb roots directly followed by a light verb
(आ बैठ चल छोड़ डाल दे जा ले मार पड़) and counts the pairs whose verb is on the
intransitive list.

  tel_counts     verb<TAB>lightverb:count<TAB>...
  tel_percents   verb<TAB>come/go<TAB>give/take<TAB>sum

come/go are आ and जा, give/take are दे and ले.

Example:
  argstruct lightverb intranVs.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext()
		defer cancel()
		_, err := runLightVerbs(ctx, cfg, os.Stderr, args[0])
		return err
	},
}

func init() {
	rootCmd.AddCommand(lightVerbCmd)
}

func runLightVerbs(ctx context.Context, c *model.Config, stderr io.Writer, intransPath string) (*pipeline.Summary, error) {
	banner(stderr, "argstruct lightverb", c)

	intransitives, err := lexicon.NewLoader(c.Lexicon.Normalize, time.Hour).Load(intransPath)
	if err != nil {
		return nil, err
	}
	counter := aggregate.NewLightVerbCounter(intransitives)

	var counted int
	summary, err := processCorpus(ctx, c, stderr, func(res *pipeline.FileResult) error {
		counted += counter.ObserveAll(res.LightVerbs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary.Counted = counted

	renderer := pipeline.NewRenderer(c.Output.Dir, c.Output.Verbose)
	paths, err := renderer.WriteLightVerbs(counter.Regroup())
	if err != nil {
		return nil, err
	}
	summary.Outputs = append(summary.Outputs, paths...)
	renderer.RenderSummary(stderr, summary)
	return summary, nil
}
