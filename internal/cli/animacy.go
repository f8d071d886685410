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

// animacyCmd represents the animacy command
var animacyCmd = &cobra.Command{
	Use:   "animacy <intransitives> <ergatives> <nondoms>",
	Short: "Estimate how often intransitive verbs take animate subjects",
	Long: `Animacy counts, for every verb of the intransitive list, how many of its
k1 subjects appear on the ergative list (animate evidence) and how many on
the non-DOM list (inanimate evidence). A noun on both lists counts as
ergative. The lists are the ones written by 'argstruct extract', possibly
curated by hand.

anim_percents.txt gets one line per verb in list order:

  verb<TAB>erg/(erg+nondom)<TAB>erg+nondom

with NA when no subject was found on either list.

Example:
  argstruct animacy intranVs.txt ergNs.txt nondomNs.txt`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := runContext()
		defer cancel()
		_, err := runAnimacy(ctx, cfg, os.Stderr, args[0], args[1], args[2])
		return err
	},
}

func init() {
	rootCmd.AddCommand(animacyCmd)
}

func runAnimacy(ctx context.Context, c *model.Config, stderr io.Writer, intransPath, ergPath, nonDomPath string) (*pipeline.Summary, error) {
	banner(stderr, "argstruct animacy", c)

	loader := lexicon.NewLoader(c.Lexicon.Normalize, time.Hour)
	lists, err := loader.LoadAll(intransPath, ergPath, nonDomPath)
	if err != nil {
		return nil, err
	}
	counter := aggregate.NewAnimacyCounter(lists[0], lists[1], lists[2])

	var counted int
	summary, err := processCorpus(ctx, c, stderr, func(res *pipeline.FileResult) error {
		counted += counter.ObserveAll(res.Subjects)
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary.Counted = counted

	renderer := pipeline.NewRenderer(c.Output.Dir, c.Output.Verbose)
	path, err := renderer.WriteAnimacy(counter.Percentages())
	if err != nil {
		return nil, err
	}
	summary.Outputs = append(summary.Outputs, path)
	renderer.RenderSummary(stderr, summary)
	return summary, nil
}
