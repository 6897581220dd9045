package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textmorph/textmorph/pkg/pipeline"
)

// runCommand creates the run command for executing pipeline definitions.
func (c *CLI) runCommand() *cobra.Command {
	var (
		inputFile  string
		recordsOut string
		strategy   string
		seed       uint64
		asJSON     bool
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "run <pipeline.toml> [text...]",
		Short: "Execute a TOML pipeline definition",
		Long: `Execute a TOML pipeline definition.

A pipeline file declares a tree of transform steps plus the seed and
aggregation strategy. Texts given on the command line, via --input, or
on stdin override any batch embedded in the file.

Example pipeline:

	name = "noisy"
	seed = 7

	[[steps]]
	family = "simulate_typos"

	[steps.config]
	aug_p = 0.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := pipeline.LoadSpec(args[0])
			if err != nil {
				return err
			}

			texts, err := readTexts(args[1:], inputFile, stdinIfPiped())
			if err != nil && len(spec.Texts) == 0 {
				return err
			}

			opts := spec.Options(texts)
			opts.Logger = c.Logger
			opts.Refresh = refresh
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}
			if cmd.Flags().Changed("strategy") {
				opts.Strategy = strategy
			}

			if opts.Name != "" {
				printInfo("Running pipeline %s", StyleHighlight.Render(opts.Name))
			}
			if err := c.runAugment(cmd, opts, recordsOut, asJSON, noCache); err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "file with one input text per line")
	cmd.Flags().StringVar(&recordsOut, "records", "", "write provenance records to this JSON file")
	cmd.Flags().StringVar(&strategy, "strategy", pipeline.DefaultStrategy, "intensity aggregation: max, mean")
	cmd.Flags().Uint64Var(&seed, "seed", pipeline.DefaultSeed, "override the pipeline seed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")

	return cmd
}
