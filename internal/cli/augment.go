package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/transforms"
	"github.com/textmorph/textmorph/pkg/errors"
	"github.com/textmorph/textmorph/pkg/pipeline"
)

// augmentCommand creates the augment command for applying one transform
// family.
func (c *CLI) augmentCommand() *cobra.Command {
	var (
		augP        float64
		augMin      int
		augMax      int
		granularity string
		seed        uint64
		setFlags    []string
		inputFile   string
		recordsOut  string
		strategy    string
		asJSON      bool
		noCache     bool
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "augment <family> [text...]",
		Short: "Apply one transform family to a batch of texts",
		Long: `Apply one transform family to a batch of texts.

Texts come from positional arguments, --input (one text per line), or
stdin. Every run emits one provenance record per text; records can be
saved with --records for later scoring or fixture comparison.

Run 'textmorph preview' to browse the available families interactively.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family := args[0]
			texts, err := readTexts(args[1:], inputFile, stdinIfPiped())
			if err != nil {
				return err
			}

			config, err := parseSetFlags(setFlags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("aug-p") {
				config[augment.KeyAugP] = augP
			}
			if cmd.Flags().Changed("aug-min") {
				config[augment.KeyAugMin] = augMin
			}
			if cmd.Flags().Changed("aug-max") {
				config[augment.KeyAugMax] = augMax
			}
			if granularity != "" {
				config[augment.KeyGranularity] = granularity
			}

			opts := pipeline.Options{
				Steps:    []pipeline.StepSpec{{Family: family, Config: config}},
				Texts:    texts,
				Seed:     seed,
				Strategy: strategy,
				Refresh:  refresh,
				Logger:   c.Logger,
			}
			return c.runAugment(cmd, opts, recordsOut, asJSON, noCache)
		},
	}

	cmd.Flags().Float64Var(&augP, "aug-p", transforms.DefaultAugP, "fraction of eligible units to change")
	cmd.Flags().IntVar(&augMin, "aug-min", 0, "minimum number of units to change")
	cmd.Flags().IntVar(&augMax, "aug-max", 0, "maximum number of units to change")
	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "unit granularity: char, word, all")
	cmd.Flags().Uint64Var(&seed, "seed", pipeline.DefaultSeed, "random seed for reproducibility")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "extra family config as key=value (repeatable)")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "file with one input text per line")
	cmd.Flags().StringVar(&recordsOut, "records", "", "write provenance records to this JSON file")
	cmd.Flags().StringVar(&strategy, "strategy", pipeline.DefaultStrategy, "intensity aggregation: max, mean")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// runAugment executes the options and prints the result.
func (c *CLI) runAugment(cmd *cobra.Command, opts pipeline.Options, recordsOut string, asJSON, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "initialize runner")
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(cmd.Context(), "Augmenting...")
	spinner.Start()

	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		spinner.StopWithError("Augmentation failed")
		return err
	}
	spinner.Stop()

	if recordsOut != "" {
		if err := writeRecords(recordsOut, result.Records); err != nil {
			return err
		}
	}

	if asJSON {
		return printResultJSON(cmd, result)
	}

	for i := range result.Output {
		printTextPair(result.Input[i], result.Output[i], result.Intensities[i])
	}
	printStats(result.Stats.TextCount, result.Stats.LeafCount, result.CacheHit)
	if recordsOut != "" {
		printFile(recordsOut)
		printNextStep("Score the records", fmt.Sprintf("textmorph intensity %s", recordsOut))
	}
	return nil
}

// resultJSON is the machine-readable shape of a run.
type resultJSON struct {
	RunID       string           `json:"run_id"`
	Input       []string         `json:"input"`
	Output      []string         `json:"output"`
	Records     []augment.Record `json:"records"`
	Intensities []float64        `json:"intensities"`
	CacheHit    bool             `json:"cache_hit"`
}

func printResultJSON(cmd *cobra.Command, result *pipeline.Result) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resultJSON{
		RunID:       result.RunID,
		Input:       result.Input,
		Output:      result.Output,
		Records:     result.Records,
		Intensities: result.Intensities,
		CacheHit:    result.CacheHit,
	})
}

// writeRecords saves records as an indented JSON list.
func writeRecords(path string, records []augment.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal records")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write records file %s", path)
	}
	return nil
}

// parseSetFlags decodes repeated key=value flags into a config map.
// Values parse as bool or number when they look like one, else string.
func parseSetFlags(flags []string) (map[string]any, error) {
	config := make(map[string]any, len(flags))
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid --set flag %q (want key=value)", f)
		}
		switch {
		case value == "true" || value == "false":
			config[key] = value == "true"
		default:
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				config[key] = n
			} else {
				config[key] = value
			}
		}
	}
	return config, nil
}

// stdinIfPiped returns stdin when input is piped, nil on a terminal.
func stdinIfPiped() *os.File {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}
