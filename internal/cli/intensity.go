package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/intensity"
	"github.com/textmorph/textmorph/pkg/errors"
)

// intensityCommand creates the intensity command for scoring saved records.
func (c *CLI) intensityCommand() *cobra.Command {
	var (
		strategy string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "intensity <records.json>",
		Short: "Score saved provenance records",
		Long: `Score saved provenance records.

Reads a JSON list of records (as written by 'augment --records' or
'run --records') and derives one intensity score in [0, 100] per record.
Composite records from compose or one_of pipelines are folded with the
chosen aggregation strategy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(args[0])
			if err != nil {
				return err
			}

			agg, err := intensity.NewAggregator(intensity.Strategy(strategy))
			if err != nil {
				return err
			}

			scores := make([]float64, len(records))
			for i, rec := range records {
				score, err := agg.Aggregate(rec)
				if err != nil {
					return fmt.Errorf("record %d: %w", i, err)
				}
				scores[i] = score
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(scores)
			}

			for i, rec := range records {
				label := rec.Name()
				if label == "" {
					label = "unknown"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-30s %6.1f\n", i, label, scores[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(intensity.StrategyMax), "aggregation for composite records: max, mean")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit scores as a JSON list")

	return cmd
}

// readRecords loads a JSON list of provenance records.
func readRecords(path string) ([]augment.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read records file %s", path)
	}
	var records []augment.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedMetadata, err, "parse records file %s", path)
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "records file %s is empty", path)
	}
	return records, nil
}
