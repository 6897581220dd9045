package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/transforms"
	"github.com/textmorph/textmorph/pkg/fixtures"
)

// Canonical fixture inputs. Changing these invalidates every stored
// fixture file, so treat them as frozen.
var fixtureTexts = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Hello, world!",
}

// fixtureSeed pins the randomness of fixture generation.
const fixtureSeed = uint64(42)

// fixtureConfigs returns the per-family configuration used for fixture
// generation. Families needing required parameters get minimal ones.
func fixtureConfigs() map[string]map[string]any {
	configs := make(map[string]map[string]any)
	for _, family := range transforms.Families() {
		if family == transforms.FamilyApplyLambda {
			continue
		}
		configs[family] = map[string]any{
			augment.KeyAugP: 1.0,
			"seed":          fixtureSeed,
		}
	}
	configs[transforms.FamilyInsertText]["pool"] = []string{"lol", "omg"}
	configs[transforms.FamilyReplaceText]["replacement"] = "redacted"
	configs[transforms.FamilyReplaceWords]["mapping"] = map[string]string{"quick": "slow"}
	return configs
}

// fixturesCommand creates the fixtures command group.
func (c *CLI) fixturesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Write or check golden metadata records",
		Long: `Write or check golden metadata records.

Fixtures freeze the provenance records every transform family emits for
a canonical batch under a fixed seed. Checking them after a change
catches behavioral drift in any family.`,
	}

	cmd.AddCommand(c.fixturesWriteCommand())
	cmd.AddCommand(c.fixturesCheckCommand())

	return cmd
}

// fixturesWriteCommand creates the "fixtures write" subcommand.
func (c *CLI) fixturesWriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "write <file.json>",
		Short: "Generate golden records for every family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(c.Logger)
			set, err := generateFixtures()
			if err != nil {
				return err
			}
			if err := set.Save(args[0]); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Generated fixtures for %d families", len(set)))
			printSuccess("Wrote fixtures for %d families", len(set))
			printFile(args[0])
			return nil
		},
	}
}

// fixturesCheckCommand creates the "fixtures check" subcommand.
func (c *CLI) fixturesCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.json>",
		Short: "Compare current behavior against stored records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(c.Logger)
			stored, err := fixtures.Load(args[0])
			if err != nil {
				return err
			}
			fresh, err := generateFixtures()
			if err != nil {
				return err
			}

			failed := 0
			for _, family := range stored.Families() {
				want, err := stored.Records(family)
				if err != nil {
					return err
				}
				got, ok := fresh[family]
				if !ok {
					printWarning("%s: family no longer generated", family)
					failed++
					continue
				}
				if !fixtures.EqualRecords(want, got) {
					printError("%s: records drifted", family)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d families drifted from fixtures", failed, len(stored))
			}
			p.done(fmt.Sprintf("Checked %d families", len(stored)))
			printSuccess("All %d families match their fixtures", len(stored))
			return nil
		},
	}
}

// generateFixtures applies every configurable family to the canonical
// batch with the pinned seed.
func generateFixtures() (fixtures.Set, error) {
	set := fixtures.Set{}
	for family, config := range fixtureConfigs() {
		tr, err := transforms.FromConfig(family, config)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", family, err)
		}
		_, records, err := tr.Apply(fixtureTexts)
		if err != nil {
			return nil, fmt.Errorf("apply %s: %w", family, err)
		}
		set.Put(family, records)
	}
	return set, nil
}
