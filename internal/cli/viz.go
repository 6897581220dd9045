package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/textmorph/textmorph/pkg/errors"
	"github.com/textmorph/textmorph/pkg/pipeline"
	"github.com/textmorph/textmorph/pkg/viz"
)

// Diagram format constants.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// vizCommand creates the viz command for rendering pipeline diagrams.
func (c *CLI) vizCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		detailed   bool
	)

	cmd := &cobra.Command{
		Use:   "viz <pipeline.toml>",
		Short: "Render a pipeline definition as a diagram",
		Long: `Render a pipeline definition as a diagram.

Converts the step tree of a TOML pipeline into a Graphviz diagram.
Combinators appear as ellipses, leaf transforms as boxes, and weighted
one_of branches carry their weights as edge labels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := pipeline.LoadSpec(args[0])
			if err != nil {
				return err
			}

			formats := parseFormats(formatsStr)
			for _, f := range formats {
				if f != FormatDOT && f != FormatSVG && f != FormatPNG {
					return errors.New(errors.ErrCodeInvalidConfig,
						"invalid format: %q (must be one of: dot, svg, png)", f)
				}
			}

			dot := viz.ToDOT(spec.Name, spec.Steps, viz.Options{Detailed: detailed})

			base := output
			if base == "" {
				base = strings.TrimSuffix(args[0], ".toml")
			}

			for _, format := range formats {
				var data []byte
				switch format {
				case FormatDOT:
					data = []byte(dot)
				case FormatSVG:
					data, err = viz.RenderSVG(cmd.Context(), dot)
				case FormatPNG:
					data, err = viz.RenderPNG(cmd.Context(), dot)
				}
				if err != nil {
					return fmt.Errorf("render %s: %w", format, err)
				}

				path := base + "." + format
				if err := os.WriteFile(path, data, 0644); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
				}
				printFile(path)
			}

			printSuccess("Rendered pipeline diagram")
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (extension added per format)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include leaf configuration in node labels")

	return cmd
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{FormatSVG}
	}
	return strings.Split(s, ",")
}
