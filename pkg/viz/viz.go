// Package viz renders pipeline definitions as Graphviz diagrams.
//
// A pipeline is a tree of combinators and leaf transforms; seeing the
// tree laid out makes it much easier to review a TOML definition than
// reading nested tables. The package converts a step tree to DOT and
// renders it to SVG or PNG.
package viz

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
	"github.com/textmorph/textmorph/pkg/pipeline"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes leaf configuration values in node labels.
	// When false, only the family name is shown.
	Detailed bool
}

// ToDOT converts a pipeline step tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Combinator nodes (compose, one_of) are rendered as ellipses; leaf
// transforms as rounded boxes. Edges out of a one_of node carry the
// candidate weight when one is set.
func ToDOT(name string, steps []pipeline.StepSpec, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pipeline {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	w := &dotWriter{buf: &buf, detailed: opts.Detailed}

	root := "pipeline"
	if name != "" {
		root = name
	}
	fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse, fillcolor=lightgrey];\n", "root", root)

	for _, s := range steps {
		child := w.writeStep(s)
		fmt.Fprintf(&buf, "  %q -> %q;\n", "root", child)
	}

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf      *bytes.Buffer
	detailed bool
	next     int
}

// writeStep emits the node for one spec and its subtree, returning the
// node identifier for the parent edge.
func (w *dotWriter) writeStep(s pipeline.StepSpec) string {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	switch s.Family {
	case augment.NameCompose, augment.NameOneOf:
		fmt.Fprintf(w.buf, "  %q [label=%q, shape=ellipse, fillcolor=lightgrey];\n", id, s.Family)
		children := s.Steps
		if s.Family == augment.NameOneOf {
			children = s.Candidates
		}
		for _, child := range children {
			childID := w.writeStep(child)
			if s.Family == augment.NameOneOf && child.Weight != 0 {
				fmt.Fprintf(w.buf, "  %q -> %q [label=%q];\n", id, childID, trimFloat(child.Weight))
			} else {
				fmt.Fprintf(w.buf, "  %q -> %q;\n", id, childID)
			}
		}
	default:
		fmt.Fprintf(w.buf, "  %q [label=%q];\n", id, w.leafLabel(s))
	}

	return id
}

func (w *dotWriter) leafLabel(s pipeline.StepSpec) string {
	if !w.detailed || len(s.Config) == 0 {
		return s.Family
	}

	parts := make([]string, 0, len(s.Config))
	for _, k := range slices.Sorted(maps.Keys(s.Config)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, s.Config[k]))
	}
	return s.Family + "\n" + strings.Join(parts, "\n")
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render diagram")
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the diagram scales
// in browsers regardless of the point-based sizes Graphviz emits.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
