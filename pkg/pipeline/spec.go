package pipeline

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/transforms"
	"github.com/textmorph/textmorph/pkg/errors"
)

// =============================================================================
// Step Specifications
// =============================================================================

// StepSpec describes one node of a transform tree. A leaf names a
// transform family with its configuration; the "compose" and "one_of"
// families nest child specs instead.
type StepSpec struct {
	// Family is the transform family or combinator name.
	Family string `json:"family" toml:"family"`

	// Config holds leaf transform parameters as parsed from TOML or JSON.
	Config map[string]any `json:"config,omitempty" toml:"config"`

	// Weight is the selection weight of this spec inside a one_of parent.
	// Zero on every sibling means uniform selection.
	Weight float64 `json:"weight,omitempty" toml:"weight"`

	// Steps holds the children of a compose node, in application order.
	Steps []StepSpec `json:"steps,omitempty" toml:"steps"`

	// Candidates holds the children of a one_of node.
	Candidates []StepSpec `json:"candidates,omitempty" toml:"candidates"`
}

// RootFamily returns the family name of this node.
func (s StepSpec) RootFamily() string { return s.Family }

func (s StepSpec) leafCount() int {
	if len(s.Steps) == 0 && len(s.Candidates) == 0 {
		return 1
	}
	total := 0
	for _, child := range s.Steps {
		total += child.leafCount()
	}
	for _, child := range s.Candidates {
		total += child.leafCount()
	}
	return total
}

// Build materializes the spec into a transformer. Leaves without their own
// seed inherit the given default, so one number reproduces the whole tree.
func (s StepSpec) Build(defaultSeed uint64) (augment.Transformer, error) {
	switch s.Family {
	case augment.NameCompose:
		if len(s.Steps) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "compose spec has no steps")
		}
		children := make([]augment.Transformer, len(s.Steps))
		for i, child := range s.Steps {
			built, err := child.Build(defaultSeed)
			if err != nil {
				return nil, err
			}
			children[i] = built
		}
		return augment.NewCompose(children...)

	case augment.NameOneOf:
		if len(s.Candidates) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "one_of spec has no candidates")
		}
		children := make([]augment.Transformer, len(s.Candidates))
		weights := make([]float64, len(s.Candidates))
		weighted := false
		for i, child := range s.Candidates {
			built, err := child.Build(defaultSeed)
			if err != nil {
				return nil, err
			}
			children[i] = built
			weights[i] = child.Weight
			if child.Weight != 0 {
				weighted = true
			}
		}
		opts := []augment.OneOfOption{augment.WithChoiceSeed(defaultSeed)}
		if weighted {
			opts = append(opts, augment.WithWeights(weights...))
		}
		return augment.NewOneOf(children, opts...)

	default:
		if len(s.Steps) > 0 || len(s.Candidates) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"family %q does not take nested steps", s.Family)
		}
		cfg := make(map[string]any, len(s.Config)+1)
		for k, v := range s.Config {
			cfg[k] = v
		}
		if _, ok := cfg["seed"]; !ok {
			cfg["seed"] = defaultSeed
		}
		return transforms.FromConfig(s.Family, cfg)
	}
}

// BuildSteps materializes a top-level step list: a single spec builds
// alone, several build as a composition in order.
func BuildSteps(steps []StepSpec, defaultSeed uint64) (augment.Transformer, error) {
	if len(steps) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "at least one step is required")
	}
	if len(steps) == 1 {
		return steps[0].Build(defaultSeed)
	}
	children := make([]augment.Transformer, len(steps))
	for i, s := range steps {
		built, err := s.Build(defaultSeed)
		if err != nil {
			return nil, err
		}
		children[i] = built
	}
	return augment.NewCompose(children...)
}

// =============================================================================
// Pipeline Files
// =============================================================================

// Spec is a pipeline definition loaded from a TOML file. It bundles the
// step tree with the run parameters so a pipeline can be versioned and
// replayed as a single document.
type Spec struct {
	Name     string     `toml:"name"`
	Seed     uint64     `toml:"seed"`
	Strategy string     `toml:"strategy"`
	Texts    []string   `toml:"texts"`
	Steps    []StepSpec `toml:"steps"`
}

// LoadSpec reads and validates a pipeline definition from a TOML file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read pipeline file %s", path)
	}
	return ParseSpec(data)
}

// ParseSpec parses a TOML pipeline definition.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse pipeline definition")
	}
	if len(spec.Steps) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "pipeline defines no steps")
	}
	return &spec, nil
}

// Options converts the spec into runner options. Texts given here
// override any batch embedded in the file.
func (s *Spec) Options(texts []string) Options {
	if len(texts) == 0 {
		texts = s.Texts
	}
	return Options{
		Name:     s.Name,
		Steps:    s.Steps,
		Texts:    texts,
		Seed:     s.Seed,
		Strategy: s.Strategy,
	}
}
