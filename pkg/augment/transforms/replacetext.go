package transforms

import (
	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
)

// ReplaceText swaps whole texts for replacements. Matching is exact over
// the entire text, never over substrings: a text absent from the mapping
// passes through unchanged.
type ReplaceText struct {
	mapping    map[string]string
	all        string
	replaceAll bool
}

// NewReplaceText creates a mapping-based replacement transform.
func NewReplaceText(mapping map[string]string) (*ReplaceText, error) {
	if len(mapping) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "replacement mapping is empty")
	}
	return &ReplaceText{mapping: mapping}, nil
}

// NewReplaceTextAll creates a transform replacing every text with the
// same replacement.
func NewReplaceTextAll(replacement string) (*ReplaceText, error) {
	if replacement == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "replacement text is empty")
	}
	return &ReplaceText{all: replacement, replaceAll: true}, nil
}

var _ augment.Transformer = (*ReplaceText)(nil)

// Name implements [augment.Transformer].
func (*ReplaceText) Name() string { return FamilyReplaceText }

// DescribeConfig implements [augment.Describer].
func (t *ReplaceText) DescribeConfig() map[string]any {
	if t.replaceAll {
		return map[string]any{"replacement": t.all}
	}
	return map[string]any{"mapping_size": len(t.mapping)}
}

// Apply implements [augment.Transformer].
func (t *ReplaceText) Apply(texts []string) ([]string, []augment.Record, error) {
	return augment.PerText(FamilyReplaceText, texts, func(src string) (string, augment.Record, error) {
		dst := src
		replaced := false

		if t.replaceAll {
			dst, replaced = t.all, true
		} else if repl, ok := t.mapping[src]; ok {
			dst, replaced = repl, true
		}

		return dst, augment.Record{KeyReplaced: replaced}, nil
	})
}
