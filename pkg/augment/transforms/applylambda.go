package transforms

import (
	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
)

// ApplyLambda wraps an arbitrary text mutation in the transform contract
// so custom one-off mutations get the same records and composition
// support as the built-in families.
type ApplyLambda struct {
	label string
	fn    func(src string) (string, error)
}

// NewApplyLambda creates a transform around fn. The label identifies the
// mutation in metadata records.
func NewApplyLambda(label string, fn func(src string) (string, error)) (*ApplyLambda, error) {
	if label == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "lambda label is empty")
	}
	if fn == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "lambda function is nil")
	}
	return &ApplyLambda{label: label, fn: fn}, nil
}

var _ augment.Transformer = (*ApplyLambda)(nil)

// Name implements [augment.Transformer].
func (*ApplyLambda) Name() string { return FamilyApplyLambda }

// DescribeConfig implements [augment.Describer].
func (t *ApplyLambda) DescribeConfig() map[string]any {
	return map[string]any{KeyLambda: t.label}
}

// Apply implements [augment.Transformer].
func (t *ApplyLambda) Apply(texts []string) ([]string, []augment.Record, error) {
	return augment.PerText(FamilyApplyLambda, texts, func(src string) (string, augment.Record, error) {
		dst, err := t.fn(src)
		if err != nil {
			return "", nil, err
		}
		return dst, augment.Record{KeyLambda: t.label}, nil
	})
}
