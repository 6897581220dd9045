package transforms

import (
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
)

// Baseline tokenizes and rejoins each text without altering its words.
// It exists to measure the cost of the tokenization round trip itself:
// its records look like every other transform's, with zero changes.
type Baseline struct{}

// NewBaseline creates the no-op transform.
func NewBaseline() *Baseline {
	return &Baseline{}
}

var _ augment.Transformer = (*Baseline)(nil)

// Name implements [augment.Transformer].
func (*Baseline) Name() string { return FamilyBaseline }

// Apply implements [augment.Transformer].
func (t *Baseline) Apply(texts []string) ([]string, []augment.Record, error) {
	return augment.PerText(FamilyBaseline, texts, func(src string) (string, augment.Record, error) {
		words := strings.Fields(src)
		dst := src
		if len(words) > 0 {
			dst = strings.Join(words, " ")
		}
		return dst, augment.Record{
			augment.KeyUnitCount: len(words),
			augment.KeyAugCount:  0,
		}, nil
	})
}
