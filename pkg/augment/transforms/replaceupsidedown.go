package transforms

import (
	"math/rand/v2"
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/charmaps"
)

// ReplaceUpsideDown rotates text 180 degrees using flipped glyph
// look-alikes. At granularity "all" the whole text is reversed and
// flipped; at "word" gated words are rotated in place; at "char" gated
// characters are flipped without reversal.
type ReplaceUpsideDown struct {
	cfg augment.BaseConfig
}

// NewReplaceUpsideDown creates an upside-down transform. Granularity
// defaults to "all".
func NewReplaceUpsideDown(cfg augment.BaseConfig) (*ReplaceUpsideDown, error) {
	cfg = cfg.WithDefaults(augment.GranularityAll)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ReplaceUpsideDown{cfg: cfg}, nil
}

var _ augment.Transformer = (*ReplaceUpsideDown)(nil)

// Name implements [augment.Transformer].
func (*ReplaceUpsideDown) Name() string { return FamilyReplaceUpsideDown }

// DescribeConfig implements [augment.Describer].
func (t *ReplaceUpsideDown) DescribeConfig() map[string]any {
	return map[string]any(t.cfg.Fields())
}

// Apply implements [augment.Transformer].
func (t *ReplaceUpsideDown) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilyReplaceUpsideDown, texts, func(src string) (string, augment.Record, error) {
		var dst string
		var units, changed int

		switch t.cfg.Granularity {
		case augment.GranularityAll:
			dst = rotate(src)
			if src != "" {
				units = 1
			}
			if dst != src {
				changed = 1
			}
		case augment.GranularityWord:
			dst, units, changed = applyToWords(t.cfg, rng, src,
				func(string) bool { return true },
				func(_ *rand.Rand, w string) string { return rotate(w) })
		case augment.GranularityChar:
			dst, units, changed = applyToChars(t.cfg, rng, src, charmaps.CanFlip,
				func(_ *rand.Rand, r rune) string { return string(charmaps.FlipRune(r)) })
		}

		return dst, outcomeFields(t.cfg, units, changed), nil
	})
}

// rotate reverses s and flips every rune.
func rotate(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := len(runes) - 1; i >= 0; i-- {
		b.WriteRune(charmaps.FlipRune(runes[i]))
	}
	return b.String()
}
