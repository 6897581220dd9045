package transforms

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
)

// Case styles accepted by [NewChangeCase].
const (
	CaseLower  = "lower"
	CaseUpper  = "upper"
	CaseTitle  = "title"
	CaseRandom = "random"
)

// ChangeCase rewrites the letter case of gated units. At granularity
// "all" the whole text is recased; at "word" and "char" the configured
// probability gates which units change.
type ChangeCase struct {
	style string
	cfg   augment.BaseConfig
}

// NewChangeCase creates a case transform. Granularity defaults to "word".
func NewChangeCase(style string, cfg augment.BaseConfig) (*ChangeCase, error) {
	switch style {
	case CaseLower, CaseUpper, CaseTitle, CaseRandom:
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"invalid case style: %q (must be 'lower', 'upper', 'title', or 'random')", style)
	}

	cfg = cfg.WithDefaults(augment.GranularityWord)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ChangeCase{style: style, cfg: cfg}, nil
}

var _ augment.Transformer = (*ChangeCase)(nil)

// Name implements [augment.Transformer].
func (*ChangeCase) Name() string { return FamilyChangeCase }

// DescribeConfig implements [augment.Describer].
func (t *ChangeCase) DescribeConfig() map[string]any {
	cfg := map[string]any(t.cfg.Fields())
	cfg[KeyCase] = t.style
	return cfg
}

// Apply implements [augment.Transformer].
func (t *ChangeCase) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilyChangeCase, texts, func(src string) (string, augment.Record, error) {
		var dst string
		var units, changed int

		switch t.cfg.Granularity {
		case augment.GranularityAll:
			dst = t.recase(rng, src)
			if src != "" {
				units = 1
			}
			if dst != src {
				changed = 1
			}
		case augment.GranularityWord:
			dst, units, changed = applyToWords(t.cfg, rng, src, hasLetter,
				func(rng *rand.Rand, w string) string { return t.recase(rng, w) })
		case augment.GranularityChar:
			dst, units, changed = applyToChars(t.cfg, rng, src, unicode.IsLetter,
				func(rng *rand.Rand, r rune) string { return string(t.recaseRune(rng, r)) })
		}

		fields := outcomeFields(t.cfg, units, changed)
		fields[KeyCase] = t.style
		return dst, fields, nil
	})
}

func (t *ChangeCase) recase(rng *rand.Rand, s string) string {
	switch t.style {
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseTitle:
		runes := []rune(strings.ToLower(s))
		for i, r := range runes {
			if unicode.IsLetter(r) {
				runes[i] = unicode.ToUpper(r)
				break
			}
		}
		return string(runes)
	default: // CaseRandom
		runes := []rune(s)
		for i, r := range runes {
			runes[i] = t.recaseRune(rng, r)
		}
		return string(runes)
	}
}

func (t *ChangeCase) recaseRune(rng *rand.Rand, r rune) rune {
	switch t.style {
	case CaseLower:
		return unicode.ToLower(r)
	case CaseUpper, CaseTitle:
		return unicode.ToUpper(r)
	default: // CaseRandom
		if rng.IntN(2) == 0 {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}
}
