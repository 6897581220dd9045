package transforms

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/charmaps"
	"github.com/textmorph/textmorph/pkg/errors"
)

// FontRandom selects a random font per unit instead of a fixed one.
const FontRandom = "random"

// ReplaceFunFonts rewrites letters and digits into a decorative Unicode
// alphabet. At granularity "all" the whole text uses one font; at "word"
// the configured probability gates which words are restyled, and with
// vary_fonts each restyled word may draw a different font.
type ReplaceFunFonts struct {
	font      string
	varyFonts bool
	cfg       augment.BaseConfig
}

// NewReplaceFunFonts creates a font transform. The font may name an entry
// of [charmaps.Fonts] or be [FontRandom].
func NewReplaceFunFonts(font string, varyFonts bool, cfg augment.BaseConfig) (*ReplaceFunFonts, error) {
	if font == "" {
		font = FontRandom
	}
	if font != FontRandom {
		if _, ok := charmaps.FontByName(font); !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown font: %q", font)
		}
	}

	cfg = cfg.WithDefaults(augment.GranularityAll)
	if cfg.Granularity == augment.GranularityChar {
		return nil, errors.New(errors.ErrCodeInvalidGranularity,
			"replace_fun_fonts granularity must be 'all' or 'word'")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ReplaceFunFonts{font: font, varyFonts: varyFonts, cfg: cfg}, nil
}

var _ augment.Transformer = (*ReplaceFunFonts)(nil)

// Name implements [augment.Transformer].
func (*ReplaceFunFonts) Name() string { return FamilyReplaceFunFonts }

// DescribeConfig implements [augment.Describer].
func (t *ReplaceFunFonts) DescribeConfig() map[string]any {
	cfg := map[string]any(t.cfg.Fields())
	cfg[KeyFont] = t.font
	return cfg
}

// Apply implements [augment.Transformer].
func (t *ReplaceFunFonts) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilyReplaceFunFonts, texts, func(src string) (string, augment.Record, error) {
		var dst string
		var units, changed int

		if t.cfg.Granularity == augment.GranularityAll {
			dst = restyle(t.pickFont(rng), src)
			if src != "" {
				units = 1
			}
			if dst != src {
				changed = 1
			}
		} else {
			font := t.pickFont(rng)
			dst, units, changed = applyToWords(t.cfg, rng, src, hasStylable,
				func(rng *rand.Rand, w string) string {
					if t.varyFonts {
						font = t.pickFont(rng)
					}
					return restyle(font, w)
				})
		}

		fields := outcomeFields(t.cfg, units, changed)
		fields[KeyFont] = t.font
		return dst, fields, nil
	})
}

func (t *ReplaceFunFonts) pickFont(rng *rand.Rand) charmaps.Font {
	if t.font == FontRandom {
		return charmaps.Fonts[rng.IntN(len(charmaps.Fonts))]
	}
	font, _ := charmaps.FontByName(t.font)
	return font
}

func restyle(font charmaps.Font, s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		b.WriteRune(font.Map(r))
	}
	return b.String()
}

func hasStylable(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || unicode.IsDigit(r)
	})
}
