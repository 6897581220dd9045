package transforms

import (
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/charmaps"
	"github.com/textmorph/textmorph/pkg/augment/lexicon"
	"github.com/textmorph/textmorph/pkg/errors"
)

// Typo categories accepted by [NewSimulateTypos].
const (
	TypoMisspelling = "misspelling"
	TypoKeyboard    = "keyboard"
	TypoSwap        = "swap"
	TypoAll         = "all"
)

// SimulateTypos injects realistic typing mistakes into gated words: known
// misspellings from the lexicon, fat-finger substitutions from keyboard
// adjacency, or adjacent-character swaps.
type SimulateTypos struct {
	typoType string
	cfg      augment.BaseConfig
}

// NewSimulateTypos creates a typo transform.
func NewSimulateTypos(typoType string, cfg augment.BaseConfig) (*SimulateTypos, error) {
	switch typoType {
	case TypoMisspelling, TypoKeyboard, TypoSwap, TypoAll:
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"invalid typo type: %q (must be 'misspelling', 'keyboard', 'swap', or 'all')", typoType)
	}

	cfg = cfg.WithDefaults(augment.GranularityWord)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SimulateTypos{typoType: typoType, cfg: cfg}, nil
}

var _ augment.Transformer = (*SimulateTypos)(nil)

// Name implements [augment.Transformer].
func (*SimulateTypos) Name() string { return FamilySimulateTypos }

// DescribeConfig implements [augment.Describer].
func (t *SimulateTypos) DescribeConfig() map[string]any {
	cfg := map[string]any(t.cfg.Fields())
	cfg[KeyTypoType] = t.typoType
	return cfg
}

// Apply implements [augment.Transformer].
func (t *SimulateTypos) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilySimulateTypos, texts, func(src string) (string, augment.Record, error) {
		dst, units, changed := applyToWords(t.cfg, rng, src, t.eligible, t.mistype)
		fields := outcomeFields(t.cfg, units, changed)
		fields[KeyTypoType] = t.typoType
		return dst, fields, nil
	})
}

func (t *SimulateTypos) eligible(w string) bool {
	_, core, _ := splitEdgePunct(w)
	switch t.typoType {
	case TypoMisspelling:
		_, ok := lexicon.Misspellings[strings.ToLower(core)]
		return ok
	case TypoKeyboard:
		return strings.ContainsFunc(core, hasNeighbor)
	case TypoSwap:
		return len([]rune(core)) >= 2
	default: // TypoAll
		if _, ok := lexicon.Misspellings[strings.ToLower(core)]; ok {
			return true
		}
		return len([]rune(core)) >= 2 || strings.ContainsFunc(core, hasNeighbor)
	}
}

func (t *SimulateTypos) mistype(rng *rand.Rand, w string) string {
	lead, core, trail := splitEdgePunct(w)
	if core == "" {
		return w
	}

	op := t.typoType
	if op == TypoAll {
		// Prefer a known misspelling when one exists; otherwise flip a
		// coin between the mechanical mistakes.
		if _, ok := lexicon.Misspellings[strings.ToLower(core)]; ok {
			op = TypoMisspelling
		} else if rng.IntN(2) == 0 {
			op = TypoKeyboard
		} else {
			op = TypoSwap
		}
	}

	var typo string
	switch op {
	case TypoMisspelling:
		variants := lexicon.Misspellings[strings.ToLower(core)]
		if len(variants) == 0 {
			return w
		}
		typo = matchCapitalization(core, variants[rng.IntN(len(variants))])
	case TypoKeyboard:
		typo = fatFinger(rng, core)
	default: // TypoSwap
		typo = swapAdjacent(rng, core)
	}

	return lead + typo + trail
}

// fatFinger substitutes one random letter with a key adjacent to it.
func fatFinger(rng *rand.Rand, s string) string {
	runes := []rune(s)

	var candidates []int
	for i, r := range runes {
		if hasNeighbor(r) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return s
	}

	i := candidates[rng.IntN(len(candidates))]
	neighbors := charmaps.QwertyNeighbors[unicode.ToLower(runes[i])]
	repl := neighbors[rng.IntN(len(neighbors))]
	if unicode.IsUpper(runes[i]) {
		repl = unicode.ToUpper(repl)
	}
	runes[i] = repl

	return string(runes)
}

// swapAdjacent transposes two neighboring characters.
func swapAdjacent(rng *rand.Rand, s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	i := rng.IntN(len(runes) - 1)
	runes[i], runes[i+1] = runes[i+1], runes[i]
	return string(runes)
}

func hasNeighbor(r rune) bool {
	_, ok := charmaps.QwertyNeighbors[unicode.ToLower(r)]
	return ok
}
