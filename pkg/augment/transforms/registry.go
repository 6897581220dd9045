package transforms

import (
	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
)

// DefaultAugP gates roughly a third of eligible units when a
// configuration leaves the probability unset.
const DefaultAugP = 0.3

// FromConfig materializes a transform from its family name and a decoded
// configuration map, as produced by TOML or JSON pipeline files. The
// switch is the closed registry of known families; apply_lambda is the
// one family that cannot be built here because it requires a function
// value.
func FromConfig(family string, cfg map[string]any) (augment.Transformer, error) {
	base := baseConfigFrom(cfg)

	switch family {
	case FamilyBaseline:
		return NewBaseline(), nil

	case FamilyApplyLambda:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"apply_lambda requires a function value and cannot be built from configuration")

	case FamilyChangeCase:
		return NewChangeCase(cfgString(cfg, KeyCase, CaseRandom), base)

	case FamilyContractions:
		return NewContractions(base)

	case FamilyEncodeText:
		return NewEncodeText(cfgString(cfg, KeyEncoder, EncoderBase64), base)

	case FamilyInsertPunctuation:
		return NewInsertPunctuationChars(insertGranularity(cfg),
			cfgFloat(cfg, augment.KeyCadence, 1.0), cfgBool(cfg, KeyVaryChars), cfgSeed(cfg))

	case FamilyInsertWhitespace:
		return NewInsertWhitespaceChars(insertGranularity(cfg),
			cfgFloat(cfg, augment.KeyCadence, 1.0), cfgBool(cfg, KeyVaryChars), cfgSeed(cfg))

	case FamilyInsertZeroWidth:
		return NewInsertZeroWidthChars(insertGranularity(cfg),
			cfgFloat(cfg, augment.KeyCadence, 1.0), cfgBool(cfg, KeyVaryChars), cfgSeed(cfg))

	case FamilyInsertText:
		num := cfgInt(cfg, KeyNumInsertions, 1)
		location := cfgString(cfg, KeyInsertionLocation, LocationRandom)
		return NewInsertText(cfgStrings(cfg, "pool"), num, location, cfgSeed(cfg))

	case FamilyMergeWords:
		return NewMergeWords(base)

	case FamilyReplaceBidirection:
		return NewReplaceBidirectional(insertGranularity(cfg))

	case FamilyReplaceFunFonts:
		return NewReplaceFunFonts(cfgString(cfg, KeyFont, FontRandom), cfgBool(cfg, "vary_fonts"), base)

	case FamilyReplaceSimilar:
		return NewReplaceSimilarChars(base)

	case FamilyReplaceSimilarUni:
		return NewReplaceSimilarUnicodeChars(base)

	case FamilyReplaceText:
		if mapping := cfgStringMap(cfg, "mapping"); len(mapping) > 0 {
			return NewReplaceText(mapping)
		}
		return NewReplaceTextAll(cfgString(cfg, "replacement", ""))

	case FamilyReplaceUpsideDown:
		return NewReplaceUpsideDown(base)

	case FamilyReplaceWords:
		return NewReplaceWords(cfgStringMap(cfg, "mapping"), base)

	case FamilySimulateTypos:
		return NewSimulateTypos(cfgString(cfg, KeyTypoType, TypoAll), base)

	case FamilySplitWords:
		return NewSplitWords(base)

	case FamilySwapGenderedWords:
		return NewSwapGenderedWords(base)

	default:
		return nil, errors.New(errors.ErrCodeUnknownFamily, "unknown transform family: %q", family)
	}
}

func baseConfigFrom(cfg map[string]any) augment.BaseConfig {
	return augment.BaseConfig{
		AugP:        cfgFloat(cfg, augment.KeyAugP, DefaultAugP),
		AugMin:      cfgInt(cfg, augment.KeyAugMin, 0),
		AugMax:      cfgInt(cfg, augment.KeyAugMax, 0),
		Granularity: augment.Granularity(cfgString(cfg, augment.KeyGranularity, "")),
		Seed:        cfgSeed(cfg),
	}
}

// insertGranularity reads the granularity for transforms that default to
// whole-text units.
func insertGranularity(cfg map[string]any) augment.Granularity {
	return augment.Granularity(cfgString(cfg, augment.KeyGranularity, string(augment.GranularityAll)))
}

// ===== Config map decoding =====
//
// TOML decodes integers as int64 and JSON decodes every number as
// float64; the readers below accept both so either source works.

func cfgString(cfg map[string]any, key, def string) string {
	if s, ok := cfg[key].(string); ok {
		return s
	}
	return def
}

func cfgFloat(cfg map[string]any, key string, def float64) float64 {
	switch v := cfg[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return def
	}
}

func cfgInt(cfg map[string]any, key string, def int) int {
	switch v := cfg[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}

func cfgSeed(cfg map[string]any) uint64 {
	switch v := cfg["seed"].(type) {
	case uint64:
		return v
	case int64:
		return uint64(v)
	case int:
		return uint64(v)
	case float64:
		return uint64(v)
	default:
		return 0
	}
}

func cfgBool(cfg map[string]any, key string) bool {
	b, _ := cfg[key].(bool)
	return b
}

func cfgStrings(cfg map[string]any, key string) []string {
	switch v := cfg[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func cfgStringMap(cfg map[string]any, key string) map[string]string {
	switch v := cfg[key].(type) {
	case map[string]string:
		return v
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, e := range v {
			if s, ok := e.(string); ok {
				out[k] = s
			}
		}
		return out
	default:
		return nil
	}
}
