package transforms

import (
	"testing"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
)

func TestFromConfigBuildsEveryConfigurableFamily(t *testing.T) {
	configs := map[string]map[string]any{
		FamilyBaseline:          {},
		FamilyChangeCase:        {"case": "upper", "aug_p": 1.0},
		FamilyContractions:      {"aug_p": 1.0},
		FamilyEncodeText:        {"encoder": "base64"},
		FamilyInsertPunctuation: {"cadence": int64(2), "vary_chars": true, "seed": int64(7)},
		FamilyInsertWhitespace:  {},
		FamilyInsertZeroWidth:   {"cadence": 1.5},
		FamilyInsertText:        {"pool": []any{"a", "b"}, "num_insertions": int64(2)},
		FamilyMergeWords:        {"aug_p": 0.5, "seed": int64(3)},
		FamilyReplaceBidirection: {
			"granularity": "word",
		},
		FamilyReplaceFunFonts:   {"font": "bold", "aug_p": 1.0},
		FamilyReplaceSimilar:    {"aug_p": 0.4},
		FamilyReplaceSimilarUni: {},
		FamilyReplaceText:       {"mapping": map[string]any{"a": "b"}},
		FamilyReplaceUpsideDown: {},
		FamilyReplaceWords:      {"mapping": map[string]any{"cat": "dog"}},
		FamilySimulateTypos:     {"typo_type": "swap"},
		FamilySplitWords:        {},
		FamilySwapGenderedWords: {},
	}

	for family, cfg := range configs {
		t.Run(family, func(t *testing.T) {
			tr, err := FromConfig(family, cfg)
			if err != nil {
				t.Fatalf("FromConfig(%s): %v", family, err)
			}
			if tr.Name() != family {
				t.Errorf("Name() = %q, want %q", tr.Name(), family)
			}
			if _, _, err := tr.Apply([]string{"The king said hello"}); err != nil {
				t.Errorf("Apply: %v", err)
			}
		})
	}
}

func TestFromConfigUnknownFamily(t *testing.T) {
	if _, err := FromConfig("reverse_words", nil); !errors.Is(err, errors.ErrCodeUnknownFamily) {
		t.Errorf("err = %v, want UNKNOWN_FAMILY", err)
	}
}

func TestFromConfigApplyLambdaRejected(t *testing.T) {
	if _, err := FromConfig(FamilyApplyLambda, nil); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestFromConfigInvalidValuesSurface(t *testing.T) {
	if _, err := FromConfig(FamilyChangeCase, map[string]any{"aug_p": 1.5}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("aug_p out of range: %v, want INVALID_CONFIG", err)
	}
	if _, err := FromConfig(FamilyInsertPunctuation, map[string]any{"cadence": 0.1}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad cadence: %v, want INVALID_CONFIG", err)
	}
	if _, err := FromConfig(FamilyReplaceText, map[string]any{}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing mapping: %v, want INVALID_CONFIG", err)
	}
}

func TestFamiliesCoverRegistry(t *testing.T) {
	families := Families()
	if len(families) != 20 {
		t.Fatalf("len(Families()) = %d, want 20", len(families))
	}

	seen := make(map[string]bool, len(families))
	for _, f := range families {
		if seen[f] {
			t.Errorf("family %q listed twice", f)
		}
		seen[f] = true
	}
}

func TestRegistryRoundTripWithRecords(t *testing.T) {
	tr, err := FromConfig(FamilySwapGenderedWords, map[string]any{"aug_p": 1.0})
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}

	_, records, err := tr.Apply([]string{"the king"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if records[0].Name() != FamilySwapGenderedWords {
		t.Errorf("record name = %q", records[0].Name())
	}
	if g, _ := records[0].String(augment.KeyGranularity); g != string(augment.GranularityWord) {
		t.Errorf("granularity = %q, want word", g)
	}
}
