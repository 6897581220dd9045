package transforms

import (
	"reflect"
	"strings"
	"testing"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/charmaps"
	"github.com/textmorph/textmorph/pkg/augment/lexicon"
	"github.com/textmorph/textmorph/pkg/errors"
)

func mustApply(t *testing.T, tr augment.Transformer, err error, texts ...string) ([]string, []augment.Record) {
	t.Helper()
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	outputs, records, err := tr.Apply(texts)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(outputs) != len(texts) || len(records) != len(texts) {
		t.Fatalf("got %d outputs and %d records for %d texts", len(outputs), len(records), len(texts))
	}
	return outputs, records
}

func TestBaselineNormalizesWhitespace(t *testing.T) {
	outputs, records := mustApply(t, NewBaseline(), nil, "  hello   world ", "")

	if outputs[0] != "hello world" {
		t.Errorf("output = %q, want %q", outputs[0], "hello world")
	}
	if outputs[1] != "" {
		t.Errorf("empty input mutated to %q", outputs[1])
	}
	if records[0].Name() != FamilyBaseline {
		t.Errorf("record name = %q", records[0].Name())
	}
}

func TestEncodeTextBase64(t *testing.T) {
	tr, err := NewEncodeText(EncoderBase64, augment.BaseConfig{Granularity: augment.GranularityAll})
	outputs, records := mustApply(t, tr, err, "Hello, world!")

	if outputs[0] != "SGVsbG8sIHdvcmxkIQ==" {
		t.Errorf("output = %q, want SGVsbG8sIHdvcmxkIQ==", outputs[0])
	}
	if enc, _ := records[0].String(KeyEncoder); enc != EncoderBase64 {
		t.Errorf("encoder field = %q", enc)
	}
}

func TestEncodeTextBase64WordGranularity(t *testing.T) {
	tr, err := NewEncodeText(EncoderBase64, augment.BaseConfig{
		AugP:        0.3,
		Granularity: augment.GranularityWord,
	})
	outputs, records := mustApply(t, tr, err, "Hello, world!")

	// One token gated in; punctuation is stripped before encoding and
	// reattached after.
	if outputs[0] != "SGVsbG8=, world!" {
		t.Errorf("output = %q, want %q", outputs[0], "SGVsbG8=, world!")
	}
	if units, _ := records[0].Int(augment.KeyUnitCount); units != 2 {
		t.Errorf("unit_count = %d, want 2", units)
	}
	if changed, _ := records[0].Int(augment.KeyAugCount); changed != 1 {
		t.Errorf("aug_count = %d, want 1", changed)
	}
}

func TestEncodeTextLeetspeak(t *testing.T) {
	tr, err := NewEncodeText(EncoderLeetspeak, augment.BaseConfig{Granularity: augment.GranularityAll})
	outputs, _ := mustApply(t, tr, err, "Hello, world!")

	if outputs[0] != "h3110, w0r1d!" {
		t.Errorf("output = %q, want %q", outputs[0], "h3110, w0r1d!")
	}
}

func TestEncodeTextRejectsCharGranularity(t *testing.T) {
	_, err := NewEncodeText(EncoderBase64, augment.BaseConfig{Granularity: augment.GranularityChar})
	if !errors.Is(err, errors.ErrCodeInvalidGranularity) {
		t.Errorf("err = %v, want INVALID_GRANULARITY", err)
	}
}

func TestInsertPunctuationCadenceOne(t *testing.T) {
	tr, err := NewInsertPunctuationChars(augment.GranularityAll, 1.0, false, 11)
	outputs, records := mustApply(t, tr, err, "hi")

	runes := []rune(outputs[0])
	if len(runes) != 3 {
		t.Fatalf("output = %q, want one separator between the two characters", outputs[0])
	}
	if runes[0] != 'h' || runes[2] != 'i' {
		t.Errorf("output = %q, original characters displaced", outputs[0])
	}

	valid := false
	for _, p := range charmaps.Punctuation {
		if string(runes[1]) == p {
			valid = true
		}
	}
	if !valid {
		t.Errorf("separator %q not in punctuation pool", string(runes[1]))
	}

	// No trailing separator.
	if strings.ContainsAny(string(runes[2]), ".;?!,:") {
		t.Errorf("trailing separator in %q", outputs[0])
	}
	if inserted, _ := records[0].Int(augment.KeyAugCount); inserted != 1 {
		t.Errorf("aug_count = %d, want 1", inserted)
	}
}

func TestInsertSeparatorsBetweenEveryCharacter(t *testing.T) {
	tr, err := NewInsertZeroWidthChars(augment.GranularityAll, 1.0, false, 5)
	outputs, records := mustApply(t, tr, err, "abcd")

	// n characters, n-1 separators.
	if got := len([]rune(outputs[0])); got != 7 {
		t.Errorf("len = %d, want 7 (%q)", got, outputs[0])
	}
	if inserted, _ := records[0].Int(augment.KeyAugCount); inserted != 3 {
		t.Errorf("aug_count = %d, want 3", inserted)
	}

	stripped := strings.Map(func(r rune) rune {
		for _, z := range charmaps.ZeroWidth {
			if string(r) == z {
				return -1
			}
		}
		return r
	}, outputs[0])
	if stripped != "abcd" {
		t.Errorf("stripping separators gives %q, want abcd", stripped)
	}
}

func TestInsertCadenceTwo(t *testing.T) {
	tr, err := NewInsertWhitespaceChars(augment.GranularityAll, 2.0, false, 5)
	outputs, records := mustApply(t, tr, err, "abcde")

	// Positions 2 and 4 of five runes.
	if inserted, _ := records[0].Int(augment.KeyAugCount); inserted != 2 {
		t.Errorf("aug_count = %d, want 2 (%q)", inserted, outputs[0])
	}
}

func TestInsertRejectsBadCadence(t *testing.T) {
	if _, err := NewInsertPunctuationChars(augment.GranularityAll, 0.5, false, 0); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestInsertTextPrepend(t *testing.T) {
	tr, err := NewInsertText([]string{"NOTE"}, 2, LocationPrepend, 9)
	outputs, _ := mustApply(t, tr, err, "a b")

	if outputs[0] != "NOTE NOTE a b" {
		t.Errorf("output = %q, want %q", outputs[0], "NOTE NOTE a b")
	}
}

func TestChangeCaseWholeText(t *testing.T) {
	tr, err := NewChangeCase(CaseUpper, augment.BaseConfig{AugP: 1, Granularity: augment.GranularityAll})
	outputs, records := mustApply(t, tr, err, "hello world")

	if outputs[0] != "HELLO WORLD" {
		t.Errorf("output = %q", outputs[0])
	}
	if changed, _ := records[0].Int(augment.KeyAugCount); changed != 1 {
		t.Errorf("aug_count = %d, want 1", changed)
	}
}

func TestChangeCaseZeroProbabilityIsNoOp(t *testing.T) {
	tr, err := NewChangeCase(CaseUpper, augment.BaseConfig{AugP: 0, Granularity: augment.GranularityWord})
	outputs, records := mustApply(t, tr, err, "hello world")

	if outputs[0] != "hello world" {
		t.Errorf("output = %q, want unchanged input", outputs[0])
	}
	if changed, _ := records[0].Int(augment.KeyAugCount); changed != 0 {
		t.Errorf("aug_count = %d, want 0", changed)
	}
}

func TestChangeCaseRejectsBadStyle(t *testing.T) {
	if _, err := NewChangeCase("shouting", augment.BaseConfig{AugP: 0.5}); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestContractions(t *testing.T) {
	tr, err := NewContractions(augment.BaseConfig{AugP: 1})
	outputs, records := mustApply(t, tr, err, "I would go but it is late")

	if outputs[0] != "I'd go but it's late" {
		t.Errorf("output = %q, want %q", outputs[0], "I'd go but it's late")
	}
	if units, _ := records[0].Int(augment.KeyUnitCount); units != 2 {
		t.Errorf("unit_count = %d, want 2", units)
	}
}

func TestContractionsPreservesCapitalization(t *testing.T) {
	tr, err := NewContractions(augment.BaseConfig{AugP: 1})
	outputs, _ := mustApply(t, tr, err, "Do not stop")

	if outputs[0] != "Don't stop" {
		t.Errorf("output = %q, want %q", outputs[0], "Don't stop")
	}
}

func TestMergeWordsAll(t *testing.T) {
	tr, err := NewMergeWords(augment.BaseConfig{AugP: 1})
	outputs, records := mustApply(t, tr, err, "a b c")

	if outputs[0] != "abc" {
		t.Errorf("output = %q, want abc", outputs[0])
	}
	if units, _ := records[0].Int(augment.KeyUnitCount); units != 2 {
		t.Errorf("unit_count = %d, want 2", units)
	}
}

func TestSplitWordsKeepsCharacters(t *testing.T) {
	tr, err := NewSplitWords(augment.BaseConfig{AugP: 1, Seed: 4})
	outputs, records := mustApply(t, tr, err, "hello there")

	words := strings.Fields(outputs[0])
	if len(words) != 4 {
		t.Errorf("output = %q, want every word split once", outputs[0])
	}
	if strings.ReplaceAll(outputs[0], " ", "") != "hellothere" {
		t.Errorf("output %q lost characters", outputs[0])
	}
	if changed, _ := records[0].Int(augment.KeyAugCount); changed != 2 {
		t.Errorf("aug_count = %d, want 2", changed)
	}
}

func TestReplaceBidirectional(t *testing.T) {
	tr, err := NewReplaceBidirectional(augment.GranularityAll)
	outputs, _ := mustApply(t, tr, err, "hi")

	want := charmaps.RightToLeftOverride + "ih" + charmaps.PopDirectionalFormatting
	if outputs[0] != want {
		t.Errorf("output = %q, want %q", outputs[0], want)
	}
}

func TestReplaceUpsideDown(t *testing.T) {
	tr, err := NewReplaceUpsideDown(augment.BaseConfig{AugP: 1, Granularity: augment.GranularityAll})
	outputs, _ := mustApply(t, tr, err, "hello")

	if outputs[0] != "ollǝɥ" {
		t.Errorf("output = %q, want ollǝɥ", outputs[0])
	}
}

func TestReplaceTextWholeMatchOnly(t *testing.T) {
	tr, err := NewReplaceText(map[string]string{"hello": "goodbye"})
	outputs, records := mustApply(t, tr, err, "hello", "hello world")

	if outputs[0] != "goodbye" {
		t.Errorf("exact match: output = %q, want goodbye", outputs[0])
	}
	if outputs[1] != "hello world" {
		t.Errorf("substring must not match: output = %q", outputs[1])
	}
	if replaced, _ := records[0].Bool(KeyReplaced); !replaced {
		t.Error("record 0 replaced = false, want true")
	}
	if replaced, _ := records[1].Bool(KeyReplaced); replaced {
		t.Error("record 1 replaced = true, want false")
	}
}

func TestSwapGenderedWords(t *testing.T) {
	tr, err := NewSwapGenderedWords(augment.BaseConfig{AugP: 1})
	outputs, _ := mustApply(t, tr, err, "The king spoke.")

	if outputs[0] != "The queen spoke." {
		t.Errorf("output = %q, want %q", outputs[0], "The queen spoke.")
	}
}

func TestSwapGenderedWordsRoundTrips(t *testing.T) {
	tr, err := NewSwapGenderedWords(augment.BaseConfig{AugP: 1})
	once, _ := mustApply(t, tr, err, "husband and wife")
	twice, _ := mustApply(t, tr, nil, once[0])

	if twice[0] != "husband and wife" {
		t.Errorf("double swap = %q, want original", twice[0])
	}
}

func TestSimulateTyposMisspelling(t *testing.T) {
	tr, err := NewSimulateTypos(TypoMisspelling, augment.BaseConfig{AugP: 1, Seed: 2})
	outputs, records := mustApply(t, tr, err, "because I said so")

	words := strings.Fields(outputs[0])
	variants := lexicon.Misspellings["because"]
	found := false
	for _, v := range variants {
		if words[0] == v {
			found = true
		}
	}
	if !found {
		t.Errorf("first word = %q, want a known misspelling of because", words[0])
	}
	// "said" also has an entry; both eligible words must be counted.
	if units, _ := records[0].Int(augment.KeyUnitCount); units != 2 {
		t.Errorf("unit_count = %d, want 2", units)
	}
}

func TestReplaceSimilarChars(t *testing.T) {
	tr, err := NewReplaceSimilarChars(augment.BaseConfig{AugP: 1, Seed: 8})
	outputs, records := mustApply(t, tr, err, "loss")

	if outputs[0] == "loss" {
		t.Error("no characters substituted at aug_p=1")
	}
	units, _ := records[0].Int(augment.KeyUnitCount)
	changed, _ := records[0].Int(augment.KeyAugCount)
	if units == 0 || changed == 0 {
		t.Errorf("unit_count = %d, aug_count = %d, want both positive", units, changed)
	}
}

func TestReplaceFunFontsFixedFont(t *testing.T) {
	tr, err := NewReplaceFunFonts("monospace", false, augment.BaseConfig{AugP: 1, Granularity: augment.GranularityAll})
	outputs, _ := mustApply(t, tr, err, "Go")

	font, _ := charmaps.FontByName("monospace")
	want := string([]rune{font.Map('G'), font.Map('o')})
	if outputs[0] != want {
		t.Errorf("output = %q, want %q", outputs[0], want)
	}
}

func TestReplaceWordsPreservesPunctuationAndCase(t *testing.T) {
	tr, err := NewReplaceWords(map[string]string{"cat": "dog"}, augment.BaseConfig{AugP: 1})
	outputs, _ := mustApply(t, tr, err, "Cat, meet cat.")

	if outputs[0] != "Dog, meet dog." {
		t.Errorf("output = %q, want %q", outputs[0], "Dog, meet dog.")
	}
}

func TestReplaceWordsEmptyMappingIsNoOp(t *testing.T) {
	tr, err := NewReplaceWords(nil, augment.BaseConfig{AugP: 1})
	outputs, records := mustApply(t, tr, err, "nothing to replace here")

	if outputs[0] != "nothing to replace here" {
		t.Errorf("output = %q, want input unchanged", outputs[0])
	}
	if name := records[0].Name(); name != FamilyReplaceWords {
		t.Errorf("record name = %q, want %q", name, FamilyReplaceWords)
	}
	if n, _ := records[0].Int(augment.KeyAugCount); n != 0 {
		t.Errorf("aug_count = %d, want 0", n)
	}
}

func TestApplyLambda(t *testing.T) {
	tr, err := NewApplyLambda("reverse", func(s string) (string, error) {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil
	})
	outputs, records := mustApply(t, tr, err, "abc")

	if outputs[0] != "cba" {
		t.Errorf("output = %q, want cba", outputs[0])
	}
	if label, _ := records[0].String(KeyLambda); label != "reverse" {
		t.Errorf("lambda field = %q, want reverse", label)
	}

	if _, err := NewApplyLambda("", nil); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("nil fn: %v, want INVALID_CONFIG", err)
	}
}

// TestDeterminism applies every stochastic family twice with the same
// seed and requires identical outputs and records.
func TestDeterminism(t *testing.T) {
	cfg := augment.BaseConfig{AugP: 0.6, Seed: 99}

	builders := map[string]func() (augment.Transformer, error){
		FamilyChangeCase: func() (augment.Transformer, error) {
			return NewChangeCase(CaseRandom, cfg)
		},
		FamilyContractions: func() (augment.Transformer, error) {
			return NewContractions(cfg)
		},
		FamilyInsertPunctuation: func() (augment.Transformer, error) {
			return NewInsertPunctuationChars(augment.GranularityAll, 1.0, true, 99)
		},
		FamilyInsertText: func() (augment.Transformer, error) {
			return NewInsertText([]string{"x", "y", "z"}, 2, LocationRandom, 99)
		},
		FamilyMergeWords: func() (augment.Transformer, error) {
			return NewMergeWords(cfg)
		},
		FamilyReplaceFunFonts: func() (augment.Transformer, error) {
			return NewReplaceFunFonts(FontRandom, true, augment.BaseConfig{AugP: 0.6, Seed: 99, Granularity: augment.GranularityWord})
		},
		FamilyReplaceSimilar: func() (augment.Transformer, error) {
			return NewReplaceSimilarChars(cfg)
		},
		FamilyReplaceSimilarUni: func() (augment.Transformer, error) {
			return NewReplaceSimilarUnicodeChars(cfg)
		},
		FamilyReplaceUpsideDown: func() (augment.Transformer, error) {
			return NewReplaceUpsideDown(augment.BaseConfig{AugP: 0.6, Seed: 99, Granularity: augment.GranularityChar})
		},
		FamilySimulateTypos: func() (augment.Transformer, error) {
			return NewSimulateTypos(TypoAll, cfg)
		},
		FamilySplitWords: func() (augment.Transformer, error) {
			return NewSplitWords(cfg)
		},
		FamilySwapGenderedWords: func() (augment.Transformer, error) {
			return NewSwapGenderedWords(cfg)
		},
	}

	texts := []string{"The king said hello to the queen because it was morning.", "do not panic"}

	for family, build := range builders {
		t.Run(family, func(t *testing.T) {
			a, err := build()
			if err != nil {
				t.Fatalf("construct: %v", err)
			}
			b, err := build()
			if err != nil {
				t.Fatalf("construct: %v", err)
			}

			out1, rec1, err := a.Apply(texts)
			if err != nil {
				t.Fatalf("first apply: %v", err)
			}
			out2, rec2, err := b.Apply(texts)
			if err != nil {
				t.Fatalf("second apply: %v", err)
			}

			if !reflect.DeepEqual(out1, out2) {
				t.Errorf("outputs diverged:\n%v\n%v", out1, out2)
			}
			if !reflect.DeepEqual(rec1, rec2) {
				t.Errorf("records diverged:\n%v\n%v", rec1, rec2)
			}
		})
	}
}

func TestEveryFamilyEmitsOneRecordPerText(t *testing.T) {
	texts := []string{"one two three", "", "four"}

	tr, err := NewChangeCase(CaseLower, augment.BaseConfig{AugP: 0.5, Seed: 1})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	_, records, err := tr.Apply(texts)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	for i, rec := range records {
		if src, _ := rec.String(augment.KeySrcText); src != texts[i] {
			t.Errorf("record %d src_text = %q, want %q", i, src, texts[i])
		}
	}
}
