// Package intensity derives a [0, 100] change score from a metadata
// record alone, with no access to the transform that produced it. Scores
// can therefore be recomputed later from persisted fixtures without
// re-running augmentation.
//
// Each leaf family has its own scale: 0 always means no observable
// change, 100 means the family's maximal change (every eligible unit
// altered, or the whole text replaced). Composite records have no
// derived intensity; see [Aggregator].
package intensity

import (
	"math"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/transforms"
	"github.com/textmorph/textmorph/pkg/errors"
)

// Func computes the intensity of one family's records. Implementations
// are pure: same record in, same score out.
type Func func(rec augment.Record) (float64, error)

// funcs is the closed dispatch table, one entry per leaf family.
var funcs = map[string]Func{
	transforms.FamilyBaseline:           Baseline,
	transforms.FamilyApplyLambda:        ApplyLambda,
	transforms.FamilyChangeCase:         ChangeRatio,
	transforms.FamilyContractions:       ChangeRatio,
	transforms.FamilyEncodeText:         ChangeRatio,
	transforms.FamilyInsertPunctuation:  CadenceDensity,
	transforms.FamilyInsertWhitespace:   CadenceDensity,
	transforms.FamilyInsertZeroWidth:    CadenceDensity,
	transforms.FamilyInsertText:         InsertText,
	transforms.FamilyMergeWords:         ChangeRatio,
	transforms.FamilyReplaceBidirection: ChangeRatio,
	transforms.FamilyReplaceFunFonts:    ChangeRatio,
	transforms.FamilyReplaceSimilar:     ChangeRatio,
	transforms.FamilyReplaceSimilarUni:  ChangeRatio,
	transforms.FamilyReplaceText:        ReplaceText,
	transforms.FamilyReplaceUpsideDown:  ChangeRatio,
	transforms.FamilyReplaceWords:       ChangeRatio,
	transforms.FamilySimulateTypos:      ChangeRatio,
	transforms.FamilySplitWords:         ChangeRatio,
	transforms.FamilySwapGenderedWords:  ChangeRatio,
}

// For dispatches a record to its family's intensity function.
//
// Composite records (compose, one_of) return an UNSUPPORTED error: the
// engine does not invent an aggregate; callers who want one use an
// [Aggregator] explicitly.
func For(rec augment.Record) (float64, error) {
	name := rec.Name()
	if name == "" {
		return 0, errors.New(errors.ErrCodeMalformedMetadata, "record has no name field")
	}
	if name == augment.NameCompose || name == augment.NameOneOf {
		return 0, errors.New(errors.ErrCodeUnsupported,
			"composite record %q has no derived intensity; aggregate nested step records explicitly", name)
	}

	fn, ok := funcs[name]
	if !ok {
		return 0, errors.New(errors.ErrCodeUnknownFamily, "unknown transform family: %q", name)
	}
	return fn(rec)
}

// Baseline always scores zero.
func Baseline(rec augment.Record) (float64, error) {
	return 0, nil
}

// ApplyLambda scores 100 when the mutation changed the text and 0
// otherwise; an opaque function admits no finer scale.
func ApplyLambda(rec augment.Record) (float64, error) {
	src, ok := rec.String(augment.KeySrcText)
	if !ok {
		return 0, missingField(rec, augment.KeySrcText)
	}
	dst, ok := rec.String(augment.KeyDstText)
	if !ok {
		return 0, missingField(rec, augment.KeyDstText)
	}
	if src == dst {
		return 0, nil
	}
	return 100, nil
}

// InsertText scores by the share of the output the insertions make up.
func InsertText(rec augment.Record) (float64, error) {
	num, ok := rec.Int(transforms.KeyNumInsertions)
	if !ok {
		return 0, missingField(rec, transforms.KeyNumInsertions)
	}
	units, ok := rec.Int(augment.KeyUnitCount)
	if !ok {
		return 0, missingField(rec, augment.KeyUnitCount)
	}
	if num <= 0 {
		return 0, nil
	}
	return float64(num) / float64(num+units) * 100, nil
}

// ReplaceText scores 100 when the text was replaced and 0 otherwise.
func ReplaceText(rec augment.Record) (float64, error) {
	replaced, ok := rec.Bool(transforms.KeyReplaced)
	if !ok {
		return 0, missingField(rec, transforms.KeyReplaced)
	}
	if replaced {
		return 100, nil
	}
	return 0, nil
}

// ChangeRatio scores by the share of eligible units actually changed.
// It serves every family that records unit and change counts.
func ChangeRatio(rec augment.Record) (float64, error) {
	units, ok := rec.Int(augment.KeyUnitCount)
	if !ok {
		return 0, missingField(rec, augment.KeyUnitCount)
	}
	changed, ok := rec.Int(augment.KeyAugCount)
	if !ok {
		return 0, missingField(rec, augment.KeyAugCount)
	}
	if units <= 0 || changed <= 0 {
		return 0, nil
	}
	return math.Min(float64(changed)/float64(units), 1) * 100, nil
}

// CadenceDensity scores separator insertion by its density: cadence 1
// means a separator at every position, cadence c one in every c.
func CadenceDensity(rec augment.Record) (float64, error) {
	cadence, ok := rec.Float(augment.KeyCadence)
	if !ok {
		return 0, missingField(rec, augment.KeyCadence)
	}
	inserted, ok := rec.Int(augment.KeyAugCount)
	if !ok {
		return 0, missingField(rec, augment.KeyAugCount)
	}
	if inserted == 0 || cadence < 1 {
		return 0, nil
	}
	return math.Min(100/cadence, 100), nil
}

func missingField(rec augment.Record, key string) error {
	return errors.New(errors.ErrCodeMalformedMetadata,
		"record %q is missing required field %q", rec.Name(), key)
}
