package intensity

import (
	"testing"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/transforms"
	"github.com/textmorph/textmorph/pkg/errors"
)

func compositeRecord(steps ...augment.Record) augment.Record {
	rec := augment.NewRecord(augment.NameCompose, "a", "b")
	rec[augment.KeySteps] = steps
	return rec
}

func TestAggregatorMax(t *testing.T) {
	agg, err := NewAggregator(StrategyMax)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}

	rec := compositeRecord(
		leafRecord(transforms.FamilyChangeCase, 4, 1),  // 25
		leafRecord(transforms.FamilySplitWords, 2, 2),  // 100
		leafRecord(transforms.FamilyMergeWords, 10, 0), // 0
	)

	got, err := agg.Aggregate(rec)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 100 {
		t.Errorf("max = %v, want 100", got)
	}
}

func TestAggregatorMean(t *testing.T) {
	agg, err := NewAggregator(StrategyMean)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}

	rec := compositeRecord(
		leafRecord(transforms.FamilyChangeCase, 4, 2), // 50
		leafRecord(transforms.FamilySplitWords, 2, 2), // 100
	)

	got, err := agg.Aggregate(rec)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 75 {
		t.Errorf("mean = %v, want 75", got)
	}
}

func TestAggregatorRecursesNestedComposites(t *testing.T) {
	inner := compositeRecord(leafRecord(transforms.FamilyChangeCase, 1, 1)) // 100
	outer := compositeRecord(inner, leafRecord(transforms.FamilyMergeWords, 1, 0))

	agg, err := NewAggregator(StrategyMean)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	got, err := agg.Aggregate(outer)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 50 {
		t.Errorf("nested mean = %v, want 50", got)
	}
}

func TestAggregatorLeafPassThrough(t *testing.T) {
	agg, err := NewAggregator(StrategyMax)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}

	got, err := agg.Aggregate(leafRecord(transforms.FamilyChangeCase, 4, 2))
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 50 {
		t.Errorf("leaf = %v, want 50", got)
	}
}

func TestAggregatorCompositeWithoutStepsMalformed(t *testing.T) {
	agg, err := NewAggregator(StrategyMax)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}

	rec := augment.NewRecord(augment.NameOneOf, "a", "b")
	if _, err := agg.Aggregate(rec); !errors.Is(err, errors.ErrCodeMalformedMetadata) {
		t.Errorf("err = %v, want MALFORMED_METADATA", err)
	}
}

func TestAggregatorBadStrategy(t *testing.T) {
	if _, err := NewAggregator("median"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestAggregateOverOneOfRecord(t *testing.T) {
	inner, err := transforms.NewSwapGenderedWords(augment.BaseConfig{AugP: 1})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	o, err := augment.NewOneOf([]augment.Transformer{inner})
	if err != nil {
		t.Fatalf("NewOneOf: %v", err)
	}

	_, records, err := o.Apply([]string{"the king"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	agg, err := NewAggregator(StrategyMax)
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	got, err := agg.Aggregate(records[0])
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got != 100 {
		t.Errorf("intensity = %v, want 100", got)
	}
}
