package pipeline

import (
	"bytes"
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/cache"
	"github.com/textmorph/textmorph/pkg/errors"
)

func upperStep() StepSpec {
	return StepSpec{
		Family: "change_case",
		Config: map[string]any{"case": "upper", "granularity": "all", "aug_p": 1.0},
	}
}

func TestExecuteSingleStep(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Steps: []StepSpec{upperStep()},
		Texts: []string{"hello world"},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Output[0] != "HELLO WORLD" {
		t.Errorf("output = %q, want HELLO WORLD", result.Output[0])
	}
	if len(result.Records) != 1 || len(result.Intensities) != 1 {
		t.Fatalf("records/intensities = %d/%d, want 1/1", len(result.Records), len(result.Intensities))
	}
	if result.Intensities[0] != 100 {
		t.Errorf("intensity = %v, want 100", result.Intensities[0])
	}
	if result.RunID == "" {
		t.Error("missing run id")
	}
	if result.CacheHit {
		t.Error("first run reported a cache hit")
	}
	if result.Stats.TextCount != 1 || result.Stats.LeafCount != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
}

func TestRunnerLoggerFlowsIntoExecute(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(nil, nil, log.New(&buf))
	defer r.Close()

	if _, err := r.Execute(context.Background(), Options{
		Steps: []StepSpec{upperStep()},
		Texts: []string{"hello"},
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(buf.String(), "applied transforms") {
		t.Errorf("runner logger saw no Execute output: %q", buf.String())
	}

	buf.Reset()
	if _, err := r.Execute(context.Background(), Options{
		Steps:  []StepSpec{upperStep()},
		Texts:  []string{"hello"},
		Logger: log.New(io.Discard),
	}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("runner logger used despite explicit options logger: %q", buf.String())
	}
}

func TestExecuteMultiStepComposes(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Steps: []StepSpec{
			upperStep(),
			{Family: "split_words", Config: map[string]any{"aug_p": 1.0}},
		},
		Texts: []string{"hello"},
		Seed:  3,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	rec := result.Records[0]
	if rec.Name() != augment.NameCompose {
		t.Fatalf("record name = %q, want %q", rec.Name(), augment.NameCompose)
	}
	steps, ok := rec.Steps()
	if !ok || len(steps) != 2 {
		t.Fatalf("steps = %v (ok=%v), want 2 nested records", steps, ok)
	}
	if result.Stats.LeafCount != 2 {
		t.Errorf("LeafCount = %d, want 2", result.Stats.LeafCount)
	}
}

func TestExecuteCacheRoundTrip(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := Options{
		Steps: []StepSpec{{Family: "simulate_typos", Config: map[string]any{"aug_p": 1.0}}},
		Texts: []string{"the quick brown fox"},
		Seed:  11,
	}

	first, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	second, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	if !second.CacheHit {
		t.Error("second run missed the cache")
	}
	if !reflect.DeepEqual(first.Output, second.Output) {
		t.Errorf("cached output %v differs from computed %v", second.Output, first.Output)
	}
	if !reflect.DeepEqual(first.Intensities, second.Intensities) {
		t.Errorf("cached intensities %v differ from computed %v", second.Intensities, first.Intensities)
	}

	refreshed, err := r.Execute(context.Background(), Options{
		Steps:   opts.Steps,
		Texts:   opts.Texts,
		Seed:    opts.Seed,
		Refresh: true,
	})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheHit {
		t.Error("refresh run served from cache")
	}
	if !reflect.DeepEqual(first.Output, refreshed.Output) {
		t.Error("refresh run diverged despite identical seed")
	}
}

func TestExecuteSeedReproducibility(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	opts := Options{
		Steps: []StepSpec{{Family: "insert_punctuation_chars", Config: map[string]any{"cadence": 2.0}}},
		Texts: []string{"deterministic output"},
		Seed:  99,
	}

	a, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	b, err := r.Execute(context.Background(), Options{Steps: opts.Steps, Texts: opts.Texts, Seed: opts.Seed, Refresh: true})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !reflect.DeepEqual(a.Output, b.Output) {
		t.Errorf("same seed produced %v then %v", a.Output, b.Output)
	}
}

func TestExecuteRejectsBadOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	cases := []struct {
		name string
		opts Options
	}{
		{"no steps", Options{Texts: []string{"x"}}},
		{"empty batch", Options{Steps: []StepSpec{upperStep()}, Texts: nil}},
		{"bad strategy", Options{Steps: []StepSpec{upperStep()}, Texts: []string{"x"}, Strategy: "median"}},
		{"unknown family", Options{Steps: []StepSpec{{Family: "reverse_words"}}, Texts: []string{"x"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := r.Execute(context.Background(), tc.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseSpec(t *testing.T) {
	doc := []byte(`
name = "demo"
seed = 7
strategy = "mean"
texts = ["hello world"]

[[steps]]
family = "one_of"

[[steps.candidates]]
family = "change_case"
weight = 3.0

[steps.candidates.config]
case = "upper"
granularity = "all"
aug_p = 1.0

[[steps.candidates]]
family = "baseline"
weight = 1.0
`)

	spec, err := ParseSpec(doc)
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	if spec.Name != "demo" || spec.Seed != 7 || spec.Strategy != "mean" {
		t.Errorf("header = %q/%d/%q", spec.Name, spec.Seed, spec.Strategy)
	}
	if len(spec.Steps) != 1 || len(spec.Steps[0].Candidates) != 2 {
		t.Fatalf("steps = %+v", spec.Steps)
	}
	if spec.Steps[0].Candidates[0].Weight != 3 {
		t.Errorf("weight = %v, want 3", spec.Steps[0].Candidates[0].Weight)
	}

	opts := spec.Options(nil)
	if !reflect.DeepEqual(opts.Texts, []string{"hello world"}) {
		t.Errorf("texts = %v", opts.Texts)
	}
	if override := spec.Options([]string{"other"}); override.Texts[0] != "other" {
		t.Errorf("override texts = %v", override.Texts)
	}

	r := NewRunner(nil, nil, nil)
	defer r.Close()
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Records[0].Name() != augment.NameOneOf {
		t.Errorf("record name = %q, want %q", result.Records[0].Name(), augment.NameOneOf)
	}
}

func TestParseSpecRejectsEmpty(t *testing.T) {
	if _, err := ParseSpec([]byte(`name = "empty"`)); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
	if _, err := ParseSpec([]byte(`steps = "nope"`)); err == nil {
		t.Error("malformed TOML accepted")
	}
}

func TestBuildStepsNestedTree(t *testing.T) {
	spec := StepSpec{
		Family: augment.NameCompose,
		Steps: []StepSpec{
			upperStep(),
			{
				Family: augment.NameOneOf,
				Candidates: []StepSpec{
					{Family: "split_words", Config: map[string]any{"aug_p": 1.0}},
					{Family: "merge_words", Config: map[string]any{"aug_p": 1.0}},
				},
			},
		},
	}

	tr, err := spec.Build(5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tr.Name() != augment.NameCompose {
		t.Errorf("root = %q, want compose", tr.Name())
	}
	if got := spec.leafCount(); got != 3 {
		t.Errorf("leafCount = %d, want 3", got)
	}

	if _, _, err := tr.Apply([]string{"one two three"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
}

func TestBuildRejectsNestedLeaf(t *testing.T) {
	spec := StepSpec{Family: "change_case", Steps: []StepSpec{upperStep()}}
	if _, err := spec.Build(0); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec("/nonexistent/pipeline.toml"); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}
