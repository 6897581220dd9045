// Package fixtures persists golden metadata records for regression
// testing. A fixture file is a JSON object mapping transform family
// names to lists of records, one per canonical test text. Because the
// engine is deterministic given a seed, comparing fresh records against
// the stored ones catches any behavioral drift.
package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
)

// Set maps transform family names to their golden records.
type Set map[string][]augment.Record

// Load reads a fixture file.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFixtureNotFound, "fixture file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read fixture file %s", path)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFixture, err, "parse fixture file %s", path)
	}
	return set, nil
}

// Save writes the set as an indented JSON file, creating parent
// directories as needed.
func (s Set) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal fixtures")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create fixture directory")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write fixture file %s", path)
	}
	return nil
}

// Records returns the stored records for a family.
func (s Set) Records(family string) ([]augment.Record, error) {
	recs, ok := s[family]
	if !ok {
		return nil, errors.New(errors.ErrCodeFixtureNotFound, "no fixtures for family %q", family)
	}
	return recs, nil
}

// Put replaces the stored records for a family.
func (s Set) Put(family string, recs []augment.Record) {
	s[family] = recs
}

// Families lists the stored family names in sorted order.
func (s Set) Families() []string {
	out := make([]string, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// EqualRecords compares two record lists with [Equal] semantics.
func EqualRecords(want, got []augment.Record) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if !Equal(want[i], got[i]) {
			return false
		}
	}
	return true
}

// Equal compares two records field by field. Numeric values are compared
// after widening so records decoded from JSON match records built
// in-process, nested step lists are compared recursively, and string
// fields holding filesystem paths compare by path suffix so fixtures
// written on one machine validate on another.
func Equal(want, got augment.Record) bool {
	if len(want) != len(got) {
		return false
	}
	for key, wv := range want {
		gv, ok := got[key]
		if !ok {
			return false
		}
		if !equalValue(key, want, got, wv, gv) {
			return false
		}
	}
	return true
}

func equalValue(key string, want, got augment.Record, wv, gv any) bool {
	// Nested step lists.
	if key == augment.KeySteps {
		wsteps, wok := want.Steps()
		gsteps, gok := got.Steps()
		return wok && gok && EqualRecords(wsteps, gsteps)
	}

	// Numbers, regardless of JSON or in-process representation.
	if wf, ok := want.Float(key); ok {
		gf, gok := got.Float(key)
		return gok && wf == gf
	}

	ws, wok := wv.(string)
	gs, gok := gv.(string)
	if wok && gok {
		return ws == gs || pathSuffixEqual(ws, gs)
	}

	return wv == gv
}

// pathSuffixEqual reports whether two path-like strings agree on their
// trailing segments. Absolute prefixes differ across machines; the
// meaningful part of a fixture path is its tail.
func pathSuffixEqual(a, b string) bool {
	if !strings.Contains(a, "/") || !strings.Contains(b, "/") {
		return false
	}

	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	n := min(len(as), len(bs))
	if n == 0 {
		return false
	}

	for i := 1; i <= n; i++ {
		if as[len(as)-i] != bs[len(bs)-i] {
			return false
		}
	}
	return true
}
