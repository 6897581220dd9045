package augment

// Common metadata field keys. Keys are snake_case so records serialize to
// the same JSON shape the fixture files use.
const (
	KeyName        = "name"
	KeySrcText     = "src_text"
	KeyDstText     = "dst_text"
	KeySrcLength   = "src_length"
	KeyDstLength   = "dst_length"
	KeyGranularity = "granularity"
	KeyAugP        = "aug_p"
	KeyAugMin      = "aug_min"
	KeyAugMax      = "aug_max"

	// Per-application outcome fields: how many units were eligible and how
	// many were actually changed. Intensity functions derive their change
	// ratio from these.
	KeyUnitCount = "unit_count"
	KeyAugCount  = "aug_count"

	// KeyCadence is the insertion interval recorded by separator-insertion
	// transforms.
	KeyCadence = "cadence"

	// Combinator fields.
	KeySteps       = "steps"
	KeyChoiceIndex = "choice_index"
	KeyChosen      = "chosen"
)

// Combinator record names.
const (
	NameCompose = "compose"
	NameOneOf   = "one_of"
)

// Record is one metadata entry describing a single transform application to
// a single text. Records are append-only: once a leaf transformer emits a
// record it is never mutated, except by the combinator that wraps it, which
// nests it under [KeySteps] and annotates composition-level fields.
//
// The underlying map form keeps records round-trippable through JSON
// fixtures; the typed accessors cover the fields the engine itself reads.
type Record map[string]any

// NewRecord builds the base record every leaf transformer starts from.
// Lengths are counted in runes, not bytes.
func NewRecord(name, src, dst string) Record {
	return Record{
		KeyName:      name,
		KeySrcText:   src,
		KeyDstText:   dst,
		KeySrcLength: len([]rune(src)),
		KeyDstLength: len([]rune(dst)),
	}
}

// Name returns the transform family name recorded in the record, or the
// empty string if absent.
func (r Record) Name() string {
	s, _ := r[KeyName].(string)
	return s
}

// String returns the string value for key.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Float returns the numeric value for key. Integers are widened so records
// decoded from JSON (where all numbers arrive as float64) and records built
// in-process read the same.
func (r Record) Float(key string) (float64, bool) {
	switch v := r[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Int returns the integer value for key, truncating JSON-decoded floats.
func (r Record) Int(key string) (int, bool) {
	f, ok := r.Float(key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Bool returns the boolean value for key.
func (r Record) Bool(key string) (bool, bool) {
	b, ok := r[key].(bool)
	return b, ok
}

// Steps returns the nested per-step records of a combinator record.
// It accepts both the in-process []Record form and the []any form produced
// by JSON decoding.
func (r Record) Steps() ([]Record, bool) {
	switch v := r[KeySteps].(type) {
	case []Record:
		return v, true
	case []any:
		steps := make([]Record, 0, len(v))
		for _, s := range v {
			if m, ok := s.(map[string]any); ok {
				steps = append(steps, Record(m))
			}
		}
		return steps, len(steps) == len(v)
	default:
		return nil, false
	}
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Sink is an append-only accumulator for metadata records. Callers thread
// one sink through a pipeline so nested stages share a single collector
// without plumbing return values through each layer.
//
// A Sink is not safe for concurrent use; callers running transforms from
// multiple goroutines must use one sink per goroutine.
type Sink struct {
	records []Record
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Append adds records to the sink, preserving order.
func (s *Sink) Append(recs ...Record) {
	s.records = append(s.records, recs...)
}

// Records returns the accumulated records in append order.
func (s *Sink) Records() []Record {
	return s.records
}

// Len returns the number of accumulated records.
func (s *Sink) Len() int {
	return len(s.records)
}
