package augment

import (
	"math"

	"github.com/textmorph/textmorph/pkg/errors"
)

// Granularity selects the unit of text a transform perturbs.
type Granularity string

const (
	// GranularityChar perturbs individual characters.
	GranularityChar Granularity = "char"

	// GranularityWord perturbs whitespace-delimited words.
	GranularityWord Granularity = "word"

	// GranularityAll perturbs the whole text as one unit.
	GranularityAll Granularity = "all"
)

// ParseGranularity validates a granularity string.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityChar, GranularityWord, GranularityAll:
		return g, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidGranularity,
			"invalid granularity: %q (must be 'char', 'word', or 'all')", s)
	}
}

// Default unit-count bounds, matching the convention that an unset range
// means "at least one unit, effectively unbounded above".
const (
	DefaultAugMin = 1
	DefaultAugMax = 1000
)

// BaseConfig is the configuration surface shared by probability-gated
// transforms. It is immutable once bound to a transformer.
type BaseConfig struct {
	// AugP is the probability in [0, 1] that an eligible unit is affected.
	AugP float64

	// AugMin and AugMax bound the count of units affected per text.
	AugMin int
	AugMax int

	// Granularity selects the unit of perturbation.
	Granularity Granularity

	// Seed drives all randomness for this transformer. The same seed,
	// configuration, and input produce identical outputs and records.
	Seed uint64
}

// WithDefaults fills unset fields and returns the completed config.
// The zero value of AugMax is treated as unset.
func (c BaseConfig) WithDefaults(granularity Granularity) BaseConfig {
	if c.AugMin == 0 {
		c.AugMin = DefaultAugMin
	}
	if c.AugMax == 0 {
		c.AugMax = DefaultAugMax
	}
	if c.Granularity == "" {
		c.Granularity = granularity
	}
	return c
}

// Validate checks the configuration. Invalid parameters surface here, at
// construction time, never at apply time.
func (c BaseConfig) Validate() error {
	if err := errors.ValidateProbability("aug_p", c.AugP); err != nil {
		return err
	}
	if err := errors.ValidateCountRange(c.AugMin, c.AugMax); err != nil {
		return err
	}
	if _, err := ParseGranularity(string(c.Granularity)); err != nil {
		return err
	}
	return nil
}

// Fields returns the config fields every probability-gated transform
// records alongside its transform-specific fields.
func (c BaseConfig) Fields() Record {
	return Record{
		KeyAugP:        c.AugP,
		KeyAugMin:      c.AugMin,
		KeyAugMax:      c.AugMax,
		KeyGranularity: string(c.Granularity),
	}
}

// AugCount converts a unit count n into the number of units to affect:
// round(n * AugP), clamped into [AugMin, AugMax] and never above n.
func (c BaseConfig) AugCount(n int) int {
	if n == 0 || c.AugP == 0 {
		return 0
	}
	count := int(math.Round(float64(n) * c.AugP))
	if count < c.AugMin {
		count = c.AugMin
	}
	if count > c.AugMax {
		count = c.AugMax
	}
	if count > n {
		count = n
	}
	return count
}
