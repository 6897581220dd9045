package errors

// ValidateProbability checks that p is a probability in [0, 1].
// The name identifies the offending parameter in the error message.
func ValidateProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return New(ErrCodeInvalidConfig, "%s must be in [0, 1], got %v", name, p)
	}
	return nil
}

// ValidateCountRange checks that a min/max unit-count range is well formed:
// both bounds non-negative and min not greater than max.
func ValidateCountRange(min, max int) error {
	if min < 0 {
		return New(ErrCodeInvalidConfig, "aug_min must be non-negative, got %d", min)
	}
	if max < 0 {
		return New(ErrCodeInvalidConfig, "aug_max must be non-negative, got %d", max)
	}
	if min > max {
		return New(ErrCodeInvalidConfig, "aug_min (%d) must not exceed aug_max (%d)", min, max)
	}
	return nil
}

// ValidateCadence checks that a cadence is at least 1.
// A cadence of c means every ceil(c)-th unit is eligible for perturbation.
func ValidateCadence(cadence float64) error {
	if cadence < 1 {
		return New(ErrCodeInvalidConfig, "cadence must be >= 1.0, got %v", cadence)
	}
	return nil
}

// ValidateBatch checks that a text batch is a usable input: the batch must be
// non-empty. Empty strings are allowed as elements; they produce no-op records.
func ValidateBatch(texts []string) error {
	if texts == nil {
		return New(ErrCodeInvalidInput, "text batch is nil")
	}
	if len(texts) == 0 {
		return New(ErrCodeInvalidInput, "text batch is empty")
	}
	return nil
}
