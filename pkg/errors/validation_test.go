package errors

import "testing"

func TestValidateProbability(t *testing.T) {
	tests := []struct {
		name    string
		p       float64
		wantErr bool
	}{
		{"zero", 0.0, false},
		{"one", 1.0, false},
		{"mid", 0.3, false},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProbability("aug_p", tt.p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProbability(%v) error = %v, wantErr %v", tt.p, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG code, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateCountRange(t *testing.T) {
	if err := ValidateCountRange(1, 10); err != nil {
		t.Errorf("valid range should pass: %v", err)
	}
	if err := ValidateCountRange(5, 5); err != nil {
		t.Errorf("equal bounds should pass: %v", err)
	}
	if err := ValidateCountRange(10, 1); err == nil {
		t.Error("min > max should fail")
	}
	if err := ValidateCountRange(-1, 1); err == nil {
		t.Error("negative min should fail")
	}
	if err := ValidateCountRange(0, -1); err == nil {
		t.Error("negative max should fail")
	}
}

func TestValidateCadence(t *testing.T) {
	if err := ValidateCadence(1.0); err != nil {
		t.Errorf("cadence 1.0 should pass: %v", err)
	}
	if err := ValidateCadence(5.5); err != nil {
		t.Errorf("cadence 5.5 should pass: %v", err)
	}
	if err := ValidateCadence(0.5); err == nil {
		t.Error("cadence below 1 should fail")
	}
}

func TestValidateBatch(t *testing.T) {
	if err := ValidateBatch([]string{"hello"}); err != nil {
		t.Errorf("non-empty batch should pass: %v", err)
	}
	if err := ValidateBatch([]string{""}); err != nil {
		t.Errorf("batch with empty string should pass: %v", err)
	}
	if err := ValidateBatch(nil); err == nil {
		t.Error("nil batch should fail")
	}
	if err := ValidateBatch([]string{}); err == nil {
		t.Error("empty batch should fail")
	}
	if err := ValidateBatch([]string{}); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT code, got %v", GetCode(err))
	}
}
