package errors

import (
	"math"
	"testing"
)

func TestValidateSpacing(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"positive", 12, false},
		{"fractional", 0.5, false},

		{"zero", 0, true},
		{"negative", -3, true},
		{"NaN", math.NaN(), true},
		{"infinite", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSpacing(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpacing(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	if err := ValidateDimension("width", 48); err != nil {
		t.Errorf("ValidateDimension(48) = %v", err)
	}
	err := ValidateDimension("radius", 0)
	if !Is(err, ErrCodeInvalidShape) {
		t.Errorf("ValidateDimension(0) code = %v, want %v", GetCode(err), ErrCodeInvalidShape)
	}
	if UserMessage(err) != "radius must be positive (got 0)" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		input   float64
		wantErr bool
	}{
		{0.5, false},
		{0.1, false},
		{0, true},
		{1, true},
		{-0.2, true},
		{math.NaN(), true},
	}

	for _, tt := range tests {
		err := ValidateFraction("boundary", tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFraction(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePlanPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"toml", "garden.toml", ""},
		{"yaml", "plans/garden.yaml", ""},
		{"yml upper", "GARDEN.YML", ""},
		{"json", "/tmp/garden.json", ""},

		{"empty", "", ErrCodeInvalidPath},
		{"too long", string(make([]byte, 600)), ErrCodeInvalidPath},
		{"control char", "gar\x01den.toml", ErrCodeInvalidPath},
		{"no extension", "garden", ErrCodeInvalidFormat},
		{"wrong extension", "garden.xml", ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlanPath(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidatePlanPath(%q) code = %v, want %v", tt.input, got, tt.wantCode)
			}
		})
	}
}
