package errors

import (
	"math"
	"testing"
)

func TestValidateCoord(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"negative", -12.5, false},
		{"large magnitude", 1e300, false},
		{"small magnitude", 1e-300, false},

		{"NaN", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoord("Ax1", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoord(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidCoord {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidCoord)
			}
		})
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "4", 4, false},
		{"decimal", "2.5", 2.5, false},
		{"negative", "-3", -3, false},
		{"scientific", "1e2", 100, false},
		{"surrounding spaces", " 7 ", 7, false},

		{"empty", "", 0, true},
		{"word", "four", 0, true},
		{"NaN literal", "NaN", 0, true},
		{"infinity literal", "Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoord("By2", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCoord(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCoord(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"text", "text", false},
		{"json", "json", false},
		{"unknown", "yaml", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format, "text", "json")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}
