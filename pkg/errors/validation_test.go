package errors

import (
	"testing"
)

func TestValidateItemCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 12, false},
		{"large", 200, false},
		{"at max", MaxItemCount, false},

		{"negative", -1, true},
		{"over max", MaxItemCount + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateItemCount(%d) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateQuoteFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"toml", "quote.toml", ""},
		{"json", "quote.json", ""},
		{"nested path", "quotes/2026/q-104.toml", ""},
		{"upper case extension", "QUOTE.TOML", ""},

		{"empty", "", ErrCodeInvalidPath},
		{"null byte", "quote\x00.toml", ErrCodeInvalidPath},
		{"newline", "quote\n.toml", ErrCodeInvalidPath},
		{"yaml", "quote.yaml", ErrCodeInvalidQuote},
		{"no extension", "quote", ErrCodeInvalidQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuoteFilename(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateQuoteFilename(%q) code = %q, want %q (err=%v)", tt.input, got, tt.wantCode, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidQuote,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
