package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxItemCount bounds the item count accepted from external input. The engine
// handles any non-negative count; the bound only stops absurd requests from
// producing multi-megabyte previews.
const MaxItemCount = 10000

// ValidateItemCount checks that an externally supplied item count is usable.
func ValidateItemCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "item count must be >= 0, got %d", n)
	}
	if n > MaxItemCount {
		return New(ErrCodeInvalidInput, "item count too large (max %d), got %d", MaxItemCount, n)
	}
	return nil
}

// quoteExtensions lists the file extensions a quote file may carry.
var quoteExtensions = map[string]bool{
	".toml": true,
	".json": true,
}

// ValidateQuoteFilename validates the path of a quote file.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .toml or .json (case-insensitive)
func ValidateQuoteFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "quote path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "quote path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !quoteExtensions[ext] {
		return New(ErrCodeInvalidQuote, "unsupported quote file %q (must be .toml or .json)", filepath.Base(path))
	}
	return nil
}
