package stocks

import (
	"fmt"
	"strings"
	"unicode"
)

// FormatTicker normalizes user input into canonical ticker form.
func FormatTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// ValidateTicker checks that a ticker is 1-5 uppercase letters after
// normalization.
func ValidateTicker(ticker string) error {
	t := FormatTicker(ticker)
	if t == "" {
		return fmt.Errorf("ticker is empty")
	}
	if len(t) > 5 {
		return fmt.Errorf("ticker %q too long: must be 1-5 letters", t)
	}
	for _, r := range t {
		if !unicode.IsUpper(r) || r > unicode.MaxASCII {
			return fmt.Errorf("ticker %q contains invalid character %q", t, r)
		}
	}
	return nil
}
